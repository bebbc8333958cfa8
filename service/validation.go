package service

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/xeipuuv/gojsonschema"

	"healthcare-optimizer/apperrors"
	"healthcare-optimizer/domain"
)

// boundsValidator rejects inputs outside their declared bounds before any
// formula runs.
type boundsValidator struct {
	bounds []Bound
	schema *gojsonschema.Schema
}

func newBoundsValidator(bounds []Bound) (*boundsValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schemaFor(bounds)))
	if err != nil {
		return nil, fmt.Errorf("compile bounds schema: %w", err)
	}
	return &boundsValidator{bounds: bounds, schema: schema}, nil
}

func mustBoundsValidator(bounds []Bound) *boundsValidator {
	v, err := newBoundsValidator(bounds)
	if err != nil {
		panic(err)
	}
	return v
}

var (
	operationsValidator = mustBoundsValidator(OperationsBounds)
	roiValidator        = mustBoundsValidator(ROIBounds)
	sixSigmaValidator   = mustBoundsValidator(SixSigmaBounds)
)

func schemaFor(bounds []Bound) map[string]interface{} {
	properties := make(map[string]interface{}, len(bounds))
	required := make([]interface{}, 0, len(bounds))
	for _, b := range bounds {
		typ := "number"
		if b.Integer {
			typ = "integer"
		}
		properties[b.Field] = map[string]interface{}{
			"type":    typ,
			"minimum": b.Min,
			"maximum": b.Max,
		}
		required = append(required, b.Field)
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// Validate checks input against the divisor guard and the bounds schema.
// Every violation is reported; a guarded field is not reported twice.
func (v *boundsValidator) Validate(input interface{}) error {
	raw, err := json.Marshal(input)
	if err != nil {
		return apperrors.NewInvalidRequestError(err.Error())
	}

	var values map[string]interface{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return apperrors.NewInvalidRequestError(err.Error())
	}
	return v.validateValues(values)
}

// validateValues runs the checks over field values keyed by JSON name.
// NaN and infinities are rejected per field before the schema sees them.
func (v *boundsValidator) validateValues(values map[string]interface{}) error {
	var fields []apperrors.FieldError
	guarded := map[string]bool{}
	finite := make(map[string]interface{}, len(values))
	for field, val := range values {
		if n, ok := val.(float64); ok && (math.IsNaN(n) || math.IsInf(n, 0)) {
			guarded[field] = true
			fields = append(fields, apperrors.FieldError{
				Field:   field,
				Message: "must be a finite number",
				Code:    apperrors.ErrCodeInvalidInputRange,
			})
			continue
		}
		finite[field] = val
	}

	for _, b := range v.bounds {
		if !b.Divisor || guarded[b.Field] {
			continue
		}
		if n, ok := number(finite[b.Field]); ok && n <= 0 {
			guarded[b.Field] = true
			fields = append(fields, apperrors.FieldError{
				Field:   b.Field,
				Message: "must be greater than zero",
				Code:    apperrors.ErrCodeDivisionByZeroGuard,
			})
		}
	}

	raw, err := json.Marshal(finite)
	if err != nil {
		return apperrors.NewInvalidRequestError(err.Error())
	}
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return apperrors.NewInvalidRequestError(err.Error())
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if desc.Type() == "required" {
			if p, ok := desc.Details()["property"].(string); ok {
				field = p
			}
		}
		if guarded[field] {
			continue
		}
		fields = append(fields, apperrors.FieldError{
			Field:   field,
			Message: desc.Description(),
			Code:    apperrors.ErrCodeInvalidInputRange,
		})
	}

	if len(fields) > 0 {
		sort.SliceStable(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
		return apperrors.NewValidationError(fields)
	}
	return nil
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// ValidateOperations rejects an operations input outside its declared bounds.
func ValidateOperations(input domain.OperationsInput) error {
	return operationsValidator.validateValues(map[string]interface{}{
		FieldNumDoctors:      input.NumDoctors,
		FieldPatientsPerHour: input.PatientsPerHour,
		FieldConsultMinutes:  input.ConsultMinutes,
		FieldNumBeds:         input.NumBeds,
		FieldShifts:          input.Shifts,
	})
}

// ValidateROI rejects a finance input outside its declared bounds.
func ValidateROI(input domain.ROIInput) error {
	return roiValidator.validateValues(map[string]interface{}{
		FieldInvestment:    input.Investment,
		FieldAnnualSavings: input.AnnualSavings,
		FieldYears:         input.Years,
	})
}

// ValidateSixSigma rejects a quality input outside its declared bounds.
func ValidateSixSigma(input domain.SixSigmaInput) error {
	return sixSigmaValidator.validateValues(map[string]interface{}{
		FieldDefectsPer1000: input.DefectsPer1000,
	})
}
