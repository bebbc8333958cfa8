package http

import (
	"fmt"
	"net/url"
	"strconv"

	"healthcare-optimizer/apperrors"
	"healthcare-optimizer/domain"
	"healthcare-optimizer/service"
)

// parseDashboardQuery overlays query parameters on the default widget
// values. Parameter names match the JSON field names.
func parseDashboardQuery(q url.Values) (domain.DashboardInput, error) {
	in := service.DefaultDashboardInput()

	ints := []struct {
		field string
		dst   *int
	}{
		{service.FieldNumDoctors, &in.Operations.NumDoctors},
		{service.FieldPatientsPerHour, &in.Operations.PatientsPerHour},
		{service.FieldConsultMinutes, &in.Operations.ConsultMinutes},
		{service.FieldNumBeds, &in.Operations.NumBeds},
		{service.FieldShifts, &in.Operations.Shifts},
		{service.FieldYears, &in.ROI.Years},
		{service.FieldDefectsPer1000, &in.SixSigma.DefectsPer1000},
	}
	floats := []struct {
		field string
		dst   *float64
	}{
		{service.FieldInvestment, &in.ROI.Investment},
		{service.FieldAnnualSavings, &in.ROI.AnnualSavings},
	}

	var bad []apperrors.FieldError
	for _, p := range ints {
		raw := q.Get(p.field)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			bad = append(bad, apperrors.FieldError{
				Field:   p.field,
				Message: fmt.Sprintf("%q is not an integer", raw),
				Code:    apperrors.ErrCodeInvalidRequest,
			})
			continue
		}
		*p.dst = v
	}
	for _, p := range floats {
		raw := q.Get(p.field)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			bad = append(bad, apperrors.FieldError{
				Field:   p.field,
				Message: fmt.Sprintf("%q is not a number", raw),
				Code:    apperrors.ErrCodeInvalidRequest,
			})
			continue
		}
		*p.dst = v
	}

	if len(bad) > 0 {
		err := apperrors.NewInvalidRequestError("malformed query parameters")
		err.Fields = bad
		return in, err
	}
	return in, nil
}
