package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"healthcare-optimizer/apperrors"
	"healthcare-optimizer/domain"
)

type DashboardService struct {
	analytics *AnalyticsService
	log       *zap.Logger
}

func NewDashboardService(analytics *AnalyticsService, log *zap.Logger) *DashboardService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardService{analytics: analytics, log: log}
}

// DefaultDashboardInput returns the dashboard's initial widget values.
func DefaultDashboardInput() domain.DashboardInput {
	return domain.DashboardInput{
		Operations: domain.OperationsInput{
			NumDoctors:      int(boundDefault(OperationsBounds, FieldNumDoctors)),
			PatientsPerHour: int(boundDefault(OperationsBounds, FieldPatientsPerHour)),
			ConsultMinutes:  int(boundDefault(OperationsBounds, FieldConsultMinutes)),
			NumBeds:         int(boundDefault(OperationsBounds, FieldNumBeds)),
			Shifts:          int(boundDefault(OperationsBounds, FieldShifts)),
		},
		ROI: domain.ROIInput{
			Investment:    boundDefault(ROIBounds, FieldInvestment),
			AnnualSavings: boundDefault(ROIBounds, FieldAnnualSavings),
			Years:         int(boundDefault(ROIBounds, FieldYears)),
		},
		SixSigma: domain.SixSigmaInput{
			DefectsPer1000: int(boundDefault(SixSigmaBounds, FieldDefectsPer1000)),
		},
	}
}

func boundDefault(bounds []Bound, field string) float64 {
	for _, b := range bounds {
		if b.Field == field {
			return b.Default
		}
	}
	return 0
}

// Evaluate runs every calculator for one set of widget values. Validation
// failures from all calculators are merged into a single error with field
// names prefixed by their section; no partial dashboard is returned.
func (s *DashboardService) Evaluate(ctx context.Context, input domain.DashboardInput) (domain.Dashboard, error) {
	var rejected []apperrors.FieldError
	collect := func(section string, err error) error {
		if !apperrors.IsValidation(err) {
			return err
		}
		se, _ := apperrors.As(err)
		for _, f := range se.Fields {
			f.Field = section + "." + f.Field
			rejected = append(rejected, f)
		}
		return nil
	}

	ops, err := s.analytics.Operations(ctx, input.Operations)
	if err != nil {
		if err := collect("operations", err); err != nil {
			return domain.Dashboard{}, err
		}
	}
	roi, err := s.analytics.ROI(ctx, input.ROI)
	if err != nil {
		if err := collect("roi", err); err != nil {
			return domain.Dashboard{}, err
		}
	}
	sigma, err := s.analytics.SixSigma(ctx, input.SixSigma)
	if err != nil {
		if err := collect("sixSigma", err); err != nil {
			return domain.Dashboard{}, err
		}
	}

	if len(rejected) > 0 {
		return domain.Dashboard{}, apperrors.NewValidationError(rejected)
	}

	insights := make([]string, 0, 2+len(StaticInsights))
	insights = append(insights, ops.DoctorAdvisory.Message, ops.BedAdvisory.Message)
	insights = append(insights, StaticInsights...)

	return domain.Dashboard{
		Input:      input,
		Operations: ops,
		ROI:        roi,
		SixSigma:   sigma,
		Chart:      utilizationChart(ops),
		Display: domain.Display{
			DoctorUtilization: fmt.Sprintf("%.1f %%", ops.DoctorUtilizationPct),
			WaitingTime:       fmt.Sprintf("%.1f mins", ops.WaitingTimeMin),
			BedUtilization:    fmt.Sprintf("%.1f %%", ops.BedUtilizationPct),
			Throughput:        fmt.Sprintf("%.0f", ops.Throughput),
			ROI:               fmt.Sprintf("%.2f %%", roi.ROIPct),
			DPMO:              fmt.Sprintf("%.0f", sigma.DPMO),
			SigmaLevel:        fmt.Sprintf("%.2f σ", sigma.SigmaLevel),
		},
		Insights:        insights,
		Recommendations: append([]string(nil), StrategicRecommendations...),
	}, nil
}

func utilizationChart(ops domain.OperationsOutput) domain.Chart {
	return domain.Chart{
		Title: ChartTitle,
		YMax:  ChartYMax,
		Bars: []domain.Bar{
			{Label: "Doctors", Value: roundTo2Decimals(ops.DoctorUtilizationPct), Color: DoctorColor},
			{Label: "Beds", Value: roundTo2Decimals(ops.BedUtilizationPct), Color: BedColor},
		},
	}
}
