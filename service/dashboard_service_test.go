package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcare-optimizer/apperrors"
	"healthcare-optimizer/repository"
)

func newTestDashboardService() *DashboardService {
	return NewDashboardService(NewAnalyticsService(repository.NewMemoryCache(100, time.Hour), nil), nil)
}

func TestDefaultDashboardInput(t *testing.T) {
	in := DefaultDashboardInput()

	assert.Equal(t, 5, in.Operations.NumDoctors)
	assert.Equal(t, 30, in.Operations.PatientsPerHour)
	assert.Equal(t, 10, in.Operations.ConsultMinutes)
	assert.Equal(t, 20, in.Operations.NumBeds)
	assert.Equal(t, 3, in.Operations.Shifts)
	assert.Equal(t, 500000.0, in.ROI.Investment)
	assert.Equal(t, 100000.0, in.ROI.AnnualSavings)
	assert.Equal(t, 3, in.ROI.Years)
	assert.Equal(t, 50, in.SixSigma.DefectsPer1000)
}

func TestDashboardService_EvaluateDefaults(t *testing.T) {
	svc := newTestDashboardService()

	d, err := svc.Evaluate(context.Background(), DefaultDashboardInput())
	require.NoError(t, err)

	assert.Equal(t, "100.0 %", d.Display.DoctorUtilization)
	assert.Equal(t, "0.0 mins", d.Display.WaitingTime)
	assert.Equal(t, "100.0 %", d.Display.BedUtilization)
	assert.Equal(t, "90", d.Display.Throughput)
	assert.Equal(t, "-40.00 %", d.Display.ROI)
	assert.Equal(t, "5000", d.Display.DPMO)
	assert.Equal(t, "2.83 σ", d.Display.SigmaLevel)

	assert.Equal(t, ChartTitle, d.Chart.Title)
	assert.Equal(t, 120.0, d.Chart.YMax)
	require.Len(t, d.Chart.Bars, 2)
	assert.Equal(t, "Doctors", d.Chart.Bars[0].Label)
	assert.Equal(t, DoctorColor, d.Chart.Bars[0].Color)
	assert.Equal(t, "Beds", d.Chart.Bars[1].Label)
	assert.Equal(t, BedColor, d.Chart.Bars[1].Color)

	require.Len(t, d.Insights, 5)
	assert.Equal(t, msgDoctorsOverutilized, d.Insights[0])
	assert.Equal(t, msgBedsOverflow, d.Insights[1])
	assert.Equal(t, StaticInsights, d.Insights[2:])
	assert.Equal(t, StrategicRecommendations, d.Recommendations)
}

func TestDashboardService_MergesValidationErrors(t *testing.T) {
	svc := newTestDashboardService()
	in := DefaultDashboardInput()
	in.Operations.NumBeds = 0
	in.SixSigma.DefectsPer1000 = 5000

	_, err := svc.Evaluate(context.Background(), in)
	require.Error(t, err)

	se, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeDivisionByZeroGuard, se.Code)

	var names []string
	for _, f := range se.Fields {
		names = append(names, f.Field)
	}
	assert.ElementsMatch(t, []string{"operations.numBeds", "sixSigma.defectsPer1000"}, names)
}

func TestDashboardService_RecommendationsAreCopied(t *testing.T) {
	svc := newTestDashboardService()

	d, err := svc.Evaluate(context.Background(), DefaultDashboardInput())
	require.NoError(t, err)
	d.Recommendations[0] = "mutated"

	assert.NotEqual(t, "mutated", StrategicRecommendations[0])
}
