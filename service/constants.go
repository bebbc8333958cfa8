package service

import "time"

// Bound declares the accepted range and default of one input field.
type Bound struct {
	Field   string  `json:"field" yaml:"field"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Default float64 `json:"default" yaml:"default"`
	Integer bool    `json:"integer" yaml:"integer"`
	// Divisor fields appear in a denominator and are guarded against <= 0.
	Divisor bool `json:"divisor" yaml:"divisor"`
}

const (
	FieldNumDoctors      = "numDoctors"
	FieldPatientsPerHour = "patientsPerHour"
	FieldConsultMinutes  = "consultMinutes"
	FieldNumBeds         = "numBeds"
	FieldShifts          = "shifts"
	FieldInvestment      = "investment"
	FieldAnnualSavings   = "annualSavings"
	FieldYears           = "years"
	FieldDefectsPer1000  = "defectsPer1000"
)

var (
	OperationsBounds = []Bound{
		{Field: FieldNumDoctors, Min: 1, Max: 20, Default: 5, Integer: true, Divisor: true},
		{Field: FieldPatientsPerHour, Min: 10, Max: 100, Default: 30, Integer: true},
		{Field: FieldConsultMinutes, Min: 5, Max: 30, Default: 10, Integer: true},
		{Field: FieldNumBeds, Min: 5, Max: 100, Default: 20, Integer: true, Divisor: true},
		{Field: FieldShifts, Min: 1, Max: 5, Default: 3, Integer: true},
	}

	ROIBounds = []Bound{
		{Field: FieldInvestment, Min: 10_000, Max: 10_000_000, Default: 500_000, Divisor: true},
		{Field: FieldAnnualSavings, Min: 1_000, Max: 5_000_000, Default: 100_000},
		{Field: FieldYears, Min: 1, Max: 10, Default: 3, Integer: true},
	}

	SixSigmaBounds = []Bound{
		{Field: FieldDefectsPer1000, Min: 0, Max: 1000, Default: 50, Integer: true},
	}
)

const (
	DoctorUtilizationWarnPct = 90.0
	BedUtilizationWarnPct    = 85.0
	MaxUtilizationPct        = 100.0
	MinutesPerHour           = 60.0

	ROIExcellentPct = 50.0

	PatientsPerSample       = 1000
	OpportunitiesPerPatient = 10
	SixSigmaDPMO            = 3.4 // defects per million at six sigma
	MaxSigmaLevel           = 6.0
	WorldClassSigma         = 5.0
	GoodSigma               = 4.0
	ModerateSigma           = 3.0

	ChartTitle  = "Resource Utilization (%)"
	ChartYMax   = 120.0
	DoctorColor = "#2E86AB"
	BedColor    = "#76B041"

	DefaultSimulationSteps       = 100
	DefaultSimulationStepDelay   = 10 * time.Millisecond
	DefaultSimulationSettleDelay = 500 * time.Millisecond
)

const (
	msgDoctorsOverutilized = "Doctors are overutilized. Consider hiring more doctors or reducing consultation time."
	msgDoctorsOptimal      = "Doctor utilization is optimal."
	msgBedsOverflow        = "High bed occupancy. Risk of patient overflow!"
	msgBedsHealthy         = "Bed availability is healthy."

	msgROIExcellent = "Excellent ROI: expansion or new process design is financially viable."
	msgROIModerate  = "Moderate ROI: consider fine-tuning your process."
	msgROINegative  = "Negative ROI: not financially feasible."

	msgSigmaWorldClass = "Excellent process quality (World-Class)."
	msgSigmaGood       = "Good process, scope for improvement."
	msgSigmaModerate   = "Moderate quality: consider Six Sigma interventions."
	msgSigmaPoor       = "Poor quality: urgent process redesign required."

	SimulationStartText    = "Simulating patient inflow..."
	SimulationCompleteText = "Simulation Complete"
)

// StaticInsights follow the two advisories in the insight list.
var StaticInsights = []string{
	"Improve scheduling efficiency using rotation between shifts.",
	"Apply Lean or Six Sigma principles to reduce waiting time.",
	"Evaluate ROI before capacity expansion.",
}

var StrategicRecommendations = []string{
	"Implement continuous improvement programs (Kaizen, Lean Six Sigma).",
	"Conduct workload balancing across shifts to improve throughput.",
	"Automate repetitive tasks to improve ROI and reduce human errors.",
	"Apply Value Stream Mapping to identify process bottlenecks.",
	"Use ERP systems for integrated healthcare resource management.",
}
