package domain

type ROIInput struct {
	Investment    float64 `json:"investment" yaml:"investment"`
	AnnualSavings float64 `json:"annualSavings" yaml:"annualSavings"`
	Years         int     `json:"years" yaml:"years"`
}

// ROIClass buckets an ROI percentage.
type ROIClass string

const (
	ROIExcellent ROIClass = "excellent"
	ROIModerate  ROIClass = "moderate"
	ROINegative  ROIClass = "negative"
)

type ROIResult struct {
	ROIPct         float64  `json:"roiPct" yaml:"roiPct"`
	Classification ROIClass `json:"classification" yaml:"classification"`
	Message        string   `json:"message" yaml:"message"`
}
