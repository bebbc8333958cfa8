package domain

// DashboardInput carries every widget value of the dashboard.
type DashboardInput struct {
	Operations OperationsInput `json:"operations" yaml:"operations"`
	ROI        ROIInput        `json:"roi" yaml:"roi"`
	SixSigma   SixSigmaInput   `json:"sixSigma" yaml:"sixSigma"`
}

type Bar struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
	Color string  `json:"color" yaml:"color"`
}

type Chart struct {
	Title string  `json:"title" yaml:"title"`
	YMax  float64 `json:"yMax" yaml:"yMax"`
	Bars  []Bar   `json:"bars" yaml:"bars"`
}

// Display holds the formatted metric strings shown on the dashboard.
type Display struct {
	DoctorUtilization string `json:"doctorUtilization" yaml:"doctorUtilization"`
	WaitingTime       string `json:"waitingTime" yaml:"waitingTime"`
	BedUtilization    string `json:"bedUtilization" yaml:"bedUtilization"`
	Throughput        string `json:"throughput" yaml:"throughput"`
	ROI               string `json:"roi" yaml:"roi"`
	DPMO              string `json:"dpmo" yaml:"dpmo"`
	SigmaLevel        string `json:"sigmaLevel" yaml:"sigmaLevel"`
}

type Dashboard struct {
	Input           DashboardInput   `json:"input" yaml:"input"`
	Operations      OperationsOutput `json:"operations" yaml:"operations"`
	ROI             ROIResult        `json:"roi" yaml:"roi"`
	SixSigma        SixSigmaResult   `json:"sixSigma" yaml:"sixSigma"`
	Chart           Chart            `json:"chart" yaml:"chart"`
	Display         Display          `json:"display" yaml:"display"`
	Insights        []string         `json:"insights" yaml:"insights"`
	Recommendations []string         `json:"recommendations" yaml:"recommendations"`
}
