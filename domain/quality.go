package domain

type SixSigmaInput struct {
	DefectsPer1000 int `json:"defectsPer1000" yaml:"defectsPer1000"`
}

// SigmaClass buckets a sigma level.
type SigmaClass string

const (
	SigmaWorldClass SigmaClass = "world-class"
	SigmaGood       SigmaClass = "good"
	SigmaModerate   SigmaClass = "moderate"
	SigmaPoor       SigmaClass = "poor"
)

type SixSigmaResult struct {
	Opportunities  int        `json:"opportunities" yaml:"opportunities"`
	DPMO           float64    `json:"dpmo" yaml:"dpmo"`
	SigmaLevel     float64    `json:"sigmaLevel" yaml:"sigmaLevel"`
	Classification SigmaClass `json:"classification" yaml:"classification"`
	Message        string     `json:"message" yaml:"message"`
}
