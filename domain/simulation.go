package domain

// ProgressFrame is one tick of the cosmetic patient-flow progress indicator.
type ProgressFrame struct {
	RunID   string `json:"runId"`
	Percent int    `json:"percent"`
	Text    string `json:"text"`
	Done    bool   `json:"done"`
}
