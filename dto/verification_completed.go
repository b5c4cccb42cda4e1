package dto

// VerificationCompleted is the event body published after an evaluation.
type VerificationCompleted struct {
	Entity    string `json:"entity"`
	Score     *int   `json:"score,omitempty"`
	Status    string `json:"status"`
	RiskLevel string `json:"riskLevel"`
	IsValid   *bool  `json:"isValid,omitempty"`
}
