package dto

type VerifyEmailRequest struct {
	Email string `json:"email"`
}

type VerifyEmailResponse struct {
	Email         string   `json:"email"`
	Domain        string   `json:"domain"`
	IsValid       bool     `json:"isValid"`
	Status        string   `json:"status"`
	RiskLevel     string   `json:"riskLevel"`
	SpamScore     float64  `json:"spamScore"`
	DomainAgeDays *int     `json:"domainAgeDays,omitempty"`
	DomainStatus  string   `json:"domainStatus"`
	Summary       []string `json:"summary"`
}
