package dto

import "time"

type VerifyWebsiteRequest struct {
	Website string `json:"website"`
}

type VerifyWebsiteResponse struct {
	Domain    string    `json:"domain"`
	Score     int       `json:"score"`
	Status    string    `json:"status"`
	Summary   []string  `json:"summary"`
	RiskLevel string    `json:"riskLevel"`
	Timestamp time.Time `json:"timestamp"`
}
