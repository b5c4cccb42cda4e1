package models

import (
	"time"

	"github.com/customeros/trustwatch/internal/enum"
)

// WebsiteVerification is the website evaluation result. Summary preserves
// the order rules were applied in; it is the audit trail for the score.
type WebsiteVerification struct {
	Domain    string
	Score     int
	Status    enum.VerificationStatus
	RiskLevel enum.RiskLevel
	Summary   []string
	Timestamp time.Time
}

// EmailVerification is the email evaluation result. Status carries the
// provider's raw reputation label; RiskLevel is the post-correction bucket.
type EmailVerification struct {
	Email         string
	Domain        string
	IsValid       bool
	Status        string
	RiskLevel     enum.RiskLevel
	SpamScore     float64
	DomainAgeDays *int
	DomainStatus  string
	Summary       []string
	Timestamp     time.Time
}
