package email

import (
	"strings"

	"github.com/customeros/trustwatch/internal/enum"
)

const (
	rationaleSuspicious         = "Email flagged as suspicious"
	rationaleBusinessDomain     = "Business domain detected"
	rationaleBusinessDowngrade  = "Risk adjusted to Medium for business domain"
	rationaleSuspiciousOverride = "Suspicious flag overridden for business domain"
)

// riskFromReputation inverts the provider's reputation label into a risk
// level. Reputation and risk run in opposite directions.
func riskFromReputation(label string) enum.RiskLevel {
	switch strings.ToLower(label) {
	case "high":
		return enum.RiskLow
	case "medium":
		return enum.RiskMedium
	case "low", "malicious", "very low":
		return enum.RiskHigh
	default:
		return enum.RiskUnknown
	}
}
