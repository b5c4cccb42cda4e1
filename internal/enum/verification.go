package enum

type RiskLevel string

const (
	RiskLow     RiskLevel = "Low"
	RiskMedium  RiskLevel = "Medium"
	RiskHigh    RiskLevel = "High"
	RiskUnknown RiskLevel = "Unknown"
)

func (t RiskLevel) String() string {
	return string(t)
}

// RiskLevelFromScore buckets a trust score into a risk level.
// Higher scores mean more trustworthy, so risk moves the other way.
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score >= 80:
		return RiskLow
	case score >= 50:
		return RiskMedium
	default:
		return RiskHigh
	}
}

type VerificationStatus string

const (
	StatusLikelyLegitimate      VerificationStatus = "Likely Legitimate"
	StatusNeedsReview           VerificationStatus = "Needs Review"
	StatusPotentiallyFraudulent VerificationStatus = "Potentially Fraudulent"
	StatusUnknown               VerificationStatus = "Unknown"
)

func (t VerificationStatus) String() string {
	return string(t)
}

func VerificationStatusFromScore(score int) VerificationStatus {
	switch {
	case score >= 80:
		return StatusLikelyLegitimate
	case score >= 50:
		return StatusNeedsReview
	default:
		return StatusPotentiallyFraudulent
	}
}
