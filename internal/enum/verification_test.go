package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevelFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskHigh},
		{49, RiskHigh},
		{50, RiskMedium},
		{79, RiskMedium},
		{80, RiskLow},
		{100, RiskLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskLevelFromScore(tt.score), "score %d", tt.score)
	}
}

func TestVerificationStatusFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  VerificationStatus
	}{
		{0, StatusPotentiallyFraudulent},
		{49, StatusPotentiallyFraudulent},
		{50, StatusNeedsReview},
		{79, StatusNeedsReview},
		{80, StatusLikelyLegitimate},
		{100, StatusLikelyLegitimate},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerificationStatusFromScore(tt.score), "score %d", tt.score)
	}
}
