package interfaces

import (
	"context"

	"github.com/customeros/trustwatch/dto"
)

type CrmForwarder interface {
	// ForwardLead relays an onboarding payload to the downstream CRM and
	// returns the correlation id attached to the forwarded request.
	ForwardLead(ctx context.Context, lead dto.OnboardingRequest) (string, error)
}
