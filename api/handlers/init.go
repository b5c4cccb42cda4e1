package handlers

import "github.com/customeros/trustwatch/services"

type APIHandlers struct {
	Verify     *VerifyHandler
	Onboarding *OnboardingHandler
}

func InitHandlers(s *services.Services) *APIHandlers {
	return &APIHandlers{
		Verify:     NewVerifyHandler(s),
		Onboarding: NewOnboardingHandler(s),
	}
}
