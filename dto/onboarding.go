package dto

type OnboardingRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Website   string `json:"website"`
	Notes     string `json:"notes"`
}

// OnboardingForward is the payload relayed to the downstream CRM, the
// inbound request enriched with correlation and provenance fields.
type OnboardingForward struct {
	Email             string `json:"email"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Website           string `json:"website"`
	Notes             string `json:"notes"`
	RegistrableDomain string `json:"registrableDomain,omitempty"`
	RequestId         string `json:"requestId"`
	AppSource         string `json:"appSource"`
}

type OnboardingResponse struct {
	Status    string `json:"status"`
	RequestId string `json:"requestId"`
}
