package normalize

import (
	"strings"

	"github.com/customeros/trustwatch/internal/errors"
	"github.com/customeros/trustwatch/internal/models"
)

// Website reduces a raw website string to its bare host: scheme stripped,
// anything from the first slash on dropped, trimmed, lowercased. An
// explicit https:// prefix is remembered so the reachability probe can be
// skipped. The raw input is kept for the threat-list lookup.
func Website(raw string) (models.NormalizedInput, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.NormalizedInput{}, errors.ErrWebsiteRequired
	}

	host := trimmed
	isSecure := false
	lower := strings.ToLower(host)
	switch {
	case strings.HasPrefix(lower, "https://"):
		isSecure = true
		host = host[len("https://"):]
	case strings.HasPrefix(lower, "http://"):
		host = host[len("http://"):]
	}

	if idx := strings.Index(host, "/"); idx >= 0 {
		host = host[:idx]
	}
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return models.NormalizedInput{}, errors.ErrWebsiteRequired
	}

	return models.NormalizedInput{
		Raw:      trimmed,
		Domain:   host,
		IsSecure: isSecure,
	}, nil
}

// Email extracts the domain segment after the first @. The address itself
// is returned trimmed, the domain lowercased.
func Email(raw string) (models.NormalizedInput, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.NormalizedInput{}, errors.ErrMissingEmail
	}

	parts := strings.Split(trimmed, "@")
	if len(parts) < 2 {
		return models.NormalizedInput{}, errors.ErrInvalidEmailFormat
	}
	domain := strings.ToLower(strings.TrimSpace(parts[1]))
	if domain == "" {
		return models.NormalizedInput{}, errors.ErrInvalidEmailFormat
	}

	return models.NormalizedInput{
		Raw:    trimmed,
		Domain: domain,
	}, nil
}
