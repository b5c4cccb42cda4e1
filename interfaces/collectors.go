package interfaces

import (
	"context"

	"github.com/customeros/trustwatch/internal/models"
)

// Optional collectors hand back Signal values, never errors; a degraded
// provider shows up as an absent signal and scoring proceeds without it.
// The reputation lookup is the one exception: its failure is fatal to the
// email path and surfaces as an error carrying the provider status.

type DnsCollector interface {
	Resolve(ctx context.Context, domain string) models.Signal[models.DnsSignal]
}

type WhoisCollector interface {
	Lookup(ctx context.Context, domain string) models.Signal[models.WhoisSignal]
}

type HttpsProber interface {
	Probe(ctx context.Context, domain string) models.Signal[models.HttpsSignal]
}

type ThreatListChecker interface {
	Check(ctx context.Context, url string) models.Signal[models.ThreatSignal]
	IsConfigured() bool
}

type ReputationClient interface {
	Lookup(ctx context.Context, email string) (*models.ReputationSignal, error)
}
