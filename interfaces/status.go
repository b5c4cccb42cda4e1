package interfaces

import (
	"context"

	"github.com/customeros/trustwatch/internal/models"
)

type StatusMonitor interface {
	// Snapshot returns the last known state of every external provider.
	Snapshot() []models.ProviderStatus
	// RefreshProviders re-checks provider reachability and updates the
	// snapshot. Safe for concurrent use.
	RefreshProviders(ctx context.Context)
}
