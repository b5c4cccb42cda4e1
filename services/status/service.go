package status

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"

	"github.com/customeros/trustwatch/config"
	"github.com/customeros/trustwatch/interfaces"
	"github.com/customeros/trustwatch/internal/enum"
	"github.com/customeros/trustwatch/internal/models"
	"github.com/customeros/trustwatch/internal/tracing"
	"github.com/customeros/trustwatch/internal/utils"
)

const (
	probeTimeout = 5 * time.Second
	// keep the fan-out bounded so a refresh never floods the providers
	maxConcurrentProbes = 4
)

type probeTarget struct {
	provider   enum.Provider
	url        string
	configured bool
}

type statusService struct {
	targets []probeTarget

	statusMutex sync.RWMutex
	statuses    map[enum.Provider]models.ProviderStatus
}

func NewStatusService(cfg *config.Config) interfaces.StatusMonitor {
	targets := []probeTarget{
		{provider: enum.ProviderWhois, url: cfg.WhoisConfig.Url, configured: cfg.WhoisConfig.ApiKey != ""},
		{provider: enum.ProviderSafeBrowsing, url: cfg.SafeBrowsingConfig.Url, configured: cfg.SafeBrowsingConfig.ApiKey != ""},
		{provider: enum.ProviderEmailRep, url: cfg.EmailRepConfig.Url, configured: cfg.EmailRepConfig.Url != ""},
		{provider: enum.ProviderCrm, url: cfg.CrmConfig.Url, configured: cfg.CrmConfig.Url != ""},
	}

	statuses := make(map[enum.Provider]models.ProviderStatus, len(targets))
	for _, target := range targets {
		statuses[target.provider] = models.ProviderStatus{
			Provider:   target.provider,
			Configured: target.configured,
		}
	}

	return &statusService{
		targets:  targets,
		statuses: statuses,
	}
}

// Snapshot returns a copy of the last known provider states, in a fixed
// order so the status endpoint output is stable.
func (s *statusService) Snapshot() []models.ProviderStatus {
	s.statusMutex.RLock()
	defer s.statusMutex.RUnlock()

	result := make([]models.ProviderStatus, 0, len(s.targets))
	for _, target := range s.targets {
		result = append(result, s.statuses[target.provider])
	}
	return result
}

// RefreshProviders re-checks every configured provider concurrently and
// records reachability plus round-trip latency.
func (s *statusService) RefreshProviders(ctx context.Context) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "statusService.RefreshProviders")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	span.SetTag("providers.total", len(s.targets))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentProbes)

	for _, target := range s.targets {
		wg.Add(1)
		go func(target probeTarget) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			s.updateStatus(s.checkProvider(ctx, target))
		}(target)
	}
	wg.Wait()

	reachable := 0
	for _, status := range s.Snapshot() {
		if status.Reachable {
			reachable++
		}
	}
	span.SetTag("providers.reachable", reachable)
}

func (s *statusService) checkProvider(ctx context.Context, target probeTarget) models.ProviderStatus {
	span, ctx := opentracing.StartSpanFromContext(ctx, "statusService.checkProvider")
	defer span.Finish()
	span.SetTag("provider", target.provider.String())

	status := models.ProviderStatus{
		Provider:    target.provider,
		Configured:  target.configured,
		LastChecked: utils.Now(),
	}

	if !target.configured || target.url == "" {
		span.SetTag("status", "not_configured")
		return status
	}

	req, err := http.NewRequestWithContext(ctx, "HEAD", target.url, nil)
	if err != nil {
		tracing.TraceErr(span, err)
		return status
	}

	client := &http.Client{Timeout: probeTimeout}
	start := time.Now()
	resp, err := client.Do(req)
	status.LatencyMs = time.Since(start).Milliseconds()
	if err != nil {
		// any HTTP response counts as reachable, only transport errors fail
		tracing.TraceErr(span, err)
		span.SetTag("status", "unreachable")
		return status
	}
	defer resp.Body.Close()

	status.Reachable = true
	span.SetTag("status", "reachable")
	span.SetTag("latency.ms", status.LatencyMs)

	return status
}

func (s *statusService) updateStatus(status models.ProviderStatus) {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()
	s.statuses[status.Provider] = status
}
