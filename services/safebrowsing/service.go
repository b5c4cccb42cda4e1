package safebrowsing

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/customeros/trustwatch/config"
	"github.com/customeros/trustwatch/interfaces"
	"github.com/customeros/trustwatch/internal/models"
	"github.com/customeros/trustwatch/internal/tracing"
)

type safeBrowsingService struct {
	cfg *config.SafeBrowsingConfig
}

func NewSafeBrowsingService(cfg *config.SafeBrowsingConfig) interfaces.ThreatListChecker {
	return &safeBrowsingService{
		cfg: cfg,
	}
}

type clientInfo struct {
	ClientId      string `json:"clientId"`
	ClientVersion string `json:"clientVersion"`
}

type threatEntry struct {
	Url string `json:"url"`
}

type threatInfo struct {
	ThreatTypes      []string      `json:"threatTypes"`
	PlatformTypes    []string      `json:"platformTypes"`
	ThreatEntryTypes []string      `json:"threatEntryTypes"`
	ThreatEntries    []threatEntry `json:"threatEntries"`
}

type findThreatMatchesRequest struct {
	Client     clientInfo `json:"client"`
	ThreatInfo threatInfo `json:"threatInfo"`
}

type threatMatch struct {
	ThreatType      string `json:"threatType"`
	PlatformType    string `json:"platformType"`
	ThreatEntryType string `json:"threatEntryType"`
}

type findThreatMatchesResponse struct {
	Matches []threatMatch `json:"matches"`
}

func (s *safeBrowsingService) IsConfigured() bool {
	return s.cfg.ApiKey != ""
}

// Check asks Google Safe Browsing whether the submitted URL is on a threat
// list. The URL is sent exactly as the caller provided it, scheme and path
// included.
func (s *safeBrowsingService) Check(ctx context.Context, submittedUrl string) models.Signal[models.ThreatSignal] {
	span, ctx := opentracing.StartSpanFromContext(ctx, "safeBrowsingService.Check")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	span.LogKV("request.url", submittedUrl)

	if !s.IsConfigured() {
		span.LogKV("result", "skipped, api key not set")
		return models.AbsentSignal[models.ThreatSignal]()
	}

	requestBody := findThreatMatchesRequest{
		Client: clientInfo{
			ClientId:      s.cfg.ClientId,
			ClientVersion: s.cfg.ClientVersion,
		},
		ThreatInfo: threatInfo{
			ThreatTypes:      []string{"MALWARE", "SOCIAL_ENGINEERING", "UNWANTED_SOFTWARE", "POTENTIALLY_HARMFUL_APPLICATION"},
			PlatformTypes:    []string{"ANY_PLATFORM"},
			ThreatEntryTypes: []string{"URL"},
			ThreatEntries:    []threatEntry{{Url: submittedUrl}},
		},
	}

	payload, err := json.Marshal(requestBody)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to marshal request"))
		return models.AbsentSignal[models.ThreatSignal]()
	}

	requestUrl := s.cfg.Url + "?key=" + url.QueryEscape(s.cfg.ApiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", requestUrl, bytes.NewBuffer(payload))
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to create request"))
		return models.AbsentSignal[models.ThreatSignal]()
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{
		Timeout: time.Duration(s.cfg.TimeoutSeconds) * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "safe browsing request failed"))
		return models.AbsentSignal[models.ThreatSignal]()
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to read response body"))
		return models.AbsentSignal[models.ThreatSignal]()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		tracing.TraceErr(span, errors.Errorf("safe browsing returned status %d: %s", resp.StatusCode, string(responseBody)))
		return models.AbsentSignal[models.ThreatSignal]()
	}

	var response findThreatMatchesResponse
	if err = json.Unmarshal(responseBody, &response); err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to unmarshal response"))
		return models.AbsentSignal[models.ThreatSignal]()
	}

	flagged := len(response.Matches) > 0
	span.LogKV("result.flagged", flagged, "result.matches", len(response.Matches))

	return models.SignalOf(models.ThreatSignal{IsFlagged: flagged})
}
