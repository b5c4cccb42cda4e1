package emailrep

import (
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
	er "github.com/customeros/trustwatch/internal/errors"
	"github.com/customeros/trustwatch/internal/models"
	"github.com/customeros/trustwatch/internal/tracing"
)

const providerName = "EmailRep"

type emailRepService struct {
	cfg *config.EmailRepConfig
}

func NewEmailRepService(cfg *config.EmailRepConfig) interfaces.ReputationClient {
	return &emailRepService{
		cfg: cfg,
	}
}

type emailRepDetails struct {
	FreeProvider      bool    `json:"free_provider"`
	Disposable        bool    `json:"disposable"`
	MaliciousActivity string  `json:"malicious_activity"`
	SpamScore         float64 `json:"spam_score"`
}

type emailRepResponse struct {
	Email      string          `json:"email"`
	Reputation string          `json:"reputation"`
	Suspicious bool            `json:"suspicious"`
	Details    emailRepDetails `json:"details"`
}

// Lookup fetches the reputation record for an email address. Unlike the
// other collectors this one is allowed to fail the request: reputation is
// the primary evidence for the email path, so upstream failures surface as
// UpstreamStatusError instead of degrading to an absent signal.
func (s *emailRepService) Lookup(ctx context.Context, email string) (*models.ReputationSignal, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "emailRepService.Lookup")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	span.LogKV("request.email", email)

	req, err := http.NewRequestWithContext(ctx, "GET", s.cfg.Url+"/"+url.PathEscape(email), nil)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to create request"))
		return nil, errors.Wrap(err, "failed to create request")
	}
	if s.cfg.ApiKey != "" {
		req.Header.Set("Key", s.cfg.ApiKey)
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	client := &http.Client{
		Timeout: time.Duration(s.cfg.TimeoutSeconds) * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "emailrep request failed"))
		return nil, er.NewUpstreamStatusError(providerName, http.StatusBadGateway, err.Error())
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to read response body"))
		return nil, er.NewUpstreamStatusError(providerName, http.StatusBadGateway, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstreamErr := er.NewUpstreamStatusError(providerName, resp.StatusCode, string(responseBody))
		tracing.TraceErr(span, upstreamErr)
		return nil, upstreamErr
	}

	var response emailRepResponse
	if err = json.Unmarshal(responseBody, &response); err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to unmarshal response"))
		return nil, errors.Wrap(err, "failed to unmarshal emailrep response")
	}

	signal := models.ReputationSignal{
		Email:             email,
		Reputation:        response.Reputation,
		RiskScore:         response.Details.SpamScore,
		Suspicious:        response.Suspicious,
		FreeProvider:      response.Details.FreeProvider,
		Disposable:        response.Details.Disposable,
		MaliciousActivity: response.Details.MaliciousActivity,
	}
	span.LogKV("result.reputation", signal.Reputation, "result.suspicious", signal.Suspicious)

	return &signal, nil
}
