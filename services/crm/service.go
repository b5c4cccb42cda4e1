package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/customeros/mailsherpa/mailvalidate"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"golang.org/x/net/publicsuffix"

	"github.com/customeros/trustwatch/config"
	"github.com/customeros/trustwatch/dto"
	"github.com/customeros/trustwatch/interfaces"
	er "github.com/customeros/trustwatch/internal/errors"
	"github.com/customeros/trustwatch/internal/normalize"
	"github.com/customeros/trustwatch/internal/tracing"
	"github.com/customeros/trustwatch/internal/utils"
)

const defaultAppSource = "trustwatch"

type crmService struct {
	cfg *config.CrmConfig
}

func NewCrmService(cfg *config.CrmConfig) interfaces.CrmForwarder {
	return &crmService{
		cfg: cfg,
	}
}

// ForwardLead relays an onboarding payload to the downstream CRM after
// validating the contact address. The returned correlation id is also sent
// along so the CRM side can be matched against our logs.
func (s *crmService) ForwardLead(ctx context.Context, lead dto.OnboardingRequest) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "crmService.ForwardLead")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	if s.cfg.Url == "" {
		tracing.TraceErr(span, er.ErrCrmNotConfigured)
		return "", er.ErrCrmNotConfigured
	}

	syntax := mailvalidate.ValidateEmailSyntax(lead.Email)
	if !syntax.IsValid || syntax.IsSystemGenerated {
		tracing.TraceErr(span, er.ErrInvalidLeadEmail)
		return "", er.ErrInvalidLeadEmail
	}

	requestId := uuid.New().String()
	span.LogKV("request.id", requestId)

	appSource := utils.GetAppSourceFromContext(ctx)
	if appSource == "" {
		appSource = defaultAppSource
	}

	forward := dto.OnboardingForward{
		Email:     syntax.CleanEmail,
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
		Website:   lead.Website,
		Notes:     lead.Notes,
		RequestId: requestId,
		AppSource: appSource,
	}
	if input, err := normalize.Email(syntax.CleanEmail); err == nil {
		if registrable, err := publicsuffix.EffectiveTLDPlusOne(input.Domain); err == nil {
			forward.RegistrableDomain = registrable
			tracing.TagDomain(span, registrable)
		}
	}

	payload, err := json.Marshal(forward)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to marshal payload"))
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.cfg.Url, bytes.NewBuffer(payload))
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to create request"))
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-TRUSTWATCH-REQUEST-ID", requestId)
	if s.cfg.ApiKey != "" {
		req.Header.Set("X-TRUSTWATCH-API-KEY", s.cfg.ApiKey)
	}

	client := &http.Client{
		Timeout: time.Duration(s.cfg.TimeoutSeconds) * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "crm request failed"))
		return "", er.ErrCrmUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		responseBody, _ := io.ReadAll(resp.Body)
		tracing.TraceErr(span, errors.Errorf("crm returned status %d: %s", resp.StatusCode, string(responseBody)))
		return "", er.ErrCrmUnavailable
	}

	span.LogKV("result", "forwarded")
	return requestId, nil
}
