package email

import (
	"context"
	"fmt"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/customeros/trustwatch/dto"
	"github.com/customeros/trustwatch/interfaces"
	"github.com/customeros/trustwatch/internal/enum"
	"github.com/customeros/trustwatch/internal/models"
	"github.com/customeros/trustwatch/internal/normalize"
	"github.com/customeros/trustwatch/internal/tracing"
	"github.com/customeros/trustwatch/internal/utils"
)

type emailService struct {
	reputation interfaces.ReputationClient
	whois      interfaces.WhoisCollector
	events     interfaces.EventPublisher
}

func NewEmailService(
	reputation interfaces.ReputationClient,
	whois interfaces.WhoisCollector,
	events interfaces.EventPublisher,
) interfaces.EmailVerifier {
	return &emailService{
		reputation: reputation,
		whois:      whois,
		events:     events,
	}
}

// VerifyEmail assesses an email address from its reputation record plus a
// best-effort WHOIS enrichment of the domain. Reputation is the primary
// evidence here, so a failed reputation lookup fails the whole request;
// WHOIS absence only leaves the age fields empty.
func (s *emailService) VerifyEmail(ctx context.Context, email string) (*models.EmailVerification, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "emailService.VerifyEmail")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	input, err := normalize.Email(email)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	tracing.TagDomain(span, input.Domain)

	reputation, err := s.reputation.Lookup(ctx, input.Raw)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	riskLevel := riskFromReputation(reputation.Reputation)
	isValid := !reputation.Suspicious
	business := reputation.IsBusinessDomain()

	summary := make([]string, 0, 6)
	summary = append(summary, "Email reputation: "+reputation.Reputation)
	if reputation.Suspicious {
		summary = append(summary, rationaleSuspicious)
	}
	if reputation.MaliciousActivity != "" {
		summary = append(summary, "Malicious activity reported: "+reputation.MaliciousActivity)
	}

	if business {
		summary = append(summary, rationaleBusinessDomain)
		if riskLevel == enum.RiskHigh {
			// corporate domains should not sink on a generic low-reputation
			// label alone, that penalty targets free and disposable mail
			riskLevel = enum.RiskMedium
			summary = append(summary, rationaleBusinessDowngrade)
		}
		if reputation.Suspicious {
			isValid = true
			summary = append(summary, rationaleSuspiciousOverride)
		}
	}

	verification := models.EmailVerification{
		Email:        input.Raw,
		Domain:       input.Domain,
		IsValid:      isValid,
		Status:       reputation.Reputation,
		RiskLevel:    riskLevel,
		SpamScore:    reputation.RiskScore,
		DomainStatus: "N/A",
		Timestamp:    utils.Now(),
	}

	if whois, present := s.whois.Lookup(ctx, input.Domain).Get(); present {
		if whois.AgeDays != nil {
			verification.DomainAgeDays = whois.AgeDays
			summary = append(summary, fmt.Sprintf("Domain age: %d days", *whois.AgeDays))
		}
		if whois.DomainStatus != "" {
			verification.DomainStatus = whois.DomainStatus
		}
	}
	verification.Summary = summary

	span.LogKV("result.isValid", verification.IsValid, "result.riskLevel", verification.RiskLevel.String())

	s.publishCompleted(ctx, span, verification)

	return &verification, nil
}

func (s *emailService) publishCompleted(ctx context.Context, span opentracing.Span, verification models.EmailVerification) {
	if s.events == nil {
		return
	}
	isValid := verification.IsValid
	message := dto.VerificationCompleted{
		Entity:    verification.Email,
		Status:    verification.Status,
		RiskLevel: verification.RiskLevel.String(),
		IsValid:   &isValid,
	}
	if err := s.events.PublishVerificationCompleted(ctx, verification.Email, enum.EMAIL_ADDRESS, message); err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to publish verification event"))
	}
}
