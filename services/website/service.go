package website

import (
	"context"
	"fmt"
	"strings"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/customeros/trustwatch/dto"
	"github.com/customeros/trustwatch/interfaces"
	"github.com/customeros/trustwatch/internal/enum"
	"github.com/customeros/trustwatch/internal/models"
	"github.com/customeros/trustwatch/internal/normalize"
	"github.com/customeros/trustwatch/internal/tracing"
	"github.com/customeros/trustwatch/internal/utils"
)

type websiteService struct {
	dns     interfaces.DnsCollector
	whois   interfaces.WhoisCollector
	prober  interfaces.HttpsProber
	threats interfaces.ThreatListChecker
	events  interfaces.EventPublisher
}

func NewWebsiteService(
	dns interfaces.DnsCollector,
	whois interfaces.WhoisCollector,
	prober interfaces.HttpsProber,
	threats interfaces.ThreatListChecker,
	events interfaces.EventPublisher,
) interfaces.WebsiteVerifier {
	return &websiteService{
		dns:     dns,
		whois:   whois,
		prober:  prober,
		threats: threats,
		events:  events,
	}
}

// VerifyWebsite normalizes the input, gathers the four website signals
// concurrently and folds whatever subset arrived into a bounded trust
// score with a rationale trail.
func (s *websiteService) VerifyWebsite(ctx context.Context, website string) (*models.WebsiteVerification, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "websiteService.VerifyWebsite")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	input, err := normalize.Website(website)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	tracing.TagDomain(span, input.Domain)

	var (
		dnsSignal    models.Signal[models.DnsSignal]
		whoisSignal  models.Signal[models.WhoisSignal]
		httpsSignal  models.Signal[models.HttpsSignal]
		threatSignal models.Signal[models.ThreatSignal]
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		dnsSignal = s.dns.Resolve(groupCtx, input.Domain)
		return nil
	})
	group.Go(func() error {
		whoisSignal = s.whois.Lookup(groupCtx, input.Domain)
		return nil
	})
	group.Go(func() error {
		if input.IsSecure {
			// explicit https:// scheme, no probe needed
			httpsSignal = models.SignalOf(models.HttpsSignal{IsSecure: true})
			return nil
		}
		httpsSignal = s.prober.Probe(groupCtx, input.Domain)
		return nil
	})
	group.Go(func() error {
		// the threat list wants the exact URL as submitted, scheme included
		threatSignal = s.threats.Check(groupCtx, input.Raw)
		return nil
	})
	// collectors degrade to absent signals instead of failing, Wait only joins
	_ = group.Wait()

	if dns, present := dnsSignal.Get(); present {
		span.LogKV("dns.resolvedAddress", dns.ResolvedAddress)
	}

	score := baselineScore
	summary := make([]string, 0, 6)

	whois, whoisPresent := whoisSignal.Get()

	if whoisPresent && whois.AgeDays != nil {
		ageDays := *whois.AgeDays
		switch {
		case ageDays < 90:
			score += ageUnderNinetyDaysDelta
		case ageDays < 365:
			score += ageUnderOneYearDelta
		default:
			score += ageMatureDelta
		}
		summary = append(summary, fmt.Sprintf("Domain active for %.1f years", float64(ageDays)/365.0))
	} else {
		// WHOIS privacy masking is common for legitimate registrants, so a
		// missing creation date scores as mature rather than suspect
		score += ageUnavailableDelta
		summary = append(summary, rationaleAgeUnavailable)
	}

	if whoisPresent && whois.Registrar != "" && containsAny(strings.ToLower(whois.Registrar), corporateRegistrars) {
		score += corporateRegistrarDelta
		summary = append(summary, "Registrar: "+whois.Registrar)
	}

	if whoisPresent && len(whois.Nameservers) > 0 {
		joined := strings.ToLower(strings.Join(whois.Nameservers, " "))
		if containsAny(joined, reputableNameservers) {
			score += reputableNameserverDelta
			shown := whois.Nameservers
			if len(shown) > 2 {
				shown = shown[:2]
			}
			summary = append(summary, "Nameservers: "+strings.Join(shown, ", "))
		}
	}

	// always present: a failed probe reports not secure, never absent
	https, _ := httpsSignal.Get()
	if https.IsSecure {
		score += httpsSecureDelta
		summary = append(summary, rationaleHttpsSecure)
	} else {
		score += httpsInsecureDelta
		summary = append(summary, rationaleHttpsInsecure)
	}

	if !s.threats.IsConfigured() {
		summary = append(summary, rationaleThreatUnconfigured)
	} else if threat, present := threatSignal.Get(); present {
		if threat.IsFlagged {
			score += threatFlaggedDelta
			summary = append(summary, rationaleThreatFlagged)
		} else {
			score += threatCleanDelta
			summary = append(summary, rationaleThreatClean)
		}
	}
	// a configured provider that failed contributes nothing, silently

	score = clampScore(score)

	verification := models.WebsiteVerification{
		Domain:    input.Domain,
		Score:     score,
		Status:    enum.VerificationStatusFromScore(score),
		RiskLevel: enum.RiskLevelFromScore(score),
		Summary:   summary,
		Timestamp: utils.Now(),
	}
	span.LogKV("result.score", verification.Score, "result.riskLevel", verification.RiskLevel.String())

	s.publishCompleted(ctx, span, verification)

	return &verification, nil
}

func (s *websiteService) publishCompleted(ctx context.Context, span opentracing.Span, verification models.WebsiteVerification) {
	if s.events == nil {
		return
	}
	score := verification.Score
	message := dto.VerificationCompleted{
		Entity:    verification.Domain,
		Score:     &score,
		Status:    verification.Status.String(),
		RiskLevel: verification.RiskLevel.String(),
	}
	if err := s.events.PublishVerificationCompleted(ctx, verification.Domain, enum.DOMAIN, message); err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to publish verification event"))
	}
}
