package website

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/customeros/trustwatch/dto"
	"github.com/customeros/trustwatch/internal/enum"
	er "github.com/customeros/trustwatch/internal/errors"
	"github.com/customeros/trustwatch/internal/models"
)

type stubDns struct {
	signal models.Signal[models.DnsSignal]
}

func (s stubDns) Resolve(ctx context.Context, domain string) models.Signal[models.DnsSignal] {
	return s.signal
}

type stubWhois struct {
	signal models.Signal[models.WhoisSignal]
}

func (s stubWhois) Lookup(ctx context.Context, domain string) models.Signal[models.WhoisSignal] {
	return s.signal
}

type stubProber struct {
	signal models.Signal[models.HttpsSignal]
	called *bool
}

func (s stubProber) Probe(ctx context.Context, domain string) models.Signal[models.HttpsSignal] {
	if s.called != nil {
		*s.called = true
	}
	return s.signal
}

type stubThreats struct {
	signal     models.Signal[models.ThreatSignal]
	configured bool
	checkedUrl *string
}

func (s stubThreats) Check(ctx context.Context, url string) models.Signal[models.ThreatSignal] {
	if s.checkedUrl != nil {
		*s.checkedUrl = url
	}
	return s.signal
}

func (s stubThreats) IsConfigured() bool {
	return s.configured
}

type stubPublisher struct {
	entityId   string
	entityType enum.EntityType
	message    dto.VerificationCompleted
	published  bool
}

func (s *stubPublisher) PublishVerificationCompleted(ctx context.Context, entityId string, entityType enum.EntityType, message dto.VerificationCompleted) error {
	s.entityId = entityId
	s.entityType = entityType
	s.message = message
	s.published = true
	return nil
}

func (s *stubPublisher) PublishFanoutEvent(ctx context.Context, entityId string, entityType enum.EntityType, message interface{}) error {
	return nil
}

func (s *stubPublisher) Close() error {
	return nil
}

func whoisWithAge(ageDays int, registrar string, nameservers []string) models.Signal[models.WhoisSignal] {
	return models.SignalOf(models.WhoisSignal{
		AgeDays:     &ageDays,
		Registrar:   registrar,
		Nameservers: nameservers,
	})
}

func TestVerifyWebsite_EstablishedDomainScoresHigh(t *testing.T) {
	probeCalled := false
	service := NewWebsiteService(
		stubDns{signal: models.SignalOf(models.DnsSignal{ResolvedAddress: "93.184.216.34"})},
		stubWhois{signal: whoisWithAge(1000, "MarkMonitor Inc.", []string{"ns1.cloudflare.com", "ns2.cloudflare.com"})},
		stubProber{called: &probeCalled},
		stubThreats{configured: true, signal: models.SignalOf(models.ThreatSignal{IsFlagged: false})},
		nil,
	)

	result, err := service.VerifyWebsite(context.Background(), "https://example.com")

	require.NoError(t, err)
	require.Equal(t, "example.com", result.Domain)
	require.Equal(t, 98, result.Score)
	require.Equal(t, enum.StatusLikelyLegitimate, result.Status)
	require.Equal(t, enum.RiskLow, result.RiskLevel)
	require.Equal(t, []string{
		"Domain active for 2.7 years",
		"Registrar: MarkMonitor Inc.",
		"Nameservers: ns1.cloudflare.com, ns2.cloudflare.com",
		"Valid HTTPS detected",
		"No threats found",
	}, result.Summary)
	require.False(t, probeCalled, "explicit https scheme should skip the probe")
	require.False(t, result.Timestamp.IsZero())
}

func TestVerifyWebsite_NewFlaggedDomainScoresZero(t *testing.T) {
	probeCalled := false
	service := NewWebsiteService(
		stubDns{signal: models.AbsentSignal[models.DnsSignal]()},
		stubWhois{signal: whoisWithAge(10, "Cheap Domains LLC", []string{"ns1.parkingcrew.net"})},
		stubProber{called: &probeCalled, signal: models.SignalOf(models.HttpsSignal{IsSecure: false})},
		stubThreats{configured: true, signal: models.SignalOf(models.ThreatSignal{IsFlagged: true})},
		nil,
	)

	result, err := service.VerifyWebsite(context.Background(), "http://new-shop.biz")

	require.NoError(t, err)
	require.Equal(t, "new-shop.biz", result.Domain)
	require.Equal(t, 0, result.Score)
	require.Equal(t, enum.StatusPotentiallyFraudulent, result.Status)
	require.Equal(t, enum.RiskHigh, result.RiskLevel)
	require.Equal(t, []string{
		"Domain active for 0.0 years",
		"No HTTPS detected",
		"Flagged by Google Safe Browsing for malware/phishing",
	}, result.Summary)
	require.True(t, probeCalled, "http scheme should trigger the probe")
}

func TestVerifyWebsite_WhoisAbsentTreatedAsMature(t *testing.T) {
	service := NewWebsiteService(
		stubDns{signal: models.AbsentSignal[models.DnsSignal]()},
		stubWhois{signal: models.AbsentSignal[models.WhoisSignal]()},
		stubProber{signal: models.SignalOf(models.HttpsSignal{IsSecure: true})},
		stubThreats{configured: false, signal: models.AbsentSignal[models.ThreatSignal]()},
		nil,
	)

	result, err := service.VerifyWebsite(context.Background(), "example.com")

	require.NoError(t, err)
	require.Equal(t, 80, result.Score)
	require.Equal(t, enum.RiskLow, result.RiskLevel)
	require.Equal(t, []string{
		"Domain age unavailable",
		"Valid HTTPS detected",
		"Google Safe Browsing key not configured",
	}, result.Summary)
}

func TestVerifyWebsite_ConfiguredThreatFailureStaysSilent(t *testing.T) {
	service := NewWebsiteService(
		stubDns{signal: models.AbsentSignal[models.DnsSignal]()},
		stubWhois{signal: models.AbsentSignal[models.WhoisSignal]()},
		stubProber{signal: models.SignalOf(models.HttpsSignal{IsSecure: true})},
		stubThreats{configured: true, signal: models.AbsentSignal[models.ThreatSignal]()},
		nil,
	)

	result, err := service.VerifyWebsite(context.Background(), "example.com")

	require.NoError(t, err)
	require.Equal(t, 80, result.Score)
	require.Equal(t, []string{
		"Domain age unavailable",
		"Valid HTTPS detected",
	}, result.Summary)
}

func TestVerifyWebsite_ThreatCheckUsesSubmittedUrl(t *testing.T) {
	var checkedUrl string
	service := NewWebsiteService(
		stubDns{signal: models.AbsentSignal[models.DnsSignal]()},
		stubWhois{signal: models.AbsentSignal[models.WhoisSignal]()},
		stubProber{},
		stubThreats{configured: true, signal: models.SignalOf(models.ThreatSignal{IsFlagged: false}), checkedUrl: &checkedUrl},
		nil,
	)

	result, err := service.VerifyWebsite(context.Background(), "https://example.com/login?next=home")

	require.NoError(t, err)
	require.Equal(t, "example.com", result.Domain)
	require.Equal(t, "https://example.com/login?next=home", checkedUrl)
}

func TestVerifyWebsite_AgeMonotonicity(t *testing.T) {
	scoreForAge := func(whois models.Signal[models.WhoisSignal]) int {
		service := NewWebsiteService(
			stubDns{signal: models.AbsentSignal[models.DnsSignal]()},
			stubWhois{signal: whois},
			stubProber{signal: models.SignalOf(models.HttpsSignal{IsSecure: true})},
			stubThreats{configured: true, signal: models.SignalOf(models.ThreatSignal{IsFlagged: false})},
			nil,
		)
		result, err := service.VerifyWebsite(context.Background(), "example.com")
		require.NoError(t, err)
		return result.Score
	}

	young := scoreForAge(whoisWithAge(10, "", nil))
	mid := scoreForAge(whoisWithAge(200, "", nil))
	mature := scoreForAge(whoisWithAge(1000, "", nil))
	unavailable := scoreForAge(models.AbsentSignal[models.WhoisSignal]())

	require.Equal(t, 55, young)
	require.Equal(t, 65, mid)
	require.Equal(t, 90, mature)
	require.Equal(t, 90, unavailable)
	require.Less(t, young, mid)
	require.Less(t, mid, mature)
	require.LessOrEqual(t, mature, unavailable)
}

func TestVerifyWebsite_SameSignalsSameVerdict(t *testing.T) {
	build := func() (*models.WebsiteVerification, error) {
		service := NewWebsiteService(
			stubDns{signal: models.SignalOf(models.DnsSignal{ResolvedAddress: "10.0.0.1"})},
			stubWhois{signal: whoisWithAge(1000, "MarkMonitor Inc.", []string{"ns1.cloudflare.com"})},
			stubProber{signal: models.SignalOf(models.HttpsSignal{IsSecure: true})},
			stubThreats{configured: true, signal: models.SignalOf(models.ThreatSignal{IsFlagged: false})},
			nil,
		)
		return service.VerifyWebsite(context.Background(), "example.com")
	}

	first, err := build()
	require.NoError(t, err)
	second, err := build()
	require.NoError(t, err)

	require.Equal(t, first.Score, second.Score)
	require.Equal(t, first.Status, second.Status)
	require.Equal(t, first.RiskLevel, second.RiskLevel)
	require.Equal(t, first.Summary, second.Summary)
}

func TestVerifyWebsite_EmptyInputFails(t *testing.T) {
	service := NewWebsiteService(stubDns{}, stubWhois{}, stubProber{}, stubThreats{}, nil)

	result, err := service.VerifyWebsite(context.Background(), "   ")

	require.Nil(t, result)
	require.ErrorIs(t, err, er.ErrWebsiteRequired)
}

func TestVerifyWebsite_PublishesCompletionEvent(t *testing.T) {
	publisher := &stubPublisher{}
	service := NewWebsiteService(
		stubDns{signal: models.AbsentSignal[models.DnsSignal]()},
		stubWhois{signal: models.AbsentSignal[models.WhoisSignal]()},
		stubProber{signal: models.SignalOf(models.HttpsSignal{IsSecure: true})},
		stubThreats{configured: false, signal: models.AbsentSignal[models.ThreatSignal]()},
		publisher,
	)

	result, err := service.VerifyWebsite(context.Background(), "example.com")

	require.NoError(t, err)
	require.True(t, publisher.published)
	require.Equal(t, "example.com", publisher.entityId)
	require.Equal(t, enum.DOMAIN, publisher.entityType)
	require.Equal(t, "example.com", publisher.message.Entity)
	require.NotNil(t, publisher.message.Score)
	require.Equal(t, result.Score, *publisher.message.Score)
	require.Equal(t, result.RiskLevel.String(), publisher.message.RiskLevel)
}
