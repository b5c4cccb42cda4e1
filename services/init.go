package services

import (
	"github.com/customeros/trustwatch/config"
	"github.com/customeros/trustwatch/interfaces"
	"github.com/customeros/trustwatch/internal/logger"
	"github.com/customeros/trustwatch/services/crm"
	"github.com/customeros/trustwatch/services/dns"
	"github.com/customeros/trustwatch/services/email"
	"github.com/customeros/trustwatch/services/emailrep"
	"github.com/customeros/trustwatch/services/events"
	"github.com/customeros/trustwatch/services/httpsprobe"
	"github.com/customeros/trustwatch/services/safebrowsing"
	"github.com/customeros/trustwatch/services/status"
	"github.com/customeros/trustwatch/services/website"
	"github.com/customeros/trustwatch/services/whoisxml"
)

type Services struct {
	EventsService *events.EventsService

	DnsCollector      interfaces.DnsCollector
	WhoisCollector    interfaces.WhoisCollector
	HttpsProber       interfaces.HttpsProber
	ThreatListChecker interfaces.ThreatListChecker
	ReputationClient  interfaces.ReputationClient

	WebsiteVerifier interfaces.WebsiteVerifier
	EmailVerifier   interfaces.EmailVerifier
	CrmForwarder    interfaces.CrmForwarder
	StatusMonitor   interfaces.StatusMonitor
}

func InitServices(cfg *config.Config, log logger.Logger) (*Services, error) {
	services := &Services{}

	// events are optional: without a broker URL verifications are simply
	// not announced, the scoring endpoints work the same
	var publisher interfaces.EventPublisher
	if cfg.AppConfig.RabbitMQURL != "" {
		publisherConfig := &events.PublisherConfig{
			MessageTTL:          events.DefaultMessageTTL,
			MaxRetries:          events.DefaultMaxRetries,
			PublishTimeout:      events.DefaultPublishTimeout,
			ReconnectBackoff:    events.DefaultReconnectBackoff,
			MaxReconnectBackoff: events.DefaultMaxReconnectBackoff,
		}

		eventsService, err := events.NewEventsService(cfg.AppConfig.RabbitMQURL, log, publisherConfig)
		if err != nil {
			return nil, err
		}
		services.EventsService = eventsService
		publisher = eventsService.Publisher
	}

	services.DnsCollector = dns.NewDnsService(cfg.DnsConfig)
	services.WhoisCollector = whoisxml.NewWhoisService(cfg.WhoisConfig)
	services.HttpsProber = httpsprobe.NewHttpsProbeService(cfg.HttpsProbeConfig)
	services.ThreatListChecker = safebrowsing.NewSafeBrowsingService(cfg.SafeBrowsingConfig)
	services.ReputationClient = emailrep.NewEmailRepService(cfg.EmailRepConfig)

	services.WebsiteVerifier = website.NewWebsiteService(
		services.DnsCollector,
		services.WhoisCollector,
		services.HttpsProber,
		services.ThreatListChecker,
		publisher,
	)
	services.EmailVerifier = email.NewEmailService(
		services.ReputationClient,
		services.WhoisCollector,
		publisher,
	)
	services.CrmForwarder = crm.NewCrmService(cfg.CrmConfig)
	services.StatusMonitor = status.NewStatusService(cfg)

	return services, nil
}
