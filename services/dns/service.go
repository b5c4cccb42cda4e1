package dns

import (
	"context"
	"net"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/customeros/trustwatch/config"
	"github.com/customeros/trustwatch/interfaces"
	"github.com/customeros/trustwatch/internal/models"
	"github.com/customeros/trustwatch/internal/tracing"
)

type hostResolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

type dnsService struct {
	cfg      *config.DnsConfig
	resolver hostResolver
}

func NewDnsService(cfg *config.DnsConfig) interfaces.DnsCollector {
	return &dnsService{
		cfg:      cfg,
		resolver: net.DefaultResolver,
	}
}

// Resolve performs a single address lookup. Failures and timeouts degrade
// to an absent signal.
func (s *dnsService) Resolve(ctx context.Context, domain string) models.Signal[models.DnsSignal] {
	span, ctx := opentracing.StartSpanFromContext(ctx, "dnsService.Resolve")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagDomain(span, domain)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutSeconds)*time.Second)
	defer cancel()

	addresses, err := s.resolver.LookupHost(ctx, domain)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "dns lookup failed"))
		return models.AbsentSignal[models.DnsSignal]()
	}
	if len(addresses) == 0 {
		span.LogKV("result.present", false, "reason", "no addresses")
		return models.AbsentSignal[models.DnsSignal]()
	}

	span.LogKV("result.present", true, "result.address", addresses[0])
	return models.SignalOf(models.DnsSignal{ResolvedAddress: addresses[0]})
}
