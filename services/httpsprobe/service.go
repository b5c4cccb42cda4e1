package httpsprobe

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/customeros/trustwatch/config"
	"github.com/customeros/trustwatch/interfaces"
	"github.com/customeros/trustwatch/internal/models"
	"github.com/customeros/trustwatch/internal/tracing"
)

const (
	probeUserAgent    = "trustwatch-probe/1.0"
	maxProbeBodyBytes = 512 * 1024
)

type httpsProbeService struct {
	cfg    *config.HttpsProbeConfig
	client *http.Client
}

func NewHttpsProbeService(cfg *config.HttpsProbeConfig) interfaces.HttpsProber {
	return &httpsProbeService{
		cfg: cfg,
		client: &http.Client{
			Timeout:       time.Duration(cfg.TimeoutSeconds) * time.Second,
			CheckRedirect: redirectLimiter(cfg.MaxRedirects),
		},
	}
}

func redirectLimiter(max int) func(req *http.Request, via []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) > max {
			return errors.Errorf("stopped after %d redirects", max)
		}
		return nil
	}
}

// Probe checks whether the domain answers a GET over TLS. The signal is
// always present: a failed probe means not secure, not unknown.
func (s *httpsProbeService) Probe(ctx context.Context, domain string) models.Signal[models.HttpsSignal] {
	span, ctx := opentracing.StartSpanFromContext(ctx, "httpsProbeService.Probe")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagDomain(span, domain)

	req, err := http.NewRequestWithContext(ctx, "GET", "https://"+domain, nil)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to create request"))
		return models.SignalOf(models.HttpsSignal{IsSecure: false})
	}
	req.Header.Set("User-Agent", probeUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "https probe failed"))
		return models.SignalOf(models.HttpsSignal{IsSecure: false})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		span.LogKV("result.secure", false, "status_code", resp.StatusCode)
		return models.SignalOf(models.HttpsSignal{IsSecure: false})
	}
	if resp.Request.URL.Scheme != "https" {
		span.LogKV("result.secure", false, "reason", "redirected off https")
		return models.SignalOf(models.HttpsSignal{IsSecure: false})
	}

	signal := models.HttpsSignal{IsSecure: true}
	if title := extractTitle(resp.Body); title != "" {
		signal.PageTitle = title
		span.LogKV("result.pageTitle", title)
	}
	span.LogKV("result.secure", true)

	return models.SignalOf(signal)
}

func extractTitle(body io.Reader) string {
	doc, err := goquery.NewDocumentFromReader(io.LimitReader(body, maxProbeBodyBytes))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
