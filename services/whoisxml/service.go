package whoisxml

import (
	"context"
	"encoding/json"
	"fmt"
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
	"github.com/customeros/trustwatch/internal/utils"
)

type whoisService struct {
	cfg *config.WhoisConfig
}

func NewWhoisService(cfg *config.WhoisConfig) interfaces.WhoisCollector {
	return &whoisService{
		cfg: cfg,
	}
}

// provider response shapes
type whoisNameServers struct {
	HostNames []string `json:"hostNames"`
}

type whoisRegistryData struct {
	CreatedDate string           `json:"createdDate"`
	NameServers whoisNameServers `json:"nameServers"`
}

type whoisRecord struct {
	CreatedDate   string             `json:"createdDate"`
	RegistrarName string             `json:"registrarName"`
	Status        string             `json:"status"`
	NameServers   whoisNameServers   `json:"nameServers"`
	RegistryData  *whoisRegistryData `json:"registryData"`
}

type whoisResponse struct {
	WhoisRecord *whoisRecord `json:"WhoisRecord"`
}

var createdDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Lookup fetches registration metadata for a domain. Any failure, a
// missing API key included, degrades to an absent signal.
func (s *whoisService) Lookup(ctx context.Context, domain string) models.Signal[models.WhoisSignal] {
	span, ctx := opentracing.StartSpanFromContext(ctx, "whoisService.Lookup")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagDomain(span, domain)

	if s.cfg.ApiKey == "" {
		span.LogKV("result.present", false, "reason", "api key not configured")
		return models.AbsentSignal[models.WhoisSignal]()
	}

	query := url.Values{}
	query.Set("apiKey", s.cfg.ApiKey)
	query.Set("domainName", domain)
	query.Set("outputFormat", "JSON")

	req, err := http.NewRequestWithContext(ctx, "GET", s.cfg.Url+"?"+query.Encode(), nil)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to create request"))
		return models.AbsentSignal[models.WhoisSignal]()
	}

	client := &http.Client{
		Timeout: time.Duration(s.cfg.TimeoutSeconds) * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "whois request failed"))
		return models.AbsentSignal[models.WhoisSignal]()
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "unable to read response body"))
		return models.AbsentSignal[models.WhoisSignal]()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		tracing.TraceErr(span, fmt.Errorf("whois request failed with status code %d: %s", resp.StatusCode, string(body)))
		return models.AbsentSignal[models.WhoisSignal]()
	}

	var response whoisResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to unmarshal response"))
		return models.AbsentSignal[models.WhoisSignal]()
	}
	if response.WhoisRecord == nil {
		span.LogKV("result.present", false, "reason", "empty whois record")
		return models.AbsentSignal[models.WhoisSignal]()
	}

	signal := s.mapRecord(response.WhoisRecord)
	tracing.LogObjectAsJson(span, "response", signal)
	span.LogKV("result.present", true)

	return models.SignalOf(signal)
}

func (s *whoisService) mapRecord(record *whoisRecord) models.WhoisSignal {
	signal := models.WhoisSignal{
		Registrar:    record.RegistrarName,
		Nameservers:  record.NameServers.HostNames,
		DomainStatus: record.Status,
	}

	// Registry data fills the gaps the registrar record leaves open
	createdDate := record.CreatedDate
	if createdDate == "" && record.RegistryData != nil {
		createdDate = record.RegistryData.CreatedDate
	}
	if len(signal.Nameservers) == 0 && record.RegistryData != nil {
		signal.Nameservers = record.RegistryData.NameServers.HostNames
	}

	if created, ok := parseCreatedDate(createdDate); ok {
		ageDays := int(utils.Now().Sub(created).Hours() / 24)
		if ageDays < 0 {
			ageDays = 0
		}
		signal.CreatedDate = &created
		signal.AgeDays = &ageDays
	}

	return signal
}

func parseCreatedDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range createdDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
