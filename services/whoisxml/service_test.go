package whoisxml

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/customeros/trustwatch/config"
)

func testConfig(url string) *config.WhoisConfig {
	return &config.WhoisConfig{
		Url:            url,
		ApiKey:         "test-key",
		TimeoutSeconds: 1,
	}
}

func TestLookup_ParsesRecord(t *testing.T) {
	created := time.Now().UTC().AddDate(0, 0, -1000).Format(time.RFC3339)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "example.com", r.URL.Query().Get("domainName"))
		fmt.Fprintf(w, `{"WhoisRecord": {
			"createdDate": %q,
			"registrarName": "MarkMonitor Inc.",
			"status": "clientTransferProhibited",
			"nameServers": {"hostNames": ["ns1.cloudflare.com", "ns2.cloudflare.com"]}
		}}`, created)
	}))
	defer server.Close()

	service := NewWhoisService(testConfig(server.URL))

	signal := service.Lookup(context.Background(), "example.com")

	require.True(t, signal.Valid)
	require.NotNil(t, signal.Value.AgeDays)
	assert.InDelta(t, 1000, *signal.Value.AgeDays, 1)
	assert.Equal(t, "MarkMonitor Inc.", signal.Value.Registrar)
	assert.Equal(t, "clientTransferProhibited", signal.Value.DomainStatus)
	assert.Equal(t, []string{"ns1.cloudflare.com", "ns2.cloudflare.com"}, signal.Value.Nameservers)
}

func TestLookup_FallsBackToRegistryData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"WhoisRecord": {
			"registrarName": "Example Registrar",
			"registryData": {
				"createdDate": "2010-05-01T00:00:00Z",
				"nameServers": {"hostNames": ["ns1.example.net"]}
			}
		}}`)
	}))
	defer server.Close()

	service := NewWhoisService(testConfig(server.URL))

	signal := service.Lookup(context.Background(), "example.com")

	require.True(t, signal.Valid)
	require.NotNil(t, signal.Value.CreatedDate)
	assert.Equal(t, []string{"ns1.example.net"}, signal.Value.Nameservers)
}

func TestLookup_PrivacyMaskedDateStaysAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"WhoisRecord": {"registrarName": "Some Registrar"}}`)
	}))
	defer server.Close()

	service := NewWhoisService(testConfig(server.URL))

	signal := service.Lookup(context.Background(), "example.com")

	require.True(t, signal.Valid)
	assert.Nil(t, signal.Value.CreatedDate)
	assert.Nil(t, signal.Value.AgeDays)
	assert.Equal(t, "Some Registrar", signal.Value.Registrar)
}

func TestLookup_MissingKeySkipsCall(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.ApiKey = ""
	service := NewWhoisService(cfg)

	signal := service.Lookup(context.Background(), "example.com")

	assert.False(t, signal.Valid)
	assert.False(t, called)
}

func TestLookup_UpstreamErrorDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	service := NewWhoisService(testConfig(server.URL))

	signal := service.Lookup(context.Background(), "example.com")

	assert.False(t, signal.Valid)
}

func TestLookup_TimeoutDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1500 * time.Millisecond)
	}))
	defer server.Close()

	service := NewWhoisService(testConfig(server.URL))

	signal := service.Lookup(context.Background(), "example.com")

	assert.False(t, signal.Valid)
}

func TestLookup_MalformedResponseDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	service := NewWhoisService(testConfig(server.URL))

	signal := service.Lookup(context.Background(), "example.com")

	assert.False(t, signal.Valid)
}
