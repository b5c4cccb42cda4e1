package httpsprobe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/customeros/trustwatch/config"
)

func newTestService(server *httptest.Server, maxRedirects int) *httpsProbeService {
	client := server.Client()
	client.Timeout = 1 * time.Second
	client.CheckRedirect = redirectLimiter(maxRedirects)
	return &httpsProbeService{
		cfg:    &config.HttpsProbeConfig{TimeoutSeconds: 1, MaxRedirects: maxRedirects},
		client: client,
	}
}

func serverDomain(server *httptest.Server) string {
	return strings.TrimPrefix(server.URL, "https://")
}

func TestProbe_SecureSiteWithTitle(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><head><title> Acme Corp </title></head><body>hi</body></html>"))
	}))
	defer server.Close()

	service := newTestService(server, 2)

	signal := service.Probe(context.Background(), serverDomain(server))

	probe, present := signal.Get()
	require.True(t, present)
	require.True(t, probe.IsSecure)
	require.Equal(t, "Acme Corp", probe.PageTitle)
}

func TestProbe_NoTitleStillSecure(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain text"))
	}))
	defer server.Close()

	service := newTestService(server, 2)

	signal := service.Probe(context.Background(), serverDomain(server))

	probe, present := signal.Get()
	require.True(t, present)
	require.True(t, probe.IsSecure)
	require.Empty(t, probe.PageTitle)
}

func TestProbe_ServerErrorNotSecure(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := newTestService(server, 2)

	signal := service.Probe(context.Background(), serverDomain(server))

	probe, present := signal.Get()
	require.True(t, present)
	require.False(t, probe.IsSecure)
}

func TestProbe_RedirectOffHttpsNotSecure(t *testing.T) {
	plain := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><head><title>Insecure</title></head></html>"))
	}))
	defer plain.Close()

	secure := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, plain.URL, http.StatusFound)
	}))
	defer secure.Close()

	service := newTestService(secure, 2)

	signal := service.Probe(context.Background(), serverDomain(secure))

	probe, present := signal.Get()
	require.True(t, present)
	require.False(t, probe.IsSecure)
}

func TestProbe_TooManyRedirectsNotSecure(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+r.URL.Path+"/hop", http.StatusFound)
	}))
	defer server.Close()

	service := newTestService(server, 2)

	signal := service.Probe(context.Background(), serverDomain(server))

	probe, present := signal.Get()
	require.True(t, present)
	require.False(t, probe.IsSecure)
}

func TestProbe_UnreachableHostNotSecure(t *testing.T) {
	service := NewHttpsProbeService(&config.HttpsProbeConfig{TimeoutSeconds: 1, MaxRedirects: 2})

	signal := service.Probe(context.Background(), "127.0.0.1:1")

	probe, present := signal.Get()
	require.True(t, present)
	require.False(t, probe.IsSecure)
}

func TestProbe_SlowServerNotSecure(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	service := newTestService(server, 2)

	signal := service.Probe(context.Background(), serverDomain(server))

	probe, present := signal.Get()
	require.True(t, present)
	require.False(t, probe.IsSecure)
}
