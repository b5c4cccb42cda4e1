package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/customeros/trustwatch/internal/enum"
	er "github.com/customeros/trustwatch/internal/errors"
	"github.com/customeros/trustwatch/internal/models"
	"github.com/customeros/trustwatch/services"
)

type stubWebsiteVerifier struct {
	result *models.WebsiteVerification
	err    error
}

func (s stubWebsiteVerifier) VerifyWebsite(ctx context.Context, website string) (*models.WebsiteVerification, error) {
	return s.result, s.err
}

type stubEmailVerifier struct {
	result *models.EmailVerification
	err    error
}

func (s stubEmailVerifier) VerifyEmail(ctx context.Context, email string) (*models.EmailVerification, error) {
	return s.result, s.err
}

func newRouter(s *services.Services) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	apiHandlers := InitHandlers(s)
	router.POST("/verifyWebsite", apiHandlers.Verify.VerifyWebsite())
	router.POST("/verifyEmail", apiHandlers.Verify.VerifyEmail())
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestVerifyWebsite_MissingFieldReturnsDocumentedError(t *testing.T) {
	router := newRouter(&services.Services{
		WebsiteVerifier: stubWebsiteVerifier{err: er.ErrWebsiteRequired},
	})

	recorder := postJSON(router, "/verifyWebsite", `{}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.JSONEq(t, `{"error": true, "message": "Website URL is required."}`, recorder.Body.String())
}

func TestVerifyWebsite_MalformedBodyReturnsDocumentedError(t *testing.T) {
	router := newRouter(&services.Services{
		WebsiteVerifier: stubWebsiteVerifier{},
	})

	recorder := postJSON(router, "/verifyWebsite", ``)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.JSONEq(t, `{"error": true, "message": "Website URL is required."}`, recorder.Body.String())
}

func TestVerifyWebsite_Success(t *testing.T) {
	router := newRouter(&services.Services{
		WebsiteVerifier: stubWebsiteVerifier{result: &models.WebsiteVerification{
			Domain:    "example.com",
			Score:     98,
			Status:    enum.StatusLikelyLegitimate,
			RiskLevel: enum.RiskLow,
			Summary:   []string{"Domain active for 2.7 years", "Valid HTTPS detected"},
			Timestamp: time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
		}},
	})

	recorder := postJSON(router, "/verifyWebsite", `{"website": "https://example.com"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	require.Equal(t, "example.com", payload["domain"])
	require.Equal(t, float64(98), payload["score"])
	require.Equal(t, "Likely Legitimate", payload["status"])
	require.Equal(t, "Low", payload["riskLevel"])
	require.Contains(t, payload, "timestamp")
	require.Equal(t, []interface{}{"Domain active for 2.7 years", "Valid HTTPS detected"}, payload["summary"])
}

func TestVerifyWebsite_InternalFailure(t *testing.T) {
	router := newRouter(&services.Services{
		WebsiteVerifier: stubWebsiteVerifier{err: errors.New("collector wiring broken")},
	})

	recorder := postJSON(router, "/verifyWebsite", `{"website": "example.com"}`)

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.JSONEq(t, `{"error": true, "message": "Unable to verify website"}`, recorder.Body.String())
}

func TestVerifyEmail_MissingFieldReturnsDocumentedError(t *testing.T) {
	router := newRouter(&services.Services{
		EmailVerifier: stubEmailVerifier{err: er.ErrMissingEmail},
	})

	recorder := postJSON(router, "/verifyEmail", `{}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.JSONEq(t, `{"error": "Missing email parameter"}`, recorder.Body.String())
}

func TestVerifyEmail_InvalidFormatReturnsDocumentedError(t *testing.T) {
	router := newRouter(&services.Services{
		EmailVerifier: stubEmailVerifier{err: er.ErrInvalidEmailFormat},
	})

	recorder := postJSON(router, "/verifyEmail", `{"email": "no-at-sign"}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.JSONEq(t, `{"error": "Invalid email format"}`, recorder.Body.String())
}

func TestVerifyEmail_UpstreamFailurePropagatesStatus(t *testing.T) {
	router := newRouter(&services.Services{
		EmailVerifier: stubEmailVerifier{err: er.NewUpstreamStatusError("EmailRep", http.StatusTooManyRequests, `{"reason":"limit exceeded"}`)},
	})

	recorder := postJSON(router, "/verifyEmail", `{"email": "user@bigcorp.com"}`)

	require.Equal(t, http.StatusTooManyRequests, recorder.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	require.Equal(t, `EmailRep API error: {"reason":"limit exceeded"}`, payload["error"])
}

func TestVerifyEmail_Success(t *testing.T) {
	ageDays := 730
	router := newRouter(&services.Services{
		EmailVerifier: stubEmailVerifier{result: &models.EmailVerification{
			Email:         "user@bigcorp.com",
			Domain:        "bigcorp.com",
			IsValid:       true,
			Status:        "medium",
			RiskLevel:     enum.RiskMedium,
			SpamScore:     12.5,
			DomainAgeDays: &ageDays,
			DomainStatus:  "registered",
			Summary:       []string{"Email reputation: medium", "Business domain detected"},
			Timestamp:     time.Now(),
		}},
	})

	recorder := postJSON(router, "/verifyEmail", `{"email": "user@bigcorp.com"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	require.Equal(t, "user@bigcorp.com", payload["email"])
	require.Equal(t, "bigcorp.com", payload["domain"])
	require.Equal(t, true, payload["isValid"])
	require.Equal(t, "medium", payload["status"])
	require.Equal(t, "Medium", payload["riskLevel"])
	require.Equal(t, 12.5, payload["spamScore"])
	require.Equal(t, float64(730), payload["domainAgeDays"])
	require.Equal(t, "registered", payload["domainStatus"])
	require.NotContains(t, payload, "timestamp", "email responses carry no timestamp")
}

func TestVerifyEmail_AbsentAgeOmitted(t *testing.T) {
	router := newRouter(&services.Services{
		EmailVerifier: stubEmailVerifier{result: &models.EmailVerification{
			Email:        "user@bigcorp.com",
			Domain:       "bigcorp.com",
			IsValid:      true,
			Status:       "high",
			RiskLevel:    enum.RiskLow,
			DomainStatus: "N/A",
			Summary:      []string{"Email reputation: high"},
		}},
	})

	recorder := postJSON(router, "/verifyEmail", `{"email": "user@bigcorp.com"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	require.NotContains(t, payload, "domainAgeDays")
	require.Equal(t, "N/A", payload["domainStatus"])
	require.Equal(t, float64(0), payload["spamScore"])
}
