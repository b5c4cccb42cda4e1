package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/customeros/trustwatch/dto"
	"github.com/customeros/trustwatch/interfaces"
	er "github.com/customeros/trustwatch/internal/errors"
	"github.com/customeros/trustwatch/internal/tracing"
	"github.com/customeros/trustwatch/services"
)

type VerifyHandler struct {
	websiteVerifier interfaces.WebsiteVerifier
	emailVerifier   interfaces.EmailVerifier
}

func NewVerifyHandler(s *services.Services) *VerifyHandler {
	return &VerifyHandler{
		websiteVerifier: s.WebsiteVerifier,
		emailVerifier:   s.EmailVerifier,
	}
}

// VerifyWebsite scores a website URL. The response shapes here are a
// public contract, the messages are matched by the consuming frontends.
func (h *VerifyHandler) VerifyWebsite() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "VerifyHandler.VerifyWebsite")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		var request dto.VerifyWebsiteRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": er.ErrWebsiteRequired.Error()})
			return
		}

		result, err := h.websiteVerifier.VerifyWebsite(ctx, request.Website)
		if err != nil {
			if er.IsInvalidInput(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
				return
			}
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Unable to verify website"})
			return
		}

		c.JSON(http.StatusOK, dto.VerifyWebsiteResponse{
			Domain:    result.Domain,
			Score:     result.Score,
			Status:    result.Status.String(),
			Summary:   result.Summary,
			RiskLevel: result.RiskLevel.String(),
			Timestamp: result.Timestamp,
		})
	}
}

// VerifyEmail scores an email address. A reputation provider failure is
// passed through with the provider's own status code.
func (h *VerifyHandler) VerifyEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "VerifyHandler.VerifyEmail")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		var request dto.VerifyEmailRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": er.ErrMissingEmail.Error()})
			return
		}

		result, err := h.emailVerifier.VerifyEmail(ctx, request.Email)
		if err != nil {
			var upstreamErr *er.UpstreamStatusError
			switch {
			case errors.As(err, &upstreamErr):
				tracing.TraceErr(span, err)
				c.JSON(upstreamErr.StatusCode, gin.H{"error": "EmailRep API error: " + upstreamErr.Body})
			case er.IsInvalidInput(err):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				tracing.TraceErr(span, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to verify email"})
			}
			return
		}

		c.JSON(http.StatusOK, dto.VerifyEmailResponse{
			Email:         result.Email,
			Domain:        result.Domain,
			IsValid:       result.IsValid,
			Status:        result.Status,
			RiskLevel:     result.RiskLevel.String(),
			SpamScore:     result.SpamScore,
			DomainAgeDays: result.DomainAgeDays,
			DomainStatus:  result.DomainStatus,
			Summary:       result.Summary,
		})
	}
}
