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

type OnboardingHandler struct {
	crmForwarder interfaces.CrmForwarder
}

func NewOnboardingHandler(s *services.Services) *OnboardingHandler {
	return &OnboardingHandler{
		crmForwarder: s.CrmForwarder,
	}
}

// Onboard relays a lead payload to the downstream CRM.
func (h *OnboardingHandler) Onboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "OnboardingHandler.Onboard")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		var request dto.OnboardingRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid onboarding payload"})
			return
		}

		requestId, err := h.crmForwarder.ForwardLead(ctx, request)
		if err != nil {
			switch {
			case errors.Is(err, er.ErrInvalidLeadEmail):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, er.ErrCrmNotConfigured):
				tracing.TraceErr(span, err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			case errors.Is(err, er.ErrCrmUnavailable):
				tracing.TraceErr(span, err)
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			default:
				tracing.TraceErr(span, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to forward onboarding request"})
			}
			return
		}

		c.JSON(http.StatusAccepted, dto.OnboardingResponse{
			Status:    "accepted",
			RequestId: requestId,
		})
	}
}
