package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/customeros/trustwatch/interfaces"
)

// HealthCheck provides a simple health check endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Status returns the last known state of the external signal providers
func Status(monitor interfaces.StatusMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"providers": monitor.Snapshot(),
		})
	}
}
