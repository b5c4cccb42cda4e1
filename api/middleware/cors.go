package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CorsMiddleware sets the CORS response headers and short-circuits
// preflight requests.
func CorsMiddleware(allowedOrigins string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigins)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-TRUSTWATCH-API-KEY, X-TRUSTWATCH-REQUEST-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
