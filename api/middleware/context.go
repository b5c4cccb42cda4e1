package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/customeros/trustwatch/internal/utils"
)

const requestIdHeader = "X-TRUSTWATCH-REQUEST-ID"

// CustomContextMiddleware attaches the app source, a request id and the
// client ip to the request context. The request id is taken from the
// inbound header when the caller supplies one, minted otherwise, and
// always echoed back on the response.
func CustomContextMiddleware(appSource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(requestIdHeader)
		if requestId == "" {
			requestId = uuid.New().String()
		}
		c.Set("RequestId", requestId)
		c.Header(requestIdHeader, requestId)

		ctx := utils.WithCustomContextFromGinRequest(c, appSource)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
