package http_access_middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/meulencv/wenomadus/internal/delivery/http/common"
)

const ModeReadOnly = "RO"

// ReadOnlyBadGatewayMiddleware rejects every method that can change rooms,
// responses or the catalog when the instance runs in read-only mode.
func ReadOnlyBadGatewayMiddleware(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode != ModeReadOnly {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusBadGateway, http_common.ErrorResponse{
			Message: "write operations not allowed on read-only instance",
		})
	}
}
