package http_auth_middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/meulencv/wenomadus/internal/delivery/http/common"
	auth_client "github.com/meulencv/wenomadus/internal/infra/auth"
)

type Middleware struct {
	client auth_client.TokenValidator
	logger *slog.Logger
}

func New(
	client auth_client.TokenValidator,
) *Middleware {
	return &Middleware{
		client: client,
		logger: slog.Default(),
	}
}

func (m *Middleware) AuthRequired() gin.HandlerFunc {
	const header = http_common.AdminTokenHeader
	return func(ctx *gin.Context) {
		t := ctx.GetHeader(header)
		if t == "" {
			m.logger.Warn(fmt.Sprintf("no %s header", header), slog.String("path", ctx.FullPath()))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: fmt.Sprintf("no %s header", header),
			})
			return
		}

		valid, err := m.client.ValidateToken(t)
		if err != nil {
			m.logger.Error("internal error", slog.String("error", err.Error()))
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
			return
		}
		if !valid {
			m.logger.Warn("invalid admin token", slog.String("path", ctx.FullPath()))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "invalid token",
			})
			return
		}
		ctx.Next()
	}
}
