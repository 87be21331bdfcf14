package http_common

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// UserTokenHeader carries a room admin id.
	UserTokenHeader = "X-user-token"
	// AdminTokenHeader carries the catalog administration token.
	AdminTokenHeader = "X-admin-token"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// Abort writes message with status and stops the handler chain.
func Abort(ctx *gin.Context, logger *slog.Logger, status int, message string, err error) {
	if err != nil {
		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(ctx, level, message,
			slog.String("path", ctx.FullPath()),
			slog.Int("status", status),
			slog.String("error", err.Error()))
	}
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
