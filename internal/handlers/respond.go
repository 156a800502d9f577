package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manoja-HA/nexus-banking-platform/internal/apperrors"
)

// exposeErrorDetails mirrors the config flag. When false, internal errors are
// reported to clients as a generic message; the real cause still goes to the
// log. Set once at startup before the server accepts traffic.
var exposeErrorDetails bool

// SetExposeErrorDetails configures whether 5xx responses carry the underlying
// error text.
func SetExposeErrorDetails(expose bool) {
	exposeErrorDetails = expose
}

// respondError maps a service error onto its HTTP status and writes the
// {"detail": ...} body clients expect.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status := appErr.Kind.HTTPStatus()
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", slog.String("kind", appErr.Kind.String()), slog.String("error", err.Error()))
			if !exposeErrorDetails {
				c.JSON(status, gin.H{"detail": "Internal server error"})
				return
			}
		} else {
			logger.Warn("request rejected", slog.String("kind", appErr.Kind.String()), slog.String("detail", appErr.Detail))
		}
		c.JSON(status, gin.H{"detail": appErr.Detail})
		return
	}

	logger.Error("request failed", slog.String("error", err.Error()))
	if exposeErrorDetails {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
}
