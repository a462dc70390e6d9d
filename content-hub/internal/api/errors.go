package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/importer"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/repository"
	infraerrors "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/errors"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

// statusFor maps a facade error onto the status returned to site clients.
// Backend 4xx statuses pass through with the backend's message; anything
// else from the backend is reported as a bad gateway.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrUnknownResource):
		return http.StatusNotFound, "Unknown resource"
	case errors.Is(err, models.ErrInvalidSite):
		return http.StatusBadRequest, "Unknown site"
	case errors.Is(err, models.ErrNoFieldsToUpdate):
		return http.StatusBadRequest, "No fields to update"
	case errors.Is(err, repository.ErrInvalidSubmission),
		errors.Is(err, importer.ErrMissingColumns):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Backend timed out"
	}

	if reqErr, ok := infraerrors.AsRequestError(err); ok {
		if reqErr.StatusCode >= http.StatusBadRequest && reqErr.StatusCode < http.StatusInternalServerError {
			return reqErr.StatusCode, reqErr.Message
		}
		return http.StatusBadGateway, reqErr.Message
	}
	if errors.Is(err, models.ErrNotFound) {
		return http.StatusNotFound, "Not found"
	}
	return http.StatusBadGateway, "Backend unavailable"
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	status, msg := statusFor(err)
	fields := []logger.Field{
		logger.String("op", op),
		logger.String("path", c.Request.URL.Path),
		logger.Int("status", status),
		logger.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.log.Error("Request failed", fields...)
	} else {
		h.log.Debug("Request rejected", fields...)
	}
	c.JSON(status, gin.H{"error": msg})
}
