package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wedding/guesthub/internal/repository"
	"wedding/guesthub/internal/service"
	"wedding/guesthub/pkg/response"
)

// parseIDParam reads a positive integer path parameter, writing a 400 on failure.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// parseIDList parses "1,2,3". Blank input yields nil.
func parseIDList(s string) ([]uint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil || id == 0 {
			return nil, errors.New("ids must be a comma-separated list of positive integers")
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// respondError maps service errors onto status codes. Unexpected errors are
// logged and reported as fallback.
func respondError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrGuestNotFound),
		errors.Is(err, service.ErrWishNotFound),
		errors.Is(err, service.ErrEventSettingsNotFound),
		errors.Is(err, service.ErrInvalidQRCode):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, repository.ErrConflict):
		response.Conflict(c, "resource already exists")
	default:
		logger.Error(fallback,
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
		)
		response.InternalError(c, fallback)
	}
}
