package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"wedding/guesthub/internal/repository"
	"wedding/guesthub/internal/service"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
		logged   bool
	}{
		{"validation", fmt.Errorf("submit: %w", service.ErrValidation), http.StatusBadRequest, "submit: validation failed", false},
		{"guest missing", service.ErrGuestNotFound, http.StatusNotFound, "guest not found", false},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials", false},
		{"unique violation", fmt.Errorf("create guest: %w", repository.ErrConflict), http.StatusConflict, "resource already exists", false},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "failed to do thing", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/guests", nil)

			respondError(c, zap.New(core), tt.err, "failed to do thing")

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, w))
			assert.Equal(t, tt.logged, logs.Len() == 1)
		})
	}
}
