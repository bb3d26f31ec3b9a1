package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/leadlink/internal/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleErrorGin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedErr  string
	}{
		{"not found", apperrors.Wrap(apperrors.ErrNotFound, "realtor not found"), http.StatusNotFound, "not_found"},
		{"conflict", apperrors.Wrap(apperrors.ErrConflict, "email taken"), http.StatusConflict, "conflict"},
		{"invalid input", apperrors.Wrap(apperrors.ErrInvalidInput, "bad token"), http.StatusUnprocessableEntity, "invalid_input"},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"internal", errors.New("database exploded"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()

			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedErr, decodeError(t, w).Error)
		})
	}

	t.Run("invalid input keeps message", func(t *testing.T) {
		c, w := newTestContext()

		HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid token format"), logger)

		assert.Equal(t, "invalid token format: invalid input", decodeError(t, w).Message)
	})

	t.Run("internal error hides details", func(t *testing.T) {
		c, w := newTestContext()

		HandleErrorGin(c, errors.New("secret detail"), nil)

		assert.NotContains(t, w.Body.String(), "secret detail")
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		c, w := newTestContext()

		HandleErrorGin(c, nil, logger)

		assert.Empty(t, w.Body.String())
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext()

	HandleBadRequestGin(c, errors.New("unexpected EOF"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "bad_request", resp.Error)
	assert.Equal(t, "unexpected EOF", resp.Message)
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext()

	HandleValidationErrorGin(c, errors.New("email: must be a valid email address"), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "validation_error", decodeError(t, w).Error)
}

func TestHandleErrorGin_EchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(requestid.New())
	router.GET("/v1/public/forms", func(c *gin.Context) {
		HandleErrorGin(c, apperrors.Wrap(apperrors.ErrNotFound, "realtor not found"), nil)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/public/forms", nil)
	req.Header.Set("X-Request-Id", "req-123")
	router.ServeHTTP(w, req)

	resp := decodeError(t, w)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-Id"))
}

func TestHandleErrorGin_ForbiddenForInactiveLink(t *testing.T) {
	c, w := newTestContext()

	HandleErrorGin(c, apperrors.Wrap(apperrors.ErrForbidden, "share token is no longer active"), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "forbidden", resp.Error)
	assert.Equal(t, "This share link can no longer be used", resp.Message)
	assert.Empty(t, resp.RequestID)
}
