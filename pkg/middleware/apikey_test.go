package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"kryptonite/internal/dto/response"
	"kryptonite/internal/usecase"
	"kryptonite/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFileService struct {
	validKey string
}

func (s *stubFileService) IsValidKey(ctx context.Context, apiKey string) error {
	if apiKey == s.validKey {
		return nil
	}
	return usecase.ErrUnauthorized
}

func (s *stubFileService) Upload(ctx context.Context, apiKey, contentType string, content io.Reader) (string, error) {
	return "", nil
}

func (s *stubFileService) AllFiles(ctx context.Context, apiKey string) (*response.FilesResponse, error) {
	return nil, nil
}

func TestAPIKeyMiddleware(t *testing.T) {
	svc := &stubFileService{validKey: "valid-key"}

	var gotKey string
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotKey, _ = utils.GetAPIKeyFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := APIKey(svc, zap.NewNop())(next)

	t.Run("missing header", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/files", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("invalid key", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/files", nil)
		req.Header.Set("x-api-key", "wrong")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("valid key forwarded into context", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/files", nil)
		req.Header.Set("x-api-key", "valid-key")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "valid-key", gotKey)
	})

	t.Run("header name is case-insensitive", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/files", nil)
		req.Header.Set("X-API-KEY", "valid-key")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.True(t, called)
		assert.Equal(t, "valid-key", gotKey)
	})
}
