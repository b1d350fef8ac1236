package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kryptonite/internal/data/entity"
	"kryptonite/internal/dto/request"
	"kryptonite/internal/dto/response"
	"kryptonite/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	verifyErr   error
	keyErr      error
	deleteErr   error
	apiKey      string
}

func (s *stubAuthService) Register(ctx context.Context, req *request.EmailRequest) (string, error) {
	if s.registerErr != nil {
		return "", s.registerErr
	}
	return usecase.MsgRegistered, nil
}

func (s *stubAuthService) Login(ctx context.Context, req *request.EmailRequest) (string, error) {
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return usecase.MsgOTPSent, nil
}

func (s *stubAuthService) GenerateOTP(ctx context.Context, user *entity.User) (string, error) {
	return "123456", nil
}

func (s *stubAuthService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (string, error) {
	if s.verifyErr != nil {
		return "", s.verifyErr
	}
	return usecase.MsgLoggedIn, nil
}

func (s *stubAuthService) GenerateAPIKey(ctx context.Context, req *request.EmailRequest) (*response.APIKeyResponse, error) {
	if s.keyErr != nil {
		return nil, s.keyErr
	}
	return &response.APIKeyResponse{APIKey: s.apiKey}, nil
}

func (s *stubAuthService) DeleteAPIKey(ctx context.Context, req *request.EmailRequest) (string, error) {
	if s.deleteErr != nil {
		return "", s.deleteErr
	}
	return usecase.MsgKeyDeleted, nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{}, zap.NewNop())
		rec := postJSON(t, h.Register, `{"email":"a@x.com"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{registerErr: usecase.ErrEmailExists}, zap.NewNop())
		rec := postJSON(t, h.Register, `{"email":"a@x.com"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid email rejected before the service", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{}, zap.NewNop())
		rec := postJSON(t, h.Register, `{"email":"not-an-email"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("unknown user maps to 400", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{loginErr: usecase.ErrNoUser}, zap.NewNop())
		rec := postJSON(t, h.Login, `{"email":"a@x.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVerifyOTPHandler(t *testing.T) {
	t.Run("code must be six digits", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{}, zap.NewNop())
		rec := postJSON(t, h.VerifyOTP, `{"email":"a@x.com","code":"12345"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong code maps to 401", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{verifyErr: usecase.ErrWrongOTP}, zap.NewNop())
		rec := postJSON(t, h.VerifyOTP, `{"email":"a@x.com","code":"123456"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired code maps to 400", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{verifyErr: usecase.ErrOTPExpired}, zap.NewNop())
		rec := postJSON(t, h.VerifyOTP, `{"email":"a@x.com","code":"123456"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGenerateAPIKeyHandler(t *testing.T) {
	t.Run("returns the key in the response data", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{apiKey: "the-key"}, zap.NewNop())
		rec := postJSON(t, h.GenerateAPIKey, `{"email":"a@x.com"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Message string `json:"message"`
			Data    struct {
				APIKey string `json:"api_key"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, usecase.MsgKeySaved, body.Message)
		assert.Equal(t, "the-key", body.Data.APIKey)
	})

	t.Run("disallowed transition maps to 401", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{keyErr: usecase.ErrUnauthorized}, zap.NewNop())
		rec := postJSON(t, h.GenerateAPIKey, `{"email":"a@x.com"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
