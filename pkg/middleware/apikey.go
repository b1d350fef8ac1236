package middleware

import (
	"errors"
	"net/http"

	"kryptonite/internal/usecase"
	"kryptonite/pkg/utils"

	"go.uber.org/zap"
)

// APIKey middleware untuk validasi x-api-key header pada file routes.
// Registration/login/OTP routes stay unauthenticated: they establish identity.
func APIKey(fileService usecase.FileService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Header lookup is case-insensitive
			apiKey := r.Header.Get("x-api-key")
			if apiKey == "" {
				utils.ResponseUnauthorized(w, "Unauthorized to perform this action")
				return
			}

			if err := fileService.IsValidKey(r.Context(), apiKey); err != nil {
				if errors.Is(err, usecase.ErrUnauthorized) {
					logger.Warn("Invalid API key", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Unauthorized to perform this action")
					return
				}

				logger.Error("Failed to validate API key", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// Forward the key untuk downstream handlers
			ctx := utils.SetAPIKeyContext(r.Context(), apiKey)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
