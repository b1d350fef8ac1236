package wire

import (
	"kryptonite/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth configures the unauthenticated identity routes.
// These establish identity, so no guard applies.
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/verify-otp", authHandler.VerifyOTP)
		r.Post("/api-key", authHandler.GenerateAPIKey)
		r.Delete("/api-key", authHandler.DeleteAPIKey)
	})
}
