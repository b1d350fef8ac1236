package wire

import (
	"kryptonite/internal/adaptor"
	"kryptonite/internal/usecase"
	"kryptonite/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireFile configures the file routes behind the API-key guard.
func wireFile(
	r chi.Router,
	fileHandler *adaptor.FileHandler,
	fileService usecase.FileService,
	log *zap.Logger,
) {
	r.Route("/files", func(r chi.Router) {
		r.Use(middleware.APIKey(fileService, log))

		r.Post("/upload", fileHandler.Upload)
		r.Get("/", fileHandler.AllFiles)
	})
}
