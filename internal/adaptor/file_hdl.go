package adaptor

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"kryptonite/internal/usecase"
	"kryptonite/pkg/utils"

	"go.uber.org/zap"
)

// uploads larger than this are rejected during multipart parsing
const maxUploadSize = 32 << 20 // 32 MB

type FileHandler struct {
	service usecase.FileService
	log     *zap.Logger
}

func NewFileHandler(service usecase.FileService, log *zap.Logger) *FileHandler {
	return &FileHandler{
		service: service,
		log:     log,
	}
}

// Upload handles POST /files/upload (multipart field "image")
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	apiKey, ok := utils.GetAPIKeyFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized to perform this action")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing image field", nil)
		return
	}
	defer file.Close()

	contentType, ok := allowedImageType(header.Filename)
	if !ok {
		utils.ResponseBadRequest(w, "Only jpg, jpeg, png and svg files are allowed", nil)
		return
	}

	msg, err := h.service.Upload(r.Context(), apiKey, contentType, file)
	if err != nil {
		h.handleServiceError(w, err, "upload")
		return
	}

	utils.ResponseSuccess(w, msg, nil)
}

// AllFiles handles GET /files
func (h *FileHandler) AllFiles(w http.ResponseWriter, r *http.Request) {
	apiKey, ok := utils.GetAPIKeyFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized to perform this action")
		return
	}

	resp, err := h.service.AllFiles(r.Context(), apiKey)
	if err != nil {
		h.handleServiceError(w, err, "list files")
		return
	}

	utils.ResponseSuccess(w, "Files retrieved", resp)
}

// allowedImageType whitelists upload extensions and maps them to a
// content type for storage.
func allowedImageType(filename string) (string, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", true
	case ".png":
		return "image/png", true
	case ".svg":
		return "image/svg+xml", true
	default:
		return "", false
	}
}

func (h *FileHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		h.log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, "Unauthorized to perform this action")

	case errors.Is(err, usecase.ErrNoFiles):
		h.log.Warn(operation+" failed - no files", zap.Error(err))
		utils.ResponseNotFound(w, "No images found")

	case errors.Is(err, usecase.ErrStorageUnavailable):
		h.log.Error(operation+" failed - storage unavailable", zap.Error(err))
		utils.ResponseServiceUnavailable(w, "An error occurred while uploading the image")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
