package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"kryptonite/internal/data/entity"
	"kryptonite/internal/data/repository"
	"kryptonite/internal/dto/response"
	"kryptonite/pkg/storage"
	"kryptonite/pkg/utils"

	"go.uber.org/zap"
)

const MsgUploaded = "Image successfully uploaded"

type FileService interface {
	IsValidKey(ctx context.Context, apiKey string) error
	Upload(ctx context.Context, apiKey, contentType string, content io.Reader) (string, error)
	AllFiles(ctx context.Context, apiKey string) (*response.FilesResponse, error)
}

type fileService struct {
	repo     *repository.Repository
	uploader storage.Uploader
	log      *zap.Logger
}

func NewFileService(
	repo *repository.Repository,
	uploader storage.Uploader,
	log *zap.Logger,
) FileService {
	return &fileService{
		repo:     repo,
		uploader: uploader,
		log:      log,
	}
}

// IsValidKey is the access-control check behind the API-key guard.
func (s *fileService) IsValidKey(ctx context.Context, apiKey string) error {
	user, err := s.repo.User.FindByAPIKey(ctx, apiKey)
	if err != nil {
		s.log.Error("Failed to look up api key", zap.Error(err))
		return fmt.Errorf("find user by api key: %w", err)
	}
	if user == nil {
		return ErrUnauthorized
	}
	return nil
}

func (s *fileService) Upload(ctx context.Context, apiKey, contentType string, content io.Reader) (string, error) {
	// 1. Resolve the key before touching storage
	user, err := s.repo.User.FindByAPIKey(ctx, apiKey)
	if err != nil {
		s.log.Error("Failed to look up api key for upload", zap.Error(err))
		return "", fmt.Errorf("find user by api key: %w", err)
	}
	if user == nil {
		return "", ErrUnauthorized
	}

	// 2. Stream to object storage. No retry: any error aborts the upload.
	key := utils.GenerateStorageKey()
	url, err := s.uploader.Upload(ctx, key, contentType, content)
	if err != nil {
		s.log.Error("Upload to object storage failed",
			zap.Error(err),
			zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	// 3. Persist the file record
	file := &entity.File{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		UserID: user.ID,
		URL:    url,
	}

	if err := s.repo.File.Create(ctx, file); err != nil {
		s.log.Error("Failed to save file record",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
			zap.String("url", url))
		return "", fmt.Errorf("save file: %w", err)
	}

	s.log.Info("File uploaded",
		zap.String("user_id", user.ID.String()),
		zap.String("file_id", file.ID.String()),
		zap.String("url", url))

	return MsgUploaded, nil
}

func (s *fileService) AllFiles(ctx context.Context, apiKey string) (*response.FilesResponse, error) {
	user, err := s.repo.User.FindByAPIKey(ctx, apiKey)
	if err != nil {
		s.log.Error("Failed to look up api key for listing", zap.Error(err))
		return nil, fmt.Errorf("find user by api key: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	files, err := s.repo.File.FindAllByUser(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to list files",
			zap.Error(err),
			zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("list files: %w", err)
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	return response.FilesToResponse(files), nil
}
