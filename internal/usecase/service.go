package usecase

import (
	"kryptonite/internal/data/repository"
	"kryptonite/pkg/mailer"
	"kryptonite/pkg/storage"
	"kryptonite/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
	File FileService
}

func NewService(
	repo *repository.Repository,
	mail mailer.Sender,
	uploader storage.Uploader,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth: NewAuthService(repo, mail, config, log),
		File: NewFileService(repo, uploader, log),
	}
}
