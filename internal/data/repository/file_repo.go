package repository

import (
	"context"
	"fmt"

	"kryptonite/internal/data/entity"
	"kryptonite/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FileRepository interface {
	Create(ctx context.Context, file *entity.File) error
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.File, error)
}

type fileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFileRepository(db database.PgxIface, log *zap.Logger) FileRepository {
	return &fileRepository{
		db:  db,
		log: log.With(zap.String("repository", "file")),
	}
}

func (r *fileRepository) Create(ctx context.Context, file *entity.File) error {
	query := `
		INSERT INTO files (id, user_id, url, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		file.ID,
		file.UserID,
		file.URL,
		file.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create file",
			zap.Error(err),
			zap.String("user_id", file.UserID.String()),
			zap.String("url", file.URL),
		)
		return fmt.Errorf("create file for user %s: %w", file.UserID.String(), err)
	}

	return nil
}

func (r *fileRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.File, error) {
	query := `
		SELECT id, user_id, url, created_at
		FROM files
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to get files",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find files for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var files []*entity.File
	for rows.Next() {
		var file entity.File
		err := rows.Scan(
			&file.ID,
			&file.UserID,
			&file.URL,
			&file.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan file row", zap.Error(err))
			return nil, fmt.Errorf("scan file row: %w", err)
		}
		files = append(files, &file)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate files rows: %w", err)
	}

	return files, nil
}
