package entity

import (
	"github.com/google/uuid"
)

type File struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	URL    string    `db:"url"`
}
