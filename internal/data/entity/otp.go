package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTP rows are append-only: never updated, never deleted.
// ExpiresAt is always CreatedAt + the configured expiry window.
type OTP struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
}
