package utils

import (
	"encoding/base64"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

// ==================== OTP ====================

// GenerateOTPCode returns a uniformly random six-digit code in [100000, 999999].
func GenerateOTPCode() string {
	code := rand.Intn(900000) + 100000
	return fmt.Sprintf("%d", code)
}

// ==================== API KEY ====================

// DeriveAPIKey derives the user's long-lived key from email and id.
// Deterministic: the same user always gets the same key.
func DeriveAPIKey(email string, id uuid.UUID) string {
	return base64.StdEncoding.EncodeToString([]byte(email + id.String()))
}

// ==================== STORAGE KEY ====================

// GenerateStorageKey returns a date-partitioned random object key.
func GenerateStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("uploads/%d/%d/%d/%v", d.Year(), int(d.Month()), d.Day(), uuid.New())
}
