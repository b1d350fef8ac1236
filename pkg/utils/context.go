package utils

import (
	"context"
)

type contextKey string

const (
	APIKeyKey contextKey = "api_key"
)

// SetAPIKeyContext menambahkan api key ke context
func SetAPIKeyContext(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, APIKeyKey, key)
}

// GetAPIKeyFromContext mendapatkan api key dari context
func GetAPIKeyFromContext(ctx context.Context) (string, bool) {
	keyVal := ctx.Value(APIKeyKey)
	if keyVal == nil {
		return "", false
	}

	key, ok := keyVal.(string)
	return key, ok
}
