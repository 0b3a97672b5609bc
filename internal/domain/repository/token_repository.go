package repository

import (
	"context"
	"time"
)

// TokenRepository tracks revoked JWT IDs (logout). A revoked entry only needs
// to live as long as the token itself, so Revoke takes the remaining TTL.
type TokenRepository interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
