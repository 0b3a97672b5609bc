package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/transit-directory/internal/domain/repository"
	"github.com/transit-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

type tokenRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewTokenRepository builds the revocation list for logged-out JWTs. Entries
// expire together with the token they block, so the set stays small.
func NewTokenRepository(r *Redis) repository.TokenRepository {
	return &tokenRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

func revokedKey(tokenID string) string {
	return fmt.Sprintf("auth:revoked:%s", tokenID)
}

func (r *tokenRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to block.
		return nil
	}

	if err := r.client.Set(ctx, revokedKey(tokenID), 1, ttl).Err(); err != nil {
		r.logger.Error("Failed to revoke token", zap.String("token_id", tokenID), zap.Error(err))
		return errors.ErrTokenStoreError
	}

	return nil
}

func (r *tokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	val, err := r.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		r.logger.Error("Failed to check token revocation", zap.String("token_id", tokenID), zap.Error(err))
		return false, errors.ErrTokenStoreError
	}
	return val > 0, nil
}
