package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"file-manager-api/config"
	"file-manager-api/internal/application/ports"
	"file-manager-api/internal/domain/user"
)

// TTL after which an untouched session silently disappears. Expiry is
// enforced by redis itself, no sweep runs here.
const sessionTTL = 24 * time.Hour

const keyPrefix = "auth_"

type Store struct {
	log *zap.Logger
	rdb *redis.Client
}

func New(ctx context.Context, logger *zap.Logger, cfg config.Redis, addr string) (ports.SessionStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("redis connected successfully")

	return &Store{log: logger, rdb: rdb}, nil
}

// Create issues a fresh unguessable token mapped to userID for sessionTTL.
func (s *Store) Create(ctx context.Context, userID user.UUID) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, sessionKey(token), userID.String(), sessionTTL).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Resolve returns uuid.Nil for unknown, destroyed and expired tokens alike.
func (s *Store) Resolve(ctx context.Context, token string) (user.UUID, error) {
	val, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}

	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// Destroy is idempotent: deleting an unknown token is not an error.
func (s *Store) Destroy(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func sessionKey(token string) string { return keyPrefix + token }
