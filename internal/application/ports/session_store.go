package ports

import (
	"context"

	"file-manager-api/internal/domain/user"
)

// SessionStore maps opaque tokens to user ids for a bounded lifetime.
// Resolve returns uuid.Nil for tokens that were never issued, were
// destroyed, or expired; callers cannot tell those cases apart.
type SessionStore interface {
	Create(ctx context.Context, userID user.UUID) (string, error)
	Resolve(ctx context.Context, token string) (user.UUID, error)
	Destroy(ctx context.Context, token string) error
	Ping(ctx context.Context) error
}
