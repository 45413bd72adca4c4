package ports

import (
	"context"

	"file-manager-api/internal/domain/user"
)

type UserService interface {
	Register(ctx context.Context, email, password string) (*user.User, error)
	FindUserByID(ctx context.Context, uuid user.UUID) (*user.User, error)
}
