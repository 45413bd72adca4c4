package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"file-manager-api/internal/application/ports"
	domain "file-manager-api/internal/domain/user"
)

type AuthService struct {
	userRepository domain.Repository
	sessions       ports.SessionStore
}

func NewAuthService(
	userRepository domain.Repository,
	sessions ports.SessionStore,
) ports.Auth {
	return &AuthService{
		userRepository: userRepository,
		sessions:       sessions,
	}
}

// Login resolves the email, compares digests and opens a session. Unknown
// email and wrong password collapse into the same error so the response
// never reveals which one it was.
func (as *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := as.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil || u.PasswordHash == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.sessions.Create(ctx, u.UUID)
	if err != nil {
		return "", err
	}

	return token, nil
}

func (as *AuthService) Logout(ctx context.Context, token string) error {
	return as.sessions.Destroy(ctx, token)
}
