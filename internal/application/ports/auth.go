package ports

import "context"

type Auth interface {
	// Login verifies the credential pair and opens a session.
	// Every failure mode maps to the same ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
}
