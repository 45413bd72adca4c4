package user

import (
	"github.com/google/uuid"
)

// User never carries the password digest back to the caller.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
