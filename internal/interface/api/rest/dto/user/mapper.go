package user

import (
	"file-manager-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:    uDomain.UUID,
		Email: uDomain.Email,
	}

	return u
}
