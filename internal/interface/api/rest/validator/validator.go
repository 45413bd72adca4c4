package validator

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"file-manager-api/internal/interface/api/rest/dto/user"
)

// ValidatePage clamps the page query to a non-negative index; anything
// unparsable falls back to the first page.
func ValidatePage(page string) int {
	if page == "" {
		return 0
	}
	p, err := strconv.Atoi(page)
	if err != nil || p < 0 {
		return 0
	}
	return p
}

// ValidateSize parses the optional derived-width selector. Zero means the
// original content; values outside the fixed variant set are ignored, not
// rejected.
func ValidateSize(size string) int {
	switch size {
	case "100", "250", "500":
		w, _ := strconv.Atoi(size)
		return w
	}
	return 0
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ParseParentID maps the wire representation of a parent to its canonical
// form: "0" and absent both mean root (uuid.Nil). The second return is
// false for strings that are neither the root sentinel nor a uuid.
func ParseParentID(s string) (uuid.UUID, bool) {
	if s == "" || s == "0" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func ValidateRegister(r user.Request) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if r.Password == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
