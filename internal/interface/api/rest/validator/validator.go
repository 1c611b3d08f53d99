package validator

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"user-directory-api/internal/interface/api/rest/dto/user"
)

// column widths in the users table
const (
	maxNameLen  = 100
	maxEmailLen = 100
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateUser(r user.Request) map[string]string {
	errs := make(map[string]string)

	// Normalize
	name := norm.NFC.String(strings.TrimSpace(r.Name))
	email := norm.NFC.String(strings.ToLower(strings.TrimSpace(r.Email)))

	// name (required + length)
	if name == "" {
		errs["name"] = "name is required"
	} else if utf8.RuneCountInString(name) > maxNameLen {
		errs["name"] = "name length must be at most 100 characters"
	}

	// email (required + length + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if utf8.RuneCountInString(email) > maxEmailLen {
		errs["email"] = "email length must be at most 100 characters"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
