package user

import (
	"github.com/google/uuid"
)

// field order is part of the contract: id, name, email
type (
	User struct {
		ID    uuid.UUID `json:"id"`
		Name  string    `json:"name"`
		Email string    `json:"email"`
	}
	Users []User
)
