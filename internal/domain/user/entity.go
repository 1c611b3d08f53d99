package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	User struct {
		ID    UUID
		Name  string
		Email string

		CreatedAt time.Time

		// nil until the first successful edit
		UpdatedAt *time.Time
		// nil while the record is live
		DeletedAt *time.Time
	}
	Users []*User
)
