package user

import "errors"

// ErrEmailAlreadyExists maps both the application-level uniqueness
// check and the users_email_live_key index violation.
var ErrEmailAlreadyExists = errors.New("email already exists")
