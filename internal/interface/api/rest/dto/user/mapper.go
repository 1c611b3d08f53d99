package user

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"user-directory-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:    uDomain.ID,
		Name:  uDomain.Name,
		Email: uDomain.Email,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainUser(uRequest Request) user.User {
	var u = user.User{
		Name:  norm.NFC.String(strings.TrimSpace(uRequest.Name)),
		Email: norm.NFC.String(strings.ToLower(strings.TrimSpace(uRequest.Email))),
	}

	return u
}
