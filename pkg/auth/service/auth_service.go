package service

import (
	"errors"

	"jagung/entities"
)

// ErrInvalidCredentials is the single failure for a bad username, a bad
// password, or an unreadable users table. Callers must not be able to
// tell which one happened.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	// Authenticate matches username and password exactly (case
	// sensitive) against the users table and opens a session.
	Authenticate(username, password string) (*entities.Session, error)
	// Lookup resolves a session token issued by Authenticate.
	Lookup(token string) (*entities.Session, bool)
	// Logout discards the session; unknown tokens are ignored.
	Logout(token string)
}
