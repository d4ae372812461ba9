package auth

import "errors"

var (
	// ErrEmptySecret is returned when rotating to an empty secret.
	ErrEmptySecret = errors.New("secret can not be empty")

	// ErrSecretNotSet is returned when no secret has been stored yet.
	ErrSecretNotSet = errors.New("secret is not set")

	// ErrDBNil is returned when the guard has no database.
	ErrDBNil = errors.New("database connection is nil")
)
