package account

import "errors"

var (
	// ErrDuplicateUsername is returned by Register when the username is taken
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown username and wrong password
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFound indicates that no account exists for the username
	ErrNotFound = errors.New("account not found")

	// ErrEmptyUsername is returned when an operation receives an empty key
	ErrEmptyUsername = errors.New("username cannot be empty")
)
