package user

import "errors"

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidEmail       = errors.New("email is invalid")
	ErrWeakPassword       = errors.New("password must be between 8 and 72 characters")
	ErrNameTooLong        = errors.New("name must be at most 100 characters")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
