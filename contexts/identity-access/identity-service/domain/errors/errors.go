package errors

import "errors"

var (
	ErrInvalidUserInput   = errors.New("user input is invalid")
	ErrUnknownRole        = errors.New("role is not recognized")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrUserNotFound       = errors.New("user not found")
	ErrMitraNotFound      = errors.New("mitra not found")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrTokenExpired       = errors.New("token has expired")
)
