package model

import "errors"

var (
	ErrNotFound = errors.New("not found")

	ErrBadRequest         = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("not authenticated")

	ErrTokenExpired = errors.New("session token expired")
	ErrTokenInvalid = errors.New("session token invalid")
)
