package admin

import "errors"

var (
	ErrAdminNotFound     = errors.New("admin not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidCredential = errors.New("invalid credentials")
)
