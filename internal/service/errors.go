package service

import "errors"

var (
	ErrValidation         = errors.New("missing or invalid required field")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
