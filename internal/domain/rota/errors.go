package rota

import "errors"

var (
	ErrRotaNotFound = errors.New("rota not found")
	ErrUnauthorized = errors.New("unauthorized to access this rota")
)
