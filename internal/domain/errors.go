package domain

import "errors"

var (
	ErrValidation  = errors.New("invalid parameters")
	ErrNotFound    = errors.New("not found")
	ErrNotAllowed  = errors.New("action not allowed")
	ErrForbidden   = errors.New("forbidden")
	ErrRateLimited = errors.New("rate limited")
	ErrConflict    = errors.New("conflict")
)
