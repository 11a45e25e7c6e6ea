package apperr

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidPage        = errors.New("invalid pagination")
	ErrRefreshUnsupported = errors.New("refresh not supported")
)
