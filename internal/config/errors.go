package config

import "errors"

var (
	ErrInvalidAddr    = errors.New("server address is empty")
	ErrInvalidTimeout = errors.New("server timeouts must be positive")
)
