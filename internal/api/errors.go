package api

import "errors"

var (
	ErrMethodNotAllowed = errors.New("POST only")
	ErrInvalidJSON      = errors.New("invalid json")
	ErrBodyTooLarge     = errors.New("request body too large")
	ErrUnknownOp        = errors.New("unknown vector operation")
	ErrNonFinite        = errors.New("result is not finite")
)
