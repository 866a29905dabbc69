package model

import "errors"

// Sentinel kinds for payload validation errors.
var (
	ErrInvalidPayload = errors.New("invalid match payload")
)
