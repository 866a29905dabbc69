package repository

import "errors"

// Sentinel kinds for statistics store errors.
var (
	ErrEventNotFound  = errors.New("event not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrTeamNotFound   = errors.New("team not found")
)
