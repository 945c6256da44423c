package model

import "errors"

var (
	// ErrMemberNotFound indicates that the requested member does not exist.
	ErrMemberNotFound = errors.New("member not found")
	// ErrInvalidMemberName indicates that the provided member name is invalid (e.g., empty).
	ErrInvalidMemberName = errors.New("invalid member name")
	// ErrTeamNotFound indicates that the member's team does not exist.
	ErrTeamNotFound = errors.New("team not found")
)
