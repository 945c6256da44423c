package model

import "errors"

var (
	// ErrTeamExists indicates that a team with the given slug already exists.
	ErrTeamExists = errors.New("team already exists")
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidTeamName indicates that the provided team name is invalid (e.g., empty).
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrInvalidPlayersNeeded indicates that the readiness threshold is not a positive integer.
	ErrInvalidPlayersNeeded = errors.New("players_needed must be a positive integer")
	// ErrInvalidAccessCode indicates that the provided access code does not match the team's.
	ErrInvalidAccessCode = errors.New("invalid access code")
	// ErrInvalidMemberName indicates that the joining member's name is invalid (e.g., empty).
	ErrInvalidMemberName = errors.New("invalid member name")
)
