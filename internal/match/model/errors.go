package model

import "errors"

var (
	// ErrMatchNotFound indicates that the requested match does not exist.
	ErrMatchNotFound = errors.New("match not found")
	// ErrTeamNotFound indicates that the match's team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrMemberNotInTeam indicates that the member does not belong to the match's team.
	ErrMemberNotInTeam = errors.New("member does not belong to the match's team")
	// ErrInvalidOpponent indicates that the opponent name is invalid (e.g., empty).
	ErrInvalidOpponent = errors.New("invalid opponent name")
	// ErrInvalidDate indicates that a date is not in a recognized format.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidAvailability indicates an availability value outside the known set.
	ErrInvalidAvailability = errors.New("invalid availability value")
	// ErrNoPredictionForDate indicates that no prediction group exists for the chosen date.
	ErrNoPredictionForDate = errors.New("no prediction exists for the chosen date")
)
