package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrEmptyCalendar indicates that the uploaded file contains no events.
	ErrEmptyCalendar = errors.New("calendar contains no events")
)
