// Package model provides data transfer objects for calendar import module.
package model

// ImportedMatch represents one match created from a calendar event.
type ImportedMatch struct {
	ID       string `json:"id"`
	Opponent string `json:"opponent"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	IsHome   bool   `json:"is_home"`
	Venue    string `json:"venue,omitempty"`
}

// ImportResponse represents the result of a calendar import.
type ImportResponse struct {
	TeamSlug string          `json:"team_slug"`
	Created  []ImportedMatch `json:"created"`
	Skipped  int             `json:"skipped"`
}
