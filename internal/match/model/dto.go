// Package model provides domain models and DTOs for match module.
package model

import "github.com/matchday/matchday/internal/readiness"

// CreateMatchRequest represents the request to schedule a match.
type CreateMatchRequest struct {
	TeamSlug string `json:"team_slug" binding:"required"`
	Opponent string `json:"opponent" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time"`
	IsHome   bool   `json:"is_home"`
	Venue    string `json:"venue"`
}

// ChangeDateRequest represents a direct date change on a match.
type ChangeDateRequest struct {
	MatchID string `json:"match_id" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

// SetAvailabilityRequest represents one member's availability submission.
type SetAvailabilityRequest struct {
	MatchID      string `json:"match_id" binding:"required"`
	MemberID     string `json:"member_id" binding:"required"`
	Availability string `json:"availability" binding:"required"`
}

// AddPredictionRequest represents a member proposing (or voting on) an
// alternate date for a match.
type AddPredictionRequest struct {
	MatchID      string `json:"match_id" binding:"required"`
	MemberID     string `json:"member_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Availability string `json:"availability" binding:"required"`
}

// RemovePredictionRequest withdraws a member from all of a match's date
// groups.
type RemovePredictionRequest struct {
	MatchID  string `json:"match_id" binding:"required"`
	MemberID string `json:"member_id" binding:"required"`
}

// ChoosePredictedDateRequest promotes a proposed date to be the match's
// actual date.
type ChoosePredictedDateRequest struct {
	MatchID string `json:"match_id" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

// PredictionVote represents one member's vote inside a date group.
type PredictionVote struct {
	MemberID     string `json:"member_id"`
	Availability string `json:"availability"`
}

// PredictionGroup represents all votes for one proposed date, with the
// group's derived status (ready or possible, never not_ready).
type PredictionGroup struct {
	Date   string           `json:"date"`
	Status readiness.Status `json:"status"`
	Votes  []PredictionVote `json:"votes"`
}

// MatchResponse represents a match decorated with its availability summary
// and derived readiness status.
type MatchResponse struct {
	ID           string            `json:"id"`
	TeamID       string            `json:"team_id"`
	Opponent     string            `json:"opponent"`
	Date         string            `json:"date"`
	Time         string            `json:"time,omitempty"`
	IsHome       bool              `json:"is_home"`
	Venue        string            `json:"venue,omitempty"`
	OriginalDate *string           `json:"original_date,omitempty"`
	Status       readiness.Status  `json:"status"`
	Summary      readiness.Summary `json:"summary"`
	Predictions  []PredictionGroup `json:"predictions,omitempty"`
}

// ListMatchesResponse represents a team's schedule.
type ListMatchesResponse struct {
	TeamSlug string          `json:"team_slug"`
	Matches  []MatchResponse `json:"matches"`
}
