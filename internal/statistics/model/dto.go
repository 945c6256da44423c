// Package model provides data transfer objects for statistics module.
package model

import "github.com/matchday/matchday/internal/readiness"

// MemberStatistics represents response behaviour of one member across the
// team's matches.
type MemberStatistics struct {
	MemberID     string  `json:"member_id"`
	Name         string  `json:"name"`
	IsActive     bool    `json:"is_active"`
	Responded    int     `json:"responded"`
	Available    int     `json:"available"`
	Maybe        int     `json:"maybe"`
	NotAvailable int     `json:"not_available"`
	NoResponse   int     `json:"no_response"`
	ResponseRate float64 `json:"response_rate"`
}

// MemberStatisticsResponse represents response for member statistics.
type MemberStatisticsResponse struct {
	TeamSlug     string             `json:"team_slug"`
	TotalMatches int                `json:"total_matches"`
	Members      []MemberStatistics `json:"members"`
}

// MatchStatistics represents counts of the team's matches per derived
// readiness status.
type MatchStatistics struct {
	Total    int `json:"total"`
	Ready    int `json:"ready"`
	Possible int `json:"possible"`
	NotReady int `json:"not_ready"`
	Past     int `json:"past"`
}

// MatchStatisticsResponse represents response for match statistics.
type MatchStatisticsResponse struct {
	TeamSlug   string          `json:"team_slug"`
	Statistics MatchStatistics `json:"statistics"`
}

// CountFor increments the bucket matching the given status.
func (m *MatchStatistics) CountFor(status readiness.Status) {
	m.Total++
	switch status {
	case readiness.StatusReady:
		m.Ready++
	case readiness.StatusPossible:
		m.Possible++
	case readiness.StatusNotReady:
		m.NotReady++
	case readiness.StatusPast:
		m.Past++
	}
}
