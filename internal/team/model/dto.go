// Package model provides domain models and DTOs for team module.
package model

// AddTeamRequest represents the request to create a team.
type AddTeamRequest struct {
	Name          string `json:"name" binding:"required"`
	PlayersNeeded int    `json:"players_needed" binding:"required"`
}

// TeamMember represents a roster entry in team API responses.
type TeamMember struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// TeamResponse represents the response after creating or getting a team.
type TeamResponse struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Slug          string       `json:"slug"`
	PlayersNeeded int          `json:"players_needed"`
	AccessCode    string       `json:"access_code,omitempty"`
	Members       []TeamMember `json:"members"`
}

// JoinTeamRequest represents a self-service join using the team access code.
type JoinTeamRequest struct {
	Slug       string `json:"slug" binding:"required"`
	AccessCode string `json:"access_code" binding:"required"`
	MemberName string `json:"member_name" binding:"required"`
}

// JoinTeamResponse represents the response after joining a team.
type JoinTeamResponse struct {
	Team   TeamResponse `json:"team"`
	Member TeamMember   `json:"member"`
}
