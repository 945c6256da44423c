// Package model provides domain models and DTOs for member module.
package model

// AddMemberRequest represents the request to add a member to a team roster.
type AddMemberRequest struct {
	TeamSlug string `json:"team_slug" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// SetIsActiveRequest represents the request to update member activity status.
type SetIsActiveRequest struct {
	MemberID string `json:"member_id" binding:"required"`
	IsActive bool   `json:"is_active"`
}

// MemberResponse represents a member in API responses.
type MemberResponse struct {
	ID       string `json:"id"`
	TeamID   string `json:"team_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// ListMembersResponse represents the roster of a team.
type ListMembersResponse struct {
	TeamSlug string           `json:"team_slug"`
	Members  []MemberResponse `json:"members"`
}
