// Package service provides business logic layer for member module.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matchday/matchday/internal/member/model"
	"github.com/matchday/matchday/internal/member/repository"
)

// Publisher broadcasts team-scoped events to connected clients.
type Publisher interface {
	Publish(teamSlug, eventType string, payload interface{})
}

// Service defines the interface for member business logic operations.
type Service interface {
	// AddMember adds a member to a team roster.
	AddMember(ctx context.Context, req *model.AddMemberRequest) (*model.MemberResponse, error)

	// ListMembers returns the roster of a team.
	ListMembers(ctx context.Context, teamSlug string) (*model.ListMembersResponse, error)

	// SetIsActive updates a member's activity flag.
	SetIsActive(ctx context.Context, req *model.SetIsActiveRequest) (*model.MemberResponse, error)
}

type service struct {
	repo      repository.Repository
	logger    *zap.SugaredLogger
	publisher Publisher
}

// New creates a new member service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger, publisher Publisher) Service {
	return &service{repo: repo, logger: logger, publisher: publisher}
}

// AddMember adds a member to a team roster.
func (s *service) AddMember(ctx context.Context, req *model.AddMemberRequest) (*model.MemberResponse, error) {
	if req.Name == "" {
		return nil, model.ErrInvalidMemberName
	}

	teamID, err := s.repo.GetTeamIDBySlug(ctx, req.TeamSlug)
	if err != nil {
		return nil, err
	}

	member, err := s.repo.Create(ctx, &model.Member{
		ID:       uuid.NewString(),
		TeamID:   teamID,
		Name:     req.Name,
		IsActive: true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("member added", "team_id", teamID, "member_id", member.ID)
	s.publisher.Publish(req.TeamSlug, "member_added", member)

	return toResponse(member), nil
}

// ListMembers returns the roster of a team.
func (s *service) ListMembers(ctx context.Context, teamSlug string) (*model.ListMembersResponse, error) {
	teamID, err := s.repo.GetTeamIDBySlug(ctx, teamSlug)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := &model.ListMembersResponse{
		TeamSlug: teamSlug,
		Members:  make([]model.MemberResponse, 0, len(members)),
	}
	for i := range members {
		resp.Members = append(resp.Members, *toResponse(&members[i]))
	}

	return resp, nil
}

// SetIsActive updates a member's activity flag.
func (s *service) SetIsActive(ctx context.Context, req *model.SetIsActiveRequest) (*model.MemberResponse, error) {
	member, err := s.repo.UpdateIsActive(ctx, req.MemberID, req.IsActive)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("member activity updated", "member_id", member.ID, "is_active", member.IsActive)

	teamSlug, err := s.repo.GetTeamSlugByID(ctx, member.TeamID)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(teamSlug, "member_updated", member)

	return toResponse(member), nil
}

func toResponse(m *model.Member) *model.MemberResponse {
	return &model.MemberResponse{
		ID:       m.ID,
		TeamID:   m.TeamID,
		Name:     m.Name,
		IsActive: m.IsActive,
	}
}
