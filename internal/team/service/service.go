// Package service provides business logic layer for team module.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
	"gorm.io/gorm"

	memberModel "github.com/matchday/matchday/internal/member/model"
	teamModel "github.com/matchday/matchday/internal/team/model"
	"github.com/matchday/matchday/internal/team/repository"
)

const (
	accessCodeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	accessCodeLength   = 8
	slugSuffixAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"
	slugSuffixLength   = 4
	maxSlugAttempts    = 3
	qrImageSize        = 256
)

// Publisher broadcasts team-scoped events to connected clients.
type Publisher interface {
	Publish(teamSlug, eventType string, payload interface{})
}

// Service defines the interface for team business logic operations.
type Service interface {
	// AddTeam creates a new team with a generated slug and access code.
	AddTeam(ctx context.Context, req *teamModel.AddTeamRequest) (*teamModel.TeamResponse, error)

	// GetTeam returns a team with its roster.
	GetTeam(ctx context.Context, slug string) (*teamModel.TeamResponse, error)

	// JoinTeam adds a member to the team after checking the access code.
	JoinTeam(ctx context.Context, req *teamModel.JoinTeamRequest) (*teamModel.JoinTeamResponse, error)

	// InviteQR renders the team's join URL as a PNG QR code.
	InviteQR(ctx context.Context, slug string) ([]byte, error)
}

type service struct {
	repo      repository.Repository
	db        *gorm.DB
	logger    *zap.SugaredLogger
	publisher Publisher
	baseURL   string
}

// New creates a new team service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger, publisher Publisher, baseURL string) Service {
	return &service{
		repo:      repo,
		db:        db,
		logger:    logger,
		publisher: publisher,
		baseURL:   baseURL,
	}
}

// AddTeam creates a new team with a generated slug and access code.
func (s *service) AddTeam(ctx context.Context, req *teamModel.AddTeamRequest) (*teamModel.TeamResponse, error) {
	if req.Name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}
	if req.PlayersNeeded <= 0 {
		return nil, teamModel.ErrInvalidPlayersNeeded
	}

	accessCode, err := gonanoid.Generate(accessCodeAlphabet, accessCodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access code: %w", err)
	}

	team := &teamModel.Team{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Slug:          slug.Make(req.Name),
		PlayersNeeded: req.PlayersNeeded,
		AccessCode:    accessCode,
	}

	// The slug derives from the name, so two teams with the same name
	// collide; retry with a short random suffix.
	created := team
	for attempt := 0; ; attempt++ {
		created, err = s.repo.Create(ctx, team)
		if err == nil {
			break
		}
		if !errors.Is(err, teamModel.ErrTeamExists) || attempt >= maxSlugAttempts {
			return nil, err
		}
		suffix, suffixErr := gonanoid.Generate(slugSuffixAlphabet, slugSuffixLength)
		if suffixErr != nil {
			return nil, fmt.Errorf("failed to generate slug suffix: %w", suffixErr)
		}
		team.Slug = slug.Make(req.Name) + "-" + suffix
	}

	s.logger.Infow("team created", "team_id", created.ID, "slug", created.Slug)
	s.publisher.Publish(created.Slug, "team_created", created)

	return &teamModel.TeamResponse{
		ID:            created.ID,
		Name:          created.Name,
		Slug:          created.Slug,
		PlayersNeeded: created.PlayersNeeded,
		AccessCode:    created.AccessCode,
		Members:       []teamModel.TeamMember{},
	}, nil
}

// GetTeam returns a team with its roster. The access code is not included;
// it is only returned to the creator at creation time.
func (s *service) GetTeam(ctx context.Context, teamSlug string) (*teamModel.TeamResponse, error) {
	if teamSlug == "" {
		return nil, teamModel.ErrTeamNotFound
	}

	team, err := s.repo.GetBySlug(ctx, teamSlug)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetTeamMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	return &teamModel.TeamResponse{
		ID:            team.ID,
		Name:          team.Name,
		Slug:          team.Slug,
		PlayersNeeded: team.PlayersNeeded,
		Members:       members,
	}, nil
}

// JoinTeam adds a member to the team after checking the access code.
func (s *service) JoinTeam(ctx context.Context, req *teamModel.JoinTeamRequest) (*teamModel.JoinTeamResponse, error) {
	if req.MemberName == "" {
		return nil, teamModel.ErrInvalidMemberName
	}

	team, err := s.repo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	// The access code is a shared join gate, not a security boundary.
	if req.AccessCode != team.AccessCode {
		return nil, teamModel.ErrInvalidAccessCode
	}

	var result *teamModel.JoinTeamResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		member, txErr := txRepo.CreateMember(ctx, &memberModel.Member{
			ID:       uuid.NewString(),
			TeamID:   team.ID,
			Name:     req.MemberName,
			IsActive: true,
		})
		if txErr != nil {
			return txErr
		}

		members, txErr := txRepo.GetTeamMembers(ctx, team.ID)
		if txErr != nil {
			return txErr
		}

		result = &teamModel.JoinTeamResponse{
			Team: teamModel.TeamResponse{
				ID:            team.ID,
				Name:          team.Name,
				Slug:          team.Slug,
				PlayersNeeded: team.PlayersNeeded,
				Members:       members,
			},
			Member: teamModel.TeamMember{
				MemberID: member.ID,
				Name:     member.Name,
				IsActive: member.IsActive,
			},
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("member joined team", "team_id", team.ID, "member_id", result.Member.MemberID)
	s.publisher.Publish(team.Slug, "member_joined", result.Member)

	return result, nil
}

// InviteQR renders the team's join URL as a PNG QR code.
func (s *service) InviteQR(ctx context.Context, teamSlug string) ([]byte, error) {
	team, err := s.repo.GetBySlug(ctx, teamSlug)
	if err != nil {
		return nil, err
	}

	joinURL := fmt.Sprintf("%s/team/join?slug=%s&code=%s",
		s.baseURL, url.QueryEscape(team.Slug), url.QueryEscape(team.AccessCode))

	png, err := qrcode.Encode(joinURL, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	return png, nil
}
