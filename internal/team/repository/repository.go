// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	memberModel "github.com/matchday/matchday/internal/member/model"
	teamModel "github.com/matchday/matchday/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create creates a new team.
	Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error)

	// GetBySlug finds a team by its slug.
	GetBySlug(ctx context.Context, slug string) (*teamModel.Team, error)

	// CreateMember creates a member row for the team.
	CreateMember(ctx context.Context, member *memberModel.Member) (*memberModel.Member, error)

	// GetTeamMembers returns the team's roster ordered by creation time.
	GetTeamMembers(ctx context.Context, teamID string) ([]teamModel.TeamMember, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create creates a new team.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error) {
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			return nil, teamModel.ErrTeamExists
		}
		r.logger.Errorw("Create team database error", "slug", team.Slug, "error", err)
		return nil, err
	}

	return team, nil
}

// isDuplicateError checks if error is a duplicate key error.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// GetBySlug finds a team by its slug.
func (r *repository) GetBySlug(ctx context.Context, slug string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		r.logger.Errorw("GetBySlug database error", "slug", slug, "error", err)
		return nil, err
	}

	return &team, nil
}

// CreateMember creates a member row for the team.
func (r *repository) CreateMember(ctx context.Context, member *memberModel.Member) (*memberModel.Member, error) {
	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		r.logger.Errorw("CreateMember database error", "team_id", member.TeamID, "error", err)
		return nil, err
	}

	return member, nil
}

// GetTeamMembers returns the team's roster ordered by creation time.
func (r *repository) GetTeamMembers(ctx context.Context, teamID string) ([]teamModel.TeamMember, error) {
	var members []teamModel.TeamMember

	err := r.db.WithContext(ctx).
		Table("members").
		Select("id AS member_id, name, is_active").
		Where("team_id = ?", teamID).
		Order("created_at ASC, id ASC").
		Scan(&members).Error

	if err != nil {
		r.logger.Errorw("GetTeamMembers database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if members == nil {
		members = []teamModel.TeamMember{}
	}

	return members, nil
}
