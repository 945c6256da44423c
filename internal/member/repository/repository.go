// Package repository provides data access layer for member module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/matchday/matchday/internal/member/model"
)

// Repository defines the interface for member data access operations.
type Repository interface {
	// Create creates a new member.
	Create(ctx context.Context, member *model.Member) (*model.Member, error)

	// GetByID finds a member by ID.
	GetByID(ctx context.Context, memberID string) (*model.Member, error)

	// ListByTeam returns all members of a team ordered by creation time.
	ListByTeam(ctx context.Context, teamID string) ([]model.Member, error)

	// UpdateIsActive updates a member's is_active flag.
	UpdateIsActive(ctx context.Context, memberID string, isActive bool) (*model.Member, error)

	// GetTeamIDBySlug resolves a team slug to its ID.
	GetTeamIDBySlug(ctx context.Context, slug string) (string, error)

	// GetTeamSlugByID resolves a team ID to its slug.
	GetTeamSlugByID(ctx context.Context, teamID string) (string, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new member repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create creates a new member.
func (r *repository) Create(ctx context.Context, member *model.Member) (*model.Member, error) {
	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		r.logger.Errorw("Create member database error", "team_id", member.TeamID, "error", err)
		return nil, err
	}

	return member, nil
}

// GetByID finds a member by ID.
func (r *repository) GetByID(ctx context.Context, memberID string) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).
		Where("id = ?", memberID).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMemberNotFound
		}
		r.logger.Errorw("GetByID database error", "member_id", memberID, "error", err)
		return nil, err
	}

	return &member, nil
}

// ListByTeam returns all members of a team ordered by creation time.
func (r *repository) ListByTeam(ctx context.Context, teamID string) ([]model.Member, error) {
	var members []model.Member

	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at ASC, id ASC").
		Find(&members).Error

	if err != nil {
		r.logger.Errorw("ListByTeam database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if members == nil {
		members = []model.Member{}
	}

	return members, nil
}

// UpdateIsActive updates a member's is_active flag.
func (r *repository) UpdateIsActive(ctx context.Context, memberID string, isActive bool) (*model.Member, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", memberID).
		Update("is_active", isActive)

	if result.Error != nil {
		r.logger.Errorw("UpdateIsActive database error", "member_id", memberID, "error", result.Error)
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, model.ErrMemberNotFound
	}

	var member model.Member
	if err := r.db.WithContext(ctx).Where("id = ?", memberID).First(&member).Error; err != nil {
		r.logger.Errorw("UpdateIsActive failed to fetch updated member", "member_id", memberID, "error", err)
		return nil, err
	}

	return &member, nil
}

// GetTeamIDBySlug resolves a team slug to its ID.
func (r *repository) GetTeamIDBySlug(ctx context.Context, slug string) (string, error) {
	var teamID string
	err := r.db.WithContext(ctx).
		Table("teams").
		Select("id").
		Where("slug = ?", slug).
		Scan(&teamID).Error

	if err != nil {
		r.logger.Errorw("GetTeamIDBySlug database error", "slug", slug, "error", err)
		return "", err
	}

	if teamID == "" {
		return "", model.ErrTeamNotFound
	}

	return teamID, nil
}

// GetTeamSlugByID resolves a team ID to its slug.
func (r *repository) GetTeamSlugByID(ctx context.Context, teamID string) (string, error) {
	var slug string
	err := r.db.WithContext(ctx).
		Table("teams").
		Select("slug").
		Where("id = ?", teamID).
		Scan(&slug).Error

	if err != nil {
		r.logger.Errorw("GetTeamSlugByID database error", "team_id", teamID, "error", err)
		return "", err
	}

	if slug == "" {
		return "", model.ErrTeamNotFound
	}

	return slug, nil
}
