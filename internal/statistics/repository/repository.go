// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/matchday/matchday/internal/statistics/model"
)

// TeamInfo carries the team fields statistics queries need.
type TeamInfo struct {
	ID            string `gorm:"column:id"`
	Slug          string `gorm:"column:slug"`
	PlayersNeeded int    `gorm:"column:players_needed"`
}

// MatchRow carries the match fields status derivation needs.
type MatchRow struct {
	ID   string `gorm:"column:id"`
	Date string `gorm:"column:date"`
}

// RosterEntry carries the member fields status derivation needs.
type RosterEntry struct {
	ID       string `gorm:"column:id"`
	Name     string `gorm:"column:name"`
	IsActive bool   `gorm:"column:is_active"`
}

// AvailabilityRow carries one availability answer.
type AvailabilityRow struct {
	MatchID      string `gorm:"column:match_id"`
	MemberID     string `gorm:"column:member_id"`
	Availability string `gorm:"column:availability"`
}

// PredictionRow carries one date prediction vote.
type PredictionRow struct {
	MatchID       string `gorm:"column:match_id"`
	MemberID      string `gorm:"column:member_id"`
	PredictedDate string `gorm:"column:predicted_date"`
	Availability  string `gorm:"column:availability"`
}

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetTeamBySlug resolves a team by its slug.
	GetTeamBySlug(ctx context.Context, slug string) (*TeamInfo, error)

	// GetMemberStatistics aggregates per-member response counts across
	// the team's matches.
	GetMemberStatistics(ctx context.Context, teamID string) ([]model.MemberStatistics, error)

	// CountMatches returns the number of matches the team has scheduled.
	CountMatches(ctx context.Context, teamID string) (int, error)

	// ListMatches returns the team's matches for status derivation.
	ListMatches(ctx context.Context, teamID string) ([]MatchRow, error)

	// ListRoster returns the team's members.
	ListRoster(ctx context.Context, teamID string) ([]RosterEntry, error)

	// ListAvailability returns all availability answers across the
	// team's matches.
	ListAvailability(ctx context.Context, teamID string) ([]AvailabilityRow, error)

	// ListPredictions returns all date prediction votes across the
	// team's matches.
	ListPredictions(ctx context.Context, teamID string) ([]PredictionRow, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetTeamBySlug resolves a team by its slug.
func (r *repository) GetTeamBySlug(ctx context.Context, slug string) (*TeamInfo, error) {
	var team TeamInfo
	err := r.db.WithContext(ctx).
		Table("teams").
		Select("id, slug, players_needed").
		Where("slug = ?", slug).
		Scan(&team).Error
	if err != nil {
		r.logger.Errorw("GetTeamBySlug database error", "slug", slug, "error", err)
		return nil, err
	}
	if team.ID == "" {
		return nil, model.ErrTeamNotFound
	}
	return &team, nil
}

// GetMemberStatistics aggregates per-member response counts across the
// team's matches.
func (r *repository) GetMemberStatistics(ctx context.Context, teamID string) ([]model.MemberStatistics, error) {
	r.logger.Debugw("GetMemberStatistics called", "team_id", teamID)

	var stats []model.MemberStatistics

	err := r.db.WithContext(ctx).
		Table("members").
		Select(`
			members.id AS member_id,
			members.name,
			members.is_active,
			COALESCE(COUNT(availability_records.member_id), 0) AS responded,
			COALESCE(SUM(CASE WHEN availability_records.availability = 'available' THEN 1 ELSE 0 END), 0) AS available,
			COALESCE(SUM(CASE WHEN availability_records.availability = 'maybe' THEN 1 ELSE 0 END), 0) AS maybe,
			COALESCE(SUM(CASE WHEN availability_records.availability = 'not_available' THEN 1 ELSE 0 END), 0) AS not_available
		`).
		Joins("LEFT JOIN availability_records ON members.id = availability_records.member_id").
		Where("members.team_id = ?", teamID).
		Group("members.id, members.name, members.is_active").
		Order("responded DESC, members.id ASC").
		Scan(&stats).Error

	if err != nil {
		r.logger.Errorw("GetMemberStatistics database error", "error", err)
		return nil, err
	}

	if stats == nil {
		stats = []model.MemberStatistics{}
	}

	r.logger.Debugw("GetMemberStatistics completed", "count", len(stats))
	return stats, nil
}

// CountMatches returns the number of matches the team has scheduled.
func (r *repository) CountMatches(ctx context.Context, teamID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("matches").
		Where("team_id = ?", teamID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("CountMatches database error", "error", err)
		return 0, err
	}
	return int(count), nil
}

// ListMatches returns the team's matches for status derivation.
func (r *repository) ListMatches(ctx context.Context, teamID string) ([]MatchRow, error) {
	var rows []MatchRow
	err := r.db.WithContext(ctx).
		Table("matches").
		Select("id, date").
		Where("team_id = ?", teamID).
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("ListMatches database error", "error", err)
		return nil, err
	}
	return rows, nil
}

// ListRoster returns the team's members.
func (r *repository) ListRoster(ctx context.Context, teamID string) ([]RosterEntry, error) {
	var rows []RosterEntry
	err := r.db.WithContext(ctx).
		Table("members").
		Select("id, name, is_active").
		Where("team_id = ?", teamID).
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("ListRoster database error", "error", err)
		return nil, err
	}
	return rows, nil
}

// ListAvailability returns all availability answers across the team's matches.
func (r *repository) ListAvailability(ctx context.Context, teamID string) ([]AvailabilityRow, error) {
	var rows []AvailabilityRow
	err := r.db.WithContext(ctx).
		Table("availability_records").
		Select("availability_records.match_id, availability_records.member_id, availability_records.availability").
		Joins("JOIN matches ON matches.id = availability_records.match_id").
		Where("matches.team_id = ?", teamID).
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("ListAvailability database error", "error", err)
		return nil, err
	}
	return rows, nil
}

// ListPredictions returns all date prediction votes across the team's matches.
func (r *repository) ListPredictions(ctx context.Context, teamID string) ([]PredictionRow, error) {
	var rows []PredictionRow
	err := r.db.WithContext(ctx).
		Table("date_predictions").
		Select("date_predictions.match_id, date_predictions.member_id, date_predictions.predicted_date, date_predictions.availability").
		Joins("JOIN matches ON matches.id = date_predictions.match_id").
		Where("matches.team_id = ?", teamID).
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("ListPredictions database error", "error", err)
		return nil, err
	}
	return rows, nil
}
