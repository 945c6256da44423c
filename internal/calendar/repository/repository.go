// Package repository provides data access layer for calendar import module.
package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/matchday/matchday/internal/calendar/model"
)

// TeamInfo carries the team fields calendar import needs.
type TeamInfo struct {
	ID   string `gorm:"column:id"`
	Slug string `gorm:"column:slug"`
}

// MatchRow is the insert shape for an imported match.
type MatchRow struct {
	ID       string
	TeamID   string
	Opponent string
	Date     string
	Time     string
	IsHome   bool
	Venue    string
}

// Repository defines the interface for calendar import data access operations.
type Repository interface {
	// GetTeamBySlug resolves a team by its slug.
	GetTeamBySlug(ctx context.Context, slug string) (*TeamInfo, error)

	// CreateMatches inserts the imported matches.
	CreateMatches(ctx context.Context, rows []MatchRow) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new calendar import repository instance.
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
		Select("id, slug").
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

// CreateMatches inserts the imported matches.
func (r *repository) CreateMatches(ctx context.Context, rows []MatchRow) error {
	if len(rows) == 0 {
		return nil
	}

	now := time.Now()
	records := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		records = append(records, map[string]interface{}{
			"id":         row.ID,
			"team_id":    row.TeamID,
			"opponent":   row.Opponent,
			"date":       row.Date,
			"time":       row.Time,
			"is_home":    row.IsHome,
			"venue":      row.Venue,
			"created_at": now,
			"updated_at": now,
		})
	}

	err := r.db.WithContext(ctx).Table("matches").Create(records).Error
	if err != nil {
		r.logger.Errorw("CreateMatches database error", "count", len(rows), "error", err)
		return err
	}

	r.logger.Debugw("CreateMatches completed", "count", len(rows))
	return nil
}
