// Package repository provides data access layer for match module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/matchday/matchday/internal/match/model"
)

// TeamInfo carries the team fields the match module needs.
type TeamInfo struct {
	ID            string
	Slug          string
	PlayersNeeded int
}

// RosterEntry carries the member fields the match module needs.
type RosterEntry struct {
	ID       string `gorm:"column:id"`
	Name     string `gorm:"column:name"`
	IsActive bool   `gorm:"column:is_active"`
}

// Repository defines the interface for match data access operations.
type Repository interface {
	// CreateMatch creates a new match.
	CreateMatch(ctx context.Context, match *model.Match) (*model.Match, error)

	// GetMatchByID finds a match by ID.
	GetMatchByID(ctx context.Context, matchID string) (*model.Match, error)

	// ListMatchesByTeam returns a team's matches ordered by date.
	ListMatchesByTeam(ctx context.Context, teamID string) ([]model.Match, error)

	// UpdateMatchDate sets the match date, retaining the prior date as
	// original_date on first change.
	UpdateMatchDate(ctx context.Context, matchID, newDate string, originalDate *string) error

	// GetTeamBySlug resolves a team slug.
	GetTeamBySlug(ctx context.Context, slug string) (*TeamInfo, error)

	// GetTeamByID resolves a team ID.
	GetTeamByID(ctx context.Context, teamID string) (*TeamInfo, error)

	// ListRoster returns the team's members ordered by creation time.
	ListRoster(ctx context.Context, teamID string) ([]RosterEntry, error)

	// MemberInTeam reports whether the member belongs to the team.
	MemberInTeam(ctx context.Context, memberID, teamID string) (bool, error)

	// UpsertAvailability inserts or replaces the member's answer for a match.
	UpsertAvailability(ctx context.Context, rec *model.AvailabilityRecord) error

	// ListAvailabilityByTeam returns availability records for all of a
	// team's matches.
	ListAvailabilityByTeam(ctx context.Context, teamID string) ([]model.AvailabilityRecord, error)

	// ListAvailabilityByMatch returns availability records for one match.
	ListAvailabilityByMatch(ctx context.Context, matchID string) ([]model.AvailabilityRecord, error)

	// DeleteAvailabilityByMatch removes all availability records for a match.
	DeleteAvailabilityByMatch(ctx context.Context, matchID string) error

	// UpsertPrediction inserts or replaces a member's vote for a date.
	UpsertPrediction(ctx context.Context, p *model.DatePrediction) error

	// ListPredictionsByMatch returns all predictions for one match.
	ListPredictionsByMatch(ctx context.Context, matchID string) ([]model.DatePrediction, error)

	// ListPredictionsByTeam returns predictions for all of a team's matches.
	ListPredictionsByTeam(ctx context.Context, teamID string) ([]model.DatePrediction, error)

	// DeletePredictionsByMember removes a member's votes from every date
	// group of a match.
	DeletePredictionsByMember(ctx context.Context, matchID, memberID string) error

	// DeletePredictionsByMatch removes all predictions for a match.
	DeletePredictionsByMatch(ctx context.Context, matchID string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new match repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// CreateMatch creates a new match.
func (r *repository) CreateMatch(ctx context.Context, match *model.Match) (*model.Match, error) {
	now := time.Now()
	match.CreatedAt = now
	match.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(match).Error; err != nil {
		r.logger.Errorw("CreateMatch database error", "team_id", match.TeamID, "error", err)
		return nil, err
	}

	return match, nil
}

// GetMatchByID finds a match by ID.
func (r *repository) GetMatchByID(ctx context.Context, matchID string) (*model.Match, error) {
	var match model.Match
	err := r.db.WithContext(ctx).
		Where("id = ?", matchID).
		First(&match).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMatchNotFound
		}
		r.logger.Errorw("GetMatchByID database error", "match_id", matchID, "error", err)
		return nil, err
	}

	return &match, nil
}

// ListMatchesByTeam returns a team's matches ordered by date. ISO dates sort
// chronologically as strings.
func (r *repository) ListMatchesByTeam(ctx context.Context, teamID string) ([]model.Match, error) {
	var matches []model.Match

	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("date ASC, created_at ASC").
		Find(&matches).Error

	if err != nil {
		r.logger.Errorw("ListMatchesByTeam database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if matches == nil {
		matches = []model.Match{}
	}

	return matches, nil
}

// UpdateMatchDate sets the match date, retaining the prior date as
// original_date on first change.
func (r *repository) UpdateMatchDate(ctx context.Context, matchID, newDate string, originalDate *string) error {
	updates := map[string]interface{}{
		"date":       newDate,
		"updated_at": time.Now(),
	}
	if originalDate != nil {
		updates["original_date"] = *originalDate
	}

	result := r.db.WithContext(ctx).
		Model(&model.Match{}).
		Where("id = ?", matchID).
		Updates(updates)

	if result.Error != nil {
		r.logger.Errorw("UpdateMatchDate database error", "match_id", matchID, "error", result.Error)
		return result.Error
	}

	if result.RowsAffected == 0 {
		return model.ErrMatchNotFound
	}

	return nil
}

// GetTeamBySlug resolves a team slug.
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

// GetTeamByID resolves a team ID.
func (r *repository) GetTeamByID(ctx context.Context, teamID string) (*TeamInfo, error) {
	var team TeamInfo
	err := r.db.WithContext(ctx).
		Table("teams").
		Select("id, slug, players_needed").
		Where("id = ?", teamID).
		Scan(&team).Error

	if err != nil {
		r.logger.Errorw("GetTeamByID database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if team.ID == "" {
		return nil, model.ErrTeamNotFound
	}

	return &team, nil
}

// ListRoster returns the team's members ordered by creation time.
func (r *repository) ListRoster(ctx context.Context, teamID string) ([]RosterEntry, error) {
	var roster []RosterEntry

	err := r.db.WithContext(ctx).
		Table("members").
		Select("id, name, is_active").
		Where("team_id = ?", teamID).
		Order("created_at ASC, id ASC").
		Scan(&roster).Error

	if err != nil {
		r.logger.Errorw("ListRoster database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if roster == nil {
		roster = []RosterEntry{}
	}

	return roster, nil
}

// MemberInTeam reports whether the member belongs to the team.
func (r *repository) MemberInTeam(ctx context.Context, memberID, teamID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("members").
		Where("id = ? AND team_id = ?", memberID, teamID).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("MemberInTeam database error", "member_id", memberID, "error", err)
		return false, err
	}

	return count > 0, nil
}

// UpsertAvailability inserts or replaces the member's answer for a match.
func (r *repository) UpsertAvailability(ctx context.Context, rec *model.AvailabilityRecord) error {
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "match_id"}, {Name: "member_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"availability", "updated_at"}),
		}).
		Create(rec).Error

	if err != nil {
		r.logger.Errorw("UpsertAvailability database error",
			"match_id", rec.MatchID, "member_id", rec.MemberID, "error", err)
		return err
	}

	return nil
}

// ListAvailabilityByTeam returns availability records for all of a team's
// matches.
func (r *repository) ListAvailabilityByTeam(ctx context.Context, teamID string) ([]model.AvailabilityRecord, error) {
	var records []model.AvailabilityRecord

	err := r.db.WithContext(ctx).
		Table("availability_records").
		Joins("JOIN matches ON matches.id = availability_records.match_id").
		Where("matches.team_id = ?", teamID).
		Select("availability_records.*").
		Scan(&records).Error

	if err != nil {
		r.logger.Errorw("ListAvailabilityByTeam database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if records == nil {
		records = []model.AvailabilityRecord{}
	}

	return records, nil
}

// ListAvailabilityByMatch returns availability records for one match.
func (r *repository) ListAvailabilityByMatch(ctx context.Context, matchID string) ([]model.AvailabilityRecord, error) {
	var records []model.AvailabilityRecord

	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Find(&records).Error

	if err != nil {
		r.logger.Errorw("ListAvailabilityByMatch database error", "match_id", matchID, "error", err)
		return nil, err
	}

	if records == nil {
		records = []model.AvailabilityRecord{}
	}

	return records, nil
}

// DeleteAvailabilityByMatch removes all availability records for a match.
func (r *repository) DeleteAvailabilityByMatch(ctx context.Context, matchID string) error {
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Delete(&model.AvailabilityRecord{}).Error

	if err != nil {
		r.logger.Errorw("DeleteAvailabilityByMatch database error", "match_id", matchID, "error", err)
		return err
	}

	return nil
}

// UpsertPrediction inserts or replaces a member's vote for a date.
func (r *repository) UpsertPrediction(ctx context.Context, p *model.DatePrediction) error {
	p.CreatedAt = time.Now()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "match_id"}, {Name: "member_id"}, {Name: "predicted_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"availability"}),
		}).
		Create(p).Error

	if err != nil {
		r.logger.Errorw("UpsertPrediction database error",
			"match_id", p.MatchID, "member_id", p.MemberID, "error", err)
		return err
	}

	return nil
}

// ListPredictionsByMatch returns all predictions for one match.
func (r *repository) ListPredictionsByMatch(ctx context.Context, matchID string) ([]model.DatePrediction, error) {
	var predictions []model.DatePrediction

	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Find(&predictions).Error

	if err != nil {
		r.logger.Errorw("ListPredictionsByMatch database error", "match_id", matchID, "error", err)
		return nil, err
	}

	if predictions == nil {
		predictions = []model.DatePrediction{}
	}

	return predictions, nil
}

// ListPredictionsByTeam returns predictions for all of a team's matches.
func (r *repository) ListPredictionsByTeam(ctx context.Context, teamID string) ([]model.DatePrediction, error) {
	var predictions []model.DatePrediction

	err := r.db.WithContext(ctx).
		Table("date_predictions").
		Joins("JOIN matches ON matches.id = date_predictions.match_id").
		Where("matches.team_id = ?", teamID).
		Select("date_predictions.*").
		Scan(&predictions).Error

	if err != nil {
		r.logger.Errorw("ListPredictionsByTeam database error", "team_id", teamID, "error", err)
		return nil, err
	}

	if predictions == nil {
		predictions = []model.DatePrediction{}
	}

	return predictions, nil
}

// DeletePredictionsByMember removes a member's votes from every date group
// of a match.
func (r *repository) DeletePredictionsByMember(ctx context.Context, matchID, memberID string) error {
	err := r.db.WithContext(ctx).
		Where("match_id = ? AND member_id = ?", matchID, memberID).
		Delete(&model.DatePrediction{}).Error

	if err != nil {
		r.logger.Errorw("DeletePredictionsByMember database error",
			"match_id", matchID, "member_id", memberID, "error", err)
		return err
	}

	return nil
}

// DeletePredictionsByMatch removes all predictions for a match.
func (r *repository) DeletePredictionsByMatch(ctx context.Context, matchID string) error {
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Delete(&model.DatePrediction{}).Error

	if err != nil {
		r.logger.Errorw("DeletePredictionsByMatch database error", "match_id", matchID, "error", err)
		return err
	}

	return nil
}
