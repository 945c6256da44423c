// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/matchday/matchday/internal/readiness"
	"github.com/matchday/matchday/internal/statistics/model"
	"github.com/matchday/matchday/internal/statistics/repository"
)

// Clock supplies the "today" reference used for status derivation.
type Clock interface {
	Today() string
}

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetMemberStatistics returns per-member response statistics for a team.
	GetMemberStatistics(ctx context.Context, teamSlug string) (*model.MemberStatisticsResponse, error)

	// GetMatchStatistics returns counts of the team's matches per derived
	// readiness status.
	GetMatchStatistics(ctx context.Context, teamSlug string) (*model.MatchStatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
	clock  Clock
	cfg    readiness.Config
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger, clock Clock, cfg readiness.Config) Service {
	return &service{
		repo:   repo,
		logger: logger,
		clock:  clock,
		cfg:    cfg,
	}
}

// GetMemberStatistics returns per-member response statistics for a team.
func (s *service) GetMemberStatistics(ctx context.Context, teamSlug string) (*model.MemberStatisticsResponse, error) {
	team, err := s.repo.GetTeamBySlug(ctx, teamSlug)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetMemberStatistics(ctx, team.ID)
	if err != nil {
		s.logger.Errorw("GetMemberStatistics failed", "team", teamSlug, "error", err)
		return nil, err
	}

	totalMatches, err := s.repo.CountMatches(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	for i := range members {
		m := &members[i]
		m.NoResponse = totalMatches - m.Responded
		if m.NoResponse < 0 {
			m.NoResponse = 0
		}
		if totalMatches > 0 {
			m.ResponseRate = float64(m.Responded) / float64(totalMatches)
		}
	}

	s.logger.Infow("GetMemberStatistics completed", "team", teamSlug, "count", len(members))
	return &model.MemberStatisticsResponse{
		TeamSlug:     teamSlug,
		TotalMatches: totalMatches,
		Members:      members,
	}, nil
}

// GetMatchStatistics returns counts of the team's matches per derived
// readiness status.
func (s *service) GetMatchStatistics(ctx context.Context, teamSlug string) (*model.MatchStatisticsResponse, error) {
	team, err := s.repo.GetTeamBySlug(ctx, teamSlug)
	if err != nil {
		return nil, err
	}

	matches, err := s.repo.ListMatches(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	roster, err := s.repo.ListRoster(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListAvailability(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	predictions, err := s.repo.ListPredictions(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	members := make([]readiness.Member, 0, len(roster))
	for _, entry := range roster {
		if !entry.IsActive {
			continue
		}
		members = append(members, readiness.Member{ID: entry.ID, Name: entry.Name})
	}

	engineRecords := make([]readiness.Record, 0, len(records))
	for _, rec := range records {
		engineRecords = append(engineRecords, readiness.Record{
			MemberID:     rec.MemberID,
			MatchID:      rec.MatchID,
			Availability: readiness.Availability(rec.Availability),
		})
	}

	predictionsByMatch := map[string]readiness.PredictionSet{}
	for _, p := range predictions {
		set, ok := predictionsByMatch[p.MatchID]
		if !ok {
			set = readiness.PredictionSet{}
			predictionsByMatch[p.MatchID] = set
		}
		set.Add(readiness.Prediction{
			MemberID:      p.MemberID,
			MatchID:       p.MatchID,
			PredictedDate: p.PredictedDate,
			Availability:  readiness.Availability(p.Availability),
		})
	}

	today := s.clock.Today()

	var stats model.MatchStatistics
	for _, match := range matches {
		status := readiness.DeriveStatus(readiness.StatusInput{
			MatchID:       match.ID,
			MatchDate:     match.Date,
			Today:         today,
			Members:       members,
			Records:       engineRecords,
			PlayersNeeded: team.PlayersNeeded,
			Predictions:   predictionsByMatch[match.ID],
		}, s.cfg)
		stats.CountFor(status)
	}

	s.logger.Infow("GetMatchStatistics completed", "team", teamSlug, "total", stats.Total)
	return &model.MatchStatisticsResponse{
		TeamSlug:   teamSlug,
		Statistics: stats,
	}, nil
}
