// Package service provides business logic layer for calendar import module.
package service

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matchday/matchday/internal/calendar/ics"
	"github.com/matchday/matchday/internal/calendar/model"
	"github.com/matchday/matchday/internal/calendar/repository"
	"github.com/matchday/matchday/internal/readiness"
)

// Publisher broadcasts team-scoped events to connected clients.
type Publisher interface {
	Publish(teamSlug, eventType string, payload interface{})
}

// Service defines the interface for calendar import business logic operations.
type Service interface {
	// Import parses an iCalendar stream and creates a match for every
	// event that yields a valid date and opponent. Events that do not are
	// counted as skipped, not treated as errors.
	Import(ctx context.Context, teamSlug string, r io.Reader) (*model.ImportResponse, error)
}

type service struct {
	repo      repository.Repository
	logger    *zap.SugaredLogger
	publisher Publisher
}

// New creates a new calendar import service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger, publisher Publisher) Service {
	return &service{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// Import parses an iCalendar stream and creates matches from its events.
func (s *service) Import(ctx context.Context, teamSlug string, r io.Reader) (*model.ImportResponse, error) {
	team, err := s.repo.GetTeamBySlug(ctx, teamSlug)
	if err != nil {
		return nil, err
	}

	events, err := ics.Parse(r)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, model.ErrEmptyCalendar
	}

	resp := &model.ImportResponse{
		TeamSlug: teamSlug,
		Created:  []model.ImportedMatch{},
	}

	rows := make([]repository.MatchRow, 0, len(events))
	for _, event := range events {
		date, dateErr := readiness.NormalizeDate(event.Date())
		opponent, isHome := parseOpponent(event.Summary)
		if dateErr != nil || opponent == "" {
			resp.Skipped++
			continue
		}

		row := repository.MatchRow{
			ID:       uuid.NewString(),
			TeamID:   team.ID,
			Opponent: opponent,
			Date:     date,
			Time:     event.Time(),
			IsHome:   isHome,
			Venue:    event.Location,
		}
		rows = append(rows, row)
		resp.Created = append(resp.Created, model.ImportedMatch{
			ID:       row.ID,
			Opponent: row.Opponent,
			Date:     row.Date,
			Time:     row.Time,
			IsHome:   row.IsHome,
			Venue:    row.Venue,
		})
	}

	if err := s.repo.CreateMatches(ctx, rows); err != nil {
		return nil, err
	}

	s.logger.Infow("calendar imported",
		"team", teamSlug, "created", len(rows), "skipped", resp.Skipped)

	if len(rows) > 0 {
		s.publisher.Publish(team.Slug, "calendar_imported", resp)
	}
	return resp, nil
}

// parseOpponent extracts the opponent name from an event summary.
// "Our Team vs Rivals" reads as a home fixture against Rivals, and
// "Our Team @ Rivals" as an away fixture. A summary without either marker
// is taken verbatim as a home opponent.
func parseOpponent(summary string) (opponent string, isHome bool) {
	summary = strings.TrimSpace(summary)

	for _, marker := range []string{" vs ", " vs. ", " VS ", " Vs "} {
		if idx := strings.Index(summary, marker); idx >= 0 {
			return strings.TrimSpace(summary[idx+len(marker):]), true
		}
	}
	if idx := strings.Index(summary, " @ "); idx >= 0 {
		return strings.TrimSpace(summary[idx+3:]), false
	}
	return summary, true
}
