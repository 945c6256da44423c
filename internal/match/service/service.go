// Package service provides business logic layer for match module.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/matchday/matchday/internal/match/model"
	"github.com/matchday/matchday/internal/match/repository"
	"github.com/matchday/matchday/internal/readiness"
)

// Publisher broadcasts team-scoped events to connected clients.
type Publisher interface {
	Publish(teamSlug, eventType string, payload interface{})
}

// Clock supplies the "today" reference used for status derivation. The
// production clock refreshes from the host clock periodically; tests inject
// a fixed date.
type Clock interface {
	Today() string
}

// Service defines the interface for match business logic operations.
type Service interface {
	// CreateMatch schedules a new match for a team.
	CreateMatch(ctx context.Context, req *model.CreateMatchRequest) (*model.MatchResponse, error)

	// ListMatches returns a team's schedule decorated with availability
	// summaries and readiness statuses.
	ListMatches(ctx context.Context, teamSlug string) (*model.ListMatchesResponse, error)

	// ChangeDate moves a match to a new date directly.
	ChangeDate(ctx context.Context, req *model.ChangeDateRequest) (*model.MatchResponse, error)

	// SetAvailability records one member's answer for a match, replacing
	// any prior answer.
	SetAvailability(ctx context.Context, req *model.SetAvailabilityRequest) (*model.MatchResponse, error)

	// AddPrediction records a member's vote for an alternate date.
	AddPrediction(ctx context.Context, req *model.AddPredictionRequest) (*model.MatchResponse, error)

	// RemovePrediction withdraws a member from all date groups of a match.
	RemovePrediction(ctx context.Context, req *model.RemovePredictionRequest) (*model.MatchResponse, error)

	// ChoosePredictedDate promotes a proposed date to be the match's
	// actual date and clears the match's prediction and availability
	// state so answers are collected fresh.
	ChoosePredictedDate(ctx context.Context, req *model.ChoosePredictedDateRequest) (*model.MatchResponse, error)
}

type service struct {
	repo      repository.Repository
	db        *gorm.DB
	logger    *zap.SugaredLogger
	publisher Publisher
	clock     Clock
	cfg       readiness.Config
}

// New creates a new match service instance.
func New(
	repo repository.Repository,
	db *gorm.DB,
	logger *zap.SugaredLogger,
	publisher Publisher,
	clock Clock,
	cfg readiness.Config,
) Service {
	return &service{
		repo:      repo,
		db:        db,
		logger:    logger,
		publisher: publisher,
		clock:     clock,
		cfg:       cfg,
	}
}

// CreateMatch schedules a new match for a team.
func (s *service) CreateMatch(ctx context.Context, req *model.CreateMatchRequest) (*model.MatchResponse, error) {
	if req.Opponent == "" {
		return nil, model.ErrInvalidOpponent
	}

	date, err := readiness.NormalizeDate(req.Date)
	if err != nil {
		return nil, model.ErrInvalidDate
	}

	team, err := s.repo.GetTeamBySlug(ctx, req.TeamSlug)
	if err != nil {
		return nil, err
	}

	match, err := s.repo.CreateMatch(ctx, &model.Match{
		ID:       uuid.NewString(),
		TeamID:   team.ID,
		Opponent: req.Opponent,
		Date:     date,
		Time:     req.Time,
		IsHome:   req.IsHome,
		Venue:    req.Venue,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("match created", "match_id", match.ID, "team_id", team.ID, "date", date)

	resp, err := s.buildResponse(ctx, match, team)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(team.Slug, "match_created", resp)
	return resp, nil
}

// ListMatches returns a team's schedule decorated with availability
// summaries and readiness statuses.
func (s *service) ListMatches(ctx context.Context, teamSlug string) (*model.ListMatchesResponse, error) {
	team, err := s.repo.GetTeamBySlug(ctx, teamSlug)
	if err != nil {
		return nil, err
	}

	matches, err := s.repo.ListMatchesByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	roster, err := s.activeRoster(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListAvailabilityByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	predictions, err := s.repo.ListPredictionsByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	predictionsByMatch := map[string][]model.DatePrediction{}
	for _, p := range predictions {
		predictionsByMatch[p.MatchID] = append(predictionsByMatch[p.MatchID], p)
	}

	engineRecords := toEngineRecords(records)
	today := s.clock.Today()

	resp := &model.ListMatchesResponse{
		TeamSlug: teamSlug,
		Matches:  make([]model.MatchResponse, 0, len(matches)),
	}
	for i := range matches {
		match := &matches[i]
		resp.Matches = append(resp.Matches, *decorate(
			match, roster, engineRecords, predictionsByMatch[match.ID],
			team.PlayersNeeded, today, s.cfg,
		))
	}

	return resp, nil
}

// ChangeDate moves a match to a new date directly.
func (s *service) ChangeDate(ctx context.Context, req *model.ChangeDateRequest) (*model.MatchResponse, error) {
	date, err := readiness.NormalizeDate(req.Date)
	if err != nil {
		return nil, model.ErrInvalidDate
	}

	match, err := s.repo.GetMatchByID(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}

	var originalDate *string
	if match.OriginalDate == nil && match.Date != date {
		prior := match.Date
		originalDate = &prior
	}

	if err := s.repo.UpdateMatchDate(ctx, match.ID, date, originalDate); err != nil {
		return nil, err
	}

	s.logger.Infow("match date changed", "match_id", match.ID, "date", date)
	return s.refresh(ctx, match.ID, "match_date_changed")
}

// SetAvailability records one member's answer for a match.
func (s *service) SetAvailability(ctx context.Context, req *model.SetAvailabilityRequest) (*model.MatchResponse, error) {
	if !readiness.Availability(req.Availability).Valid() {
		return nil, model.ErrInvalidAvailability
	}

	match, err := s.repo.GetMatchByID(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}

	if err := s.requireMember(ctx, req.MemberID, match.TeamID); err != nil {
		return nil, err
	}

	err = s.repo.UpsertAvailability(ctx, &model.AvailabilityRecord{
		MatchID:      match.ID,
		MemberID:     req.MemberID,
		Availability: req.Availability,
	})
	if err != nil {
		return nil, err
	}

	return s.refresh(ctx, match.ID, "availability_updated")
}

// AddPrediction records a member's vote for an alternate date.
func (s *service) AddPrediction(ctx context.Context, req *model.AddPredictionRequest) (*model.MatchResponse, error) {
	if !readiness.Availability(req.Availability).Valid() {
		return nil, model.ErrInvalidAvailability
	}

	date, err := readiness.NormalizeDate(req.Date)
	if err != nil {
		return nil, model.ErrInvalidDate
	}

	match, err := s.repo.GetMatchByID(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}

	if err := s.requireMember(ctx, req.MemberID, match.TeamID); err != nil {
		return nil, err
	}

	err = s.repo.UpsertPrediction(ctx, &model.DatePrediction{
		MatchID:       match.ID,
		MemberID:      req.MemberID,
		PredictedDate: date,
		Availability:  req.Availability,
	})
	if err != nil {
		return nil, err
	}

	return s.refresh(ctx, match.ID, "prediction_added")
}

// RemovePrediction withdraws a member from all date groups of a match.
func (s *service) RemovePrediction(ctx context.Context, req *model.RemovePredictionRequest) (*model.MatchResponse, error) {
	match, err := s.repo.GetMatchByID(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeletePredictionsByMember(ctx, match.ID, req.MemberID); err != nil {
		return nil, err
	}

	return s.refresh(ctx, match.ID, "prediction_removed")
}

// ChoosePredictedDate promotes a proposed date to be the match's actual
// date. This is a commit point: prediction and availability state for the
// match is cleared so answers against the new date are collected fresh.
// Choosing the date the match already has is a no-op, which makes the
// operation idempotent with respect to the date field.
func (s *service) ChoosePredictedDate(ctx context.Context, req *model.ChoosePredictedDateRequest) (*model.MatchResponse, error) {
	date, err := readiness.NormalizeDate(req.Date)
	if err != nil {
		return nil, model.ErrInvalidDate
	}

	match, err := s.repo.GetMatchByID(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}

	if match.Date == date {
		team, teamErr := s.repo.GetTeamByID(ctx, match.TeamID)
		if teamErr != nil {
			return nil, teamErr
		}
		return s.buildResponse(ctx, match, team)
	}

	predictions, err := s.repo.ListPredictionsByMatch(ctx, match.ID)
	if err != nil {
		return nil, err
	}
	set := toPredictionSet(predictions)
	if len(set.Group(date)) == 0 {
		return nil, model.ErrNoPredictionForDate
	}

	var originalDate *string
	if match.OriginalDate == nil {
		prior := match.Date
		originalDate = &prior
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		if txErr := txRepo.UpdateMatchDate(ctx, match.ID, date, originalDate); txErr != nil {
			return txErr
		}
		if txErr := txRepo.DeletePredictionsByMatch(ctx, match.ID); txErr != nil {
			return txErr
		}
		return txRepo.DeleteAvailabilityByMatch(ctx, match.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("predicted date chosen", "match_id", match.ID, "date", date)
	return s.refresh(ctx, match.ID, "match_date_chosen")
}

// requireMember verifies that the member belongs to the team.
func (s *service) requireMember(ctx context.Context, memberID, teamID string) error {
	ok, err := s.repo.MemberInTeam(ctx, memberID, teamID)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrMemberNotInTeam
	}
	return nil
}

// refresh reloads the match, rebuilds its decorated response and publishes
// it to the team's subscribers.
func (s *service) refresh(ctx context.Context, matchID, eventType string) (*model.MatchResponse, error) {
	match, err := s.repo.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	team, err := s.repo.GetTeamByID(ctx, match.TeamID)
	if err != nil {
		return nil, err
	}

	resp, err := s.buildResponse(ctx, match, team)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(team.Slug, eventType, resp)
	return resp, nil
}

// buildResponse decorates one match with its summary, status and prediction
// groups.
func (s *service) buildResponse(ctx context.Context, match *model.Match, team *repository.TeamInfo) (*model.MatchResponse, error) {
	roster, err := s.activeRoster(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListAvailabilityByMatch(ctx, match.ID)
	if err != nil {
		return nil, err
	}

	predictions, err := s.repo.ListPredictionsByMatch(ctx, match.ID)
	if err != nil {
		return nil, err
	}

	return decorate(match, roster, toEngineRecords(records), predictions,
		team.PlayersNeeded, s.clock.Today(), s.cfg), nil
}

// activeRoster returns the team's active members as engine roster entries.
// Inactive members no longer count toward response totals.
func (s *service) activeRoster(ctx context.Context, teamID string) ([]readiness.Member, error) {
	entries, err := s.repo.ListRoster(ctx, teamID)
	if err != nil {
		return nil, err
	}

	roster := make([]readiness.Member, 0, len(entries))
	for _, e := range entries {
		if !e.IsActive {
			continue
		}
		roster = append(roster, readiness.Member{ID: e.ID, Name: e.Name})
	}
	return roster, nil
}

func toEngineRecords(records []model.AvailabilityRecord) []readiness.Record {
	out := make([]readiness.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, readiness.Record{
			MemberID:     rec.MemberID,
			MatchID:      rec.MatchID,
			Availability: readiness.Availability(rec.Availability),
		})
	}
	return out
}

func toPredictionSet(predictions []model.DatePrediction) readiness.PredictionSet {
	set := readiness.PredictionSet{}
	for _, p := range predictions {
		set.Add(readiness.Prediction{
			MemberID:      p.MemberID,
			MatchID:       p.MatchID,
			PredictedDate: p.PredictedDate,
			Availability:  readiness.Availability(p.Availability),
		})
	}
	return set
}

// decorate builds the API representation of a match from engine inputs.
func decorate(
	match *model.Match,
	roster []readiness.Member,
	records []readiness.Record,
	predictions []model.DatePrediction,
	playersNeeded int,
	today string,
	cfg readiness.Config,
) *model.MatchResponse {
	set := toPredictionSet(predictions)

	status := readiness.DeriveStatus(readiness.StatusInput{
		MatchID:       match.ID,
		MatchDate:     match.Date,
		Today:         today,
		Members:       roster,
		Records:       records,
		PlayersNeeded: playersNeeded,
		Predictions:   set,
	}, cfg)

	groups := make([]model.PredictionGroup, 0, set.Len())
	for _, date := range set.Dates() {
		votes := make([]model.PredictionVote, 0)
		for _, p := range set.Group(date) {
			votes = append(votes, model.PredictionVote{
				MemberID:     p.MemberID,
				Availability: string(p.Availability),
			})
		}
		groups = append(groups, model.PredictionGroup{
			Date:   date,
			Status: set.GroupStatus(date, playersNeeded),
			Votes:  votes,
		})
	}

	return &model.MatchResponse{
		ID:           match.ID,
		TeamID:       match.TeamID,
		Opponent:     match.Opponent,
		Date:         match.Date,
		Time:         match.Time,
		IsHome:       match.IsHome,
		Venue:        match.Venue,
		OriginalDate: match.OriginalDate,
		Status:       status,
		Summary:      readiness.Summarize(match.ID, roster, records),
		Predictions:  groups,
	}
}
