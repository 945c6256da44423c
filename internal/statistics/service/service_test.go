package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	matchModel "github.com/matchday/matchday/internal/match/model"
	memberModel "github.com/matchday/matchday/internal/member/model"
	"github.com/matchday/matchday/internal/readiness"
	"github.com/matchday/matchday/internal/statistics/model"
	"github.com/matchday/matchday/internal/statistics/repository"
	teamModel "github.com/matchday/matchday/internal/team/model"
)

type fixedClock struct {
	date string
}

func (c fixedClock) Today() string { return c.date }

const today = "2025-03-01"

func setupService(t *testing.T) (Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&teamModel.Team{},
		&memberModel.Member{},
		&matchModel.Match{},
		&matchModel.AvailabilityRecord{},
		&matchModel.DatePrediction{},
	)
	require.NoError(t, err)

	require.NoError(t, db.Create(&teamModel.Team{
		ID:            "team-1",
		Name:          "FC Thunder",
		Slug:          "fc-thunder",
		PlayersNeeded: 2,
		AccessCode:    "ABCD2345",
	}).Error)

	for _, m := range []memberModel.Member{
		{ID: "m1", TeamID: "team-1", Name: "Alice", IsActive: true},
		{ID: "m2", TeamID: "team-1", Name: "Bob", IsActive: true},
	} {
		member := m
		require.NoError(t, db.Create(&member).Error)
	}

	logger := zap.NewNop().Sugar()
	repo := repository.New(db, logger)
	return New(repo, logger, fixedClock{date: today}, readiness.DefaultConfig()), db
}

func createMatch(t *testing.T, db *gorm.DB, id, date string) {
	require.NoError(t, db.Create(&matchModel.Match{
		ID:       id,
		TeamID:   "team-1",
		Opponent: "Rivals",
		Date:     date,
	}).Error)
}

func setAvailability(t *testing.T, db *gorm.DB, matchID, memberID, availability string) {
	require.NoError(t, db.Create(&matchModel.AvailabilityRecord{
		MatchID:      matchID,
		MemberID:     memberID,
		Availability: availability,
	}).Error)
}

func TestService_GetMemberStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown team", func(t *testing.T) {
		svc, _ := setupService(t)

		resp, err := svc.GetMemberStatistics(ctx, "ghost")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, model.ErrTeamNotFound)
	})

	t.Run("counts per member", func(t *testing.T) {
		svc, db := setupService(t)
		createMatch(t, db, "match-1", "2025-03-10")
		createMatch(t, db, "match-2", "2025-03-17")

		setAvailability(t, db, "match-1", "m1", "available")
		setAvailability(t, db, "match-2", "m1", "maybe")
		setAvailability(t, db, "match-1", "m2", "not_available")

		resp, err := svc.GetMemberStatistics(ctx, "fc-thunder")
		require.NoError(t, err)

		assert.Equal(t, 2, resp.TotalMatches)
		require.Len(t, resp.Members, 2)

		// Ordered by responses, most active first.
		alice := resp.Members[0]
		assert.Equal(t, "m1", alice.MemberID)
		assert.Equal(t, 2, alice.Responded)
		assert.Equal(t, 1, alice.Available)
		assert.Equal(t, 1, alice.Maybe)
		assert.Zero(t, alice.NoResponse)
		assert.InDelta(t, 1.0, alice.ResponseRate, 0.001)

		bob := resp.Members[1]
		assert.Equal(t, "m2", bob.MemberID)
		assert.Equal(t, 1, bob.Responded)
		assert.Equal(t, 1, bob.NotAvailable)
		assert.Equal(t, 1, bob.NoResponse)
		assert.InDelta(t, 0.5, bob.ResponseRate, 0.001)
	})

	t.Run("no matches yet", func(t *testing.T) {
		svc, _ := setupService(t)

		resp, err := svc.GetMemberStatistics(ctx, "fc-thunder")
		require.NoError(t, err)

		assert.Zero(t, resp.TotalMatches)
		require.Len(t, resp.Members, 2)
		assert.Zero(t, resp.Members[0].ResponseRate)
	})
}

func TestService_GetMatchStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("buckets by derived status", func(t *testing.T) {
		svc, db := setupService(t)

		createMatch(t, db, "past", "2025-02-20")
		createMatch(t, db, "near", "2025-03-10") // inside window, nobody answered
		createMatch(t, db, "ready", "2025-03-12")
		createMatch(t, db, "far", "2025-06-01")

		setAvailability(t, db, "ready", "m1", "available")
		setAvailability(t, db, "ready", "m2", "available")

		resp, err := svc.GetMatchStatistics(ctx, "fc-thunder")
		require.NoError(t, err)

		stats := resp.Statistics
		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 1, stats.Past)
		assert.Equal(t, 1, stats.NotReady)
		assert.Equal(t, 1, stats.Ready)
		assert.Equal(t, 1, stats.Possible)
	})

	t.Run("pending predictions count as possible", func(t *testing.T) {
		svc, db := setupService(t)

		createMatch(t, db, "match-1", "2025-03-12")
		setAvailability(t, db, "match-1", "m1", "available")
		setAvailability(t, db, "match-1", "m2", "available")
		require.NoError(t, db.Create(&matchModel.DatePrediction{
			MatchID:       "match-1",
			MemberID:      "m1",
			PredictedDate: "2025-03-14",
			Availability:  "available",
		}).Error)

		resp, err := svc.GetMatchStatistics(ctx, "fc-thunder")
		require.NoError(t, err)

		assert.Equal(t, 1, resp.Statistics.Possible)
		assert.Zero(t, resp.Statistics.Ready)
	})
}
