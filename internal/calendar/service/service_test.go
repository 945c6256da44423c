package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/matchday/matchday/internal/calendar/model"
	"github.com/matchday/matchday/internal/calendar/repository"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetTeamBySlug(ctx context.Context, slug string) (*repository.TeamInfo, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TeamInfo), args.Error(1)
}

func (m *mockRepository) CreateMatches(ctx context.Context, rows []repository.MatchRow) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

type publishedEvent struct {
	teamSlug  string
	eventType string
}

type mockPublisher struct {
	events []publishedEvent
}

func (p *mockPublisher) Publish(teamSlug, eventType string, payload interface{}) {
	p.events = append(p.events, publishedEvent{teamSlug: teamSlug, eventType: eventType})
}

const fixtures = "BEGIN:VCALENDAR\n" +
	"BEGIN:VEVENT\n" +
	"DTSTART:20250322T190000Z\n" +
	"SUMMARY:FC Thunder vs Rivals\n" +
	"LOCATION:City Arena\n" +
	"END:VEVENT\n" +
	"BEGIN:VEVENT\n" +
	"DTSTART;VALUE=DATE:20250405\n" +
	"SUMMARY:FC Thunder @ Strikers\n" +
	"END:VEVENT\n" +
	"BEGIN:VEVENT\n" +
	"SUMMARY:Event without a date\n" +
	"END:VEVENT\n" +
	"END:VCALENDAR\n"

func TestService_Import(t *testing.T) {
	ctx := context.Background()
	team := &repository.TeamInfo{ID: "team-1", Slug: "fc-thunder"}

	t.Run("unknown team", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar(), &mockPublisher{})

		mockRepo.On("GetTeamBySlug", ctx, "ghost").Return(nil, model.ErrTeamNotFound)

		resp, err := svc.Import(ctx, "ghost", strings.NewReader(fixtures))

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, model.ErrTeamNotFound)
	})

	t.Run("no events", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar(), &mockPublisher{})

		mockRepo.On("GetTeamBySlug", ctx, "fc-thunder").Return(team, nil)

		resp, err := svc.Import(ctx, "fc-thunder", strings.NewReader("BEGIN:VCALENDAR\nEND:VCALENDAR\n"))

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, model.ErrEmptyCalendar)
	})

	t.Run("creates matches and counts skipped events", func(t *testing.T) {
		mockRepo := new(mockRepository)
		publisher := &mockPublisher{}
		svc := New(mockRepo, zap.NewNop().Sugar(), publisher)

		mockRepo.On("GetTeamBySlug", ctx, "fc-thunder").Return(team, nil)

		var inserted []repository.MatchRow
		mockRepo.On("CreateMatches", ctx, mock.AnythingOfType("[]repository.MatchRow")).
			Run(func(args mock.Arguments) {
				inserted = args.Get(1).([]repository.MatchRow)
			}).
			Return(nil)

		resp, err := svc.Import(ctx, "fc-thunder", strings.NewReader(fixtures))

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Skipped)
		require.Len(t, resp.Created, 2)

		require.Len(t, inserted, 2)
		home := inserted[0]
		assert.Equal(t, "Rivals", home.Opponent)
		assert.Equal(t, "2025-03-22", home.Date)
		assert.Equal(t, "19:00", home.Time)
		assert.True(t, home.IsHome)
		assert.Equal(t, "City Arena", home.Venue)

		away := inserted[1]
		assert.Equal(t, "Strikers", away.Opponent)
		assert.Equal(t, "2025-04-05", away.Date)
		assert.False(t, away.IsHome)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, "calendar_imported", publisher.events[0].eventType)
		assert.Equal(t, "fc-thunder", publisher.events[0].teamSlug)
	})
}

func TestParseOpponent(t *testing.T) {
	tests := []struct {
		summary  string
		opponent string
		isHome   bool
	}{
		{"FC Thunder vs Rivals", "Rivals", true},
		{"FC Thunder vs. Rivals", "Rivals", true},
		{"FC Thunder @ Strikers", "Strikers", false},
		{"Rivals", "Rivals", true},
		{"  Rivals  ", "Rivals", true},
	}

	for _, tt := range tests {
		opponent, isHome := parseOpponent(tt.summary)
		assert.Equal(t, tt.opponent, opponent, tt.summary)
		assert.Equal(t, tt.isHome, isHome, tt.summary)
	}
}
