package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/internal/repository"
	"github.com/limbo/discipline-tracker/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanners(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewPlannersRepo(mock)
	ctx := context.Background()
	uid := uuid.New()
	planner := entity.DailyPlanner{
		ID:     uuid.New(),
		UserID: uid,
		Name:   "test_user",
		Date:   "2024-06-03",
		TimeSlots: []entity.TimeSlot{
			{Time: "6:00 - 7:00 AM", Task: "run", Completed: true},
			{Time: "7:00 - 8:00 AM", Task: "read", Notes: "ch. 3"},
		},
		CreatedAt: time.Date(2024, 6, 3, 5, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC),
	}
	get := regexp.QuoteMeta(`FROM daily_planners WHERE user_id = $1 AND date = $2;`)
	upsert := regexp.QuoteMeta(`INSERT INTO daily_planners (user_id, name, date, time_slots) VALUES ($1, $2, $3, $4)`)
	columns := []string{"id", "user_id", "name", "date", "time_slots", "created_at", "updated_at"}
	slotsJSON := `[{"time":"6:00 - 7:00 AM","task":"run","notes":"","completed":true},{"time":"7:00 - 8:00 AM","task":"read","notes":"ch. 3","completed":false}]`

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(get).WithArgs(uid, planner.Date).WillReturnRows(pgxmock.NewRows(columns).
			AddRow(planner.ID, uid, planner.Name, planner.Date, []byte(slotsJSON), planner.CreatedAt, planner.UpdatedAt))
		res, err := repo.Get(ctx, uid, planner.Date)
		require.NoError(t, err)
		assert.Equal(t, planner, *res)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(get).WithArgs(uid, planner.Date).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Get(ctx, uid, planner.Date)
		assert.ErrorIs(t, err, errorvalues.ErrPlannerNotFound)
	})
	t.Run("corrupted slots", func(t *testing.T) {
		mock.ExpectQuery(get).WithArgs(uid, planner.Date).WillReturnRows(pgxmock.NewRows(columns).
			AddRow(planner.ID, uid, planner.Name, planner.Date, []byte(`{`), planner.CreatedAt, planner.UpdatedAt))
		_, err := repo.Get(ctx, uid, planner.Date)
		assert.Error(t, err)
	})
	t.Run("upserted", func(t *testing.T) {
		mock.ExpectExec(upsert).WithArgs(uid, planner.Name, planner.Date, slotsJSON).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Upsert(ctx, &planner))
	})
	t.Run("upsert db error", func(t *testing.T) {
		mock.ExpectExec(upsert).WithArgs(uid, planner.Name, planner.Date, pgxmock.AnyArg()).
			WillReturnError(errors.New("db error"))
		assert.EqualError(t, repo.Upsert(ctx, &planner), "upserting planner error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
