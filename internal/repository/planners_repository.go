package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/pkg/entity"
)

type PlannersRepository struct {
	conn PgConnection
}

func NewPlannersRepo(conn PgConnection) *PlannersRepository {
	mustPing(conn, "plannersRepo")
	return &PlannersRepository{
		conn: conn,
	}
}

func (pr *PlannersRepository) Get(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyPlanner, error) {
	var p entity.DailyPlanner
	var slots []byte
	row := pr.conn.QueryRow(ctx,
		`SELECT id, user_id, name, date, time_slots, created_at, updated_at
		FROM daily_planners WHERE user_id = $1 AND date = $2;`,
		uid, date,
	)
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Date, &slots, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPlannerNotFound
		}
		return nil, errors.New("getting planner error: " + err.Error())
	}
	if err = sonic.Unmarshal(slots, &p.TimeSlots); err != nil {
		return nil, errors.New("decoding planner time slots error: " + err.Error())
	}
	return &p, nil
}

func (pr *PlannersRepository) Upsert(ctx context.Context, planner *entity.DailyPlanner) error {
	slots := planner.TimeSlots
	if slots == nil {
		slots = []entity.TimeSlot{}
	}
	encoded, err := sonic.Marshal(slots)
	if err != nil {
		return errors.New("encoding planner time slots error: " + err.Error())
	}
	_, err = pr.conn.Exec(ctx,
		`INSERT INTO daily_planners (user_id, name, date, time_slots) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date) DO UPDATE SET
		name = EXCLUDED.name, time_slots = EXCLUDED.time_slots, updated_at = NOW();`,
		planner.UserID, planner.Name, planner.Date, string(encoded),
	)
	if err != nil {
		return errors.New("upserting planner error: " + err.Error())
	}
	return nil
}
