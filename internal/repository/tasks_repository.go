package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/pkg/entity"
)

const taskColumns = `user_id, task_id, date, completed, text_input, notes, files, updated_at`

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepo(conn PgConnection) *TasksRepository {
	mustPing(conn, "tasksRepo")
	return &TasksRepository{
		conn: conn,
	}
}

func scanTask(row pgx.Row) (entity.TaskRecord, error) {
	var rec entity.TaskRecord
	var taskID string
	err := row.Scan(&rec.UserID, &taskID, &rec.Date, &rec.Completed, &rec.TextInput, &rec.Notes, &rec.Files, &rec.UpdatedAt)
	if err != nil {
		return rec, err
	}
	rec.TaskID = entity.TaskKind(taskID)
	if rec.Files == nil {
		rec.Files = []string{}
	}
	return rec, nil
}

// Upsert relies on the (user_id, task_id, date) primary key, so concurrent
// writers of the same record never create duplicates.
func (tr *TasksRepository) Upsert(ctx context.Context, rec *entity.TaskRecord) error {
	if rec == nil {
		return errors.New("task record is nil")
	}
	files := rec.Files
	if files == nil {
		files = []string{}
	}
	_, err := tr.conn.Exec(ctx,
		`INSERT INTO tasks (user_id, task_id, date, completed, text_input, notes, files, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (user_id, task_id, date) DO UPDATE SET
		completed = EXCLUDED.completed, text_input = EXCLUDED.text_input, notes = EXCLUDED.notes,
		files = EXCLUDED.files, updated_at = EXCLUDED.updated_at;`,
		rec.UserID, string(rec.TaskID), rec.Date, rec.Completed, rec.TextInput, rec.Notes, files,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("upserting task error: " + err.Error())
	}
	return nil
}

func (tr *TasksRepository) Get(ctx context.Context, uid uuid.UUID, taskID entity.TaskKind, date string) (*entity.TaskRecord, error) {
	row := tr.conn.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 AND task_id = $2 AND date = $3;`,
		uid, string(taskID), date,
	)
	rec, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task error: " + err.Error())
	}
	return &rec, nil
}

func (tr *TasksRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.TaskRecord, error) {
	return tr.list(ctx, `SELECT `+taskColumns+` FROM tasks WHERE user_id = $1;`, uid)
}

func (tr *TasksRepository) ListByUserAndRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.TaskRecord, error) {
	return tr.list(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date, task_id;`,
		uid, from, to,
	)
}

func (tr *TasksRepository) ListRecentByUser(ctx context.Context, uid uuid.UUID, limit int) ([]entity.TaskRecord, error) {
	return tr.list(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY date DESC, updated_at DESC LIMIT $2;`,
		uid, limit,
	)
}

func (tr *TasksRepository) ListAll(ctx context.Context) ([]entity.TaskRecord, error) {
	return tr.list(ctx, `SELECT `+taskColumns+` FROM tasks;`)
}

func (tr *TasksRepository) list(ctx context.Context, query string, args ...any) ([]entity.TaskRecord, error) {
	rows, err := tr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing tasks error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.TaskRecord, 0)
	for rows.Next() {
		rec, err := scanTask(rows)
		if err != nil {
			return nil, errors.New("task row parsing error: " + err.Error())
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected task rows error: " + err.Error())
	}
	return result, nil
}
