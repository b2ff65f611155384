package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/pkg/entity"
)

type NoticesRepository struct {
	conn PgConnection
}

func NewNoticesRepo(conn PgConnection) *NoticesRepository {
	mustPing(conn, "noticesRepo")
	return &NoticesRepository{
		conn: conn,
	}
}

func (nr *NoticesRepository) Create(ctx context.Context, notice *entity.Notice) (uuid.UUID, error) {
	var id uuid.UUID
	row := nr.conn.QueryRow(ctx,
		`INSERT INTO notices (title, content, priority, created_by) VALUES ($1, $2, $3, $4) RETURNING id;`,
		notice.Title, notice.Content, string(notice.Priority), notice.CreatedBy,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, errors.New("creating notice error: " + err.Error())
	}
	return id, nil
}

func (nr *NoticesRepository) ListActive(ctx context.Context, limit int) ([]*entity.Notice, error) {
	rows, err := nr.conn.Query(ctx,
		`SELECT id, title, content, priority, created_by, created_at, active, deleted_at
		FROM notices WHERE active = TRUE ORDER BY created_at DESC LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, errors.New("listing notices error: " + err.Error())
	}
	defer rows.Close()
	notices := make([]*entity.Notice, 0)
	for rows.Next() {
		n := entity.Notice{}
		var priority string
		var createdBy *uuid.UUID
		err = rows.Scan(&n.ID, &n.Title, &n.Content, &priority, &createdBy, &n.CreatedAt, &n.Active, &n.DeletedAt)
		if err != nil {
			return nil, errors.New("notice row parsing error: " + err.Error())
		}
		n.Priority = entity.NoticePriority(priority)
		if createdBy != nil {
			n.CreatedBy = *createdBy
		}
		notices = append(notices, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected notice rows error: " + err.Error())
	}
	return notices, nil
}

func (nr *NoticesRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	ct, err := nr.conn.Exec(ctx, `UPDATE notices SET active = FALSE, deleted_at = NOW() WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deactivating notice error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNoticeNotFound
	}
	return nil
}
