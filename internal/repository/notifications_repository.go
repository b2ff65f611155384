package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/pkg/entity"
)

type NotificationsRepository struct {
	conn PgConnection
}

func NewNotificationsRepo(conn PgConnection) *NotificationsRepository {
	mustPing(conn, "notificationsRepo")
	return &NotificationsRepository{
		conn: conn,
	}
}

func (nr *NotificationsRepository) Create(ctx context.Context, n *entity.Notification) error {
	_, err := nr.conn.Exec(ctx,
		`INSERT INTO notifications (user_id, type, title, message, notice_id) VALUES ($1, $2, $3, $4, $5);`,
		n.UserID, string(n.Type), n.Title, n.Message, n.NoticeID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating notification error: " + err.Error())
	}
	return nil
}

// Broadcast fans n out in a single statement so every user sees the same set.
func (nr *NotificationsRepository) Broadcast(ctx context.Context, n *entity.Notification) (int64, error) {
	ct, err := nr.conn.Exec(ctx,
		`INSERT INTO notifications (user_id, type, title, message, notice_id)
		SELECT id, $1, $2, $3, $4 FROM users;`,
		string(n.Type), n.Title, n.Message, n.NoticeID,
	)
	if err != nil {
		return 0, errors.New("broadcasting notification error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}

func (nr *NotificationsRepository) ListByUser(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Notification, error) {
	rows, err := nr.conn.Query(ctx,
		`SELECT id, user_id, type, title, message, read, notice_id, created_at
		FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;`,
		uid, limit,
	)
	if err != nil {
		return nil, errors.New("listing notifications error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.Notification, 0)
	for rows.Next() {
		n := entity.Notification{}
		var kind string
		err = rows.Scan(&n.ID, &n.UserID, &kind, &n.Title, &n.Message, &n.Read, &n.NoticeID, &n.CreatedAt)
		if err != nil {
			return nil, errors.New("notification row parsing error: " + err.Error())
		}
		n.Type = entity.NotificationType(kind)
		result = append(result, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected notification rows error: " + err.Error())
	}
	return result, nil
}

func (nr *NotificationsRepository) CountUnread(ctx context.Context, uid uuid.UUID) (int, error) {
	var count int
	row := nr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE;`, uid)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting unread notifications error: " + err.Error())
	}
	return count, nil
}

func (nr *NotificationsRepository) MarkRead(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := nr.conn.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("marking notification read error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotificationNotFound
	}
	return nil
}
