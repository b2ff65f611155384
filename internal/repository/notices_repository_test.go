package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/internal/repository"
	"github.com/limbo/discipline-tracker/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotices(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewNoticesRepo(mock)
	ctx := context.Background()
	admin := uuid.New()
	notice := entity.Notice{
		ID:        uuid.New(),
		Title:     "Rest day rules",
		Content:   "Sunday still counts.",
		Priority:  entity.PriorityImportant,
		CreatedBy: admin,
		CreatedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		Active:    true,
	}

	t.Run("created", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO notices (title, content, priority, created_by) VALUES ($1, $2, $3, $4) RETURNING id;`)).
			WithArgs(notice.Title, notice.Content, "important", admin).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(notice.ID))
		id, err := repo.Create(ctx, &notice)
		require.NoError(t, err)
		assert.Equal(t, notice.ID, id)
	})
	t.Run("listed", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "title", "content", "priority", "created_by", "created_at", "active", "deleted_at"}).
			AddRow(notice.ID, notice.Title, notice.Content, "important", &admin, notice.CreatedAt, true, (*time.Time)(nil))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM notices WHERE active = TRUE ORDER BY created_at DESC LIMIT $1;`)).
			WithArgs(50).
			WillReturnRows(rows)
		res, err := repo.ListActive(ctx, 50)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, notice, *res[0])
	})
	deactivate := regexp.QuoteMeta(`UPDATE notices SET active = FALSE, deleted_at = NOW() WHERE id = $1;`)
	t.Run("deactivated", func(t *testing.T) {
		mock.ExpectExec(deactivate).WithArgs(notice.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Deactivate(ctx, notice.ID))
	})
	t.Run("deactivate missing", func(t *testing.T) {
		mock.ExpectExec(deactivate).WithArgs(notice.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Deactivate(ctx, notice.ID), errorvalues.ErrNoticeNotFound)
	})
	t.Run("deactivate db error", func(t *testing.T) {
		mock.ExpectExec(deactivate).WithArgs(notice.ID).WillReturnError(errors.New("db error"))
		assert.EqualError(t, repo.Deactivate(ctx, notice.ID), "deactivating notice error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotifications(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewNotificationsRepo(mock)
	ctx := context.Background()
	uid := uuid.New()
	noticeID := uuid.New()

	t.Run("broadcast to every user", func(t *testing.T) {
		n := entity.Notification{Type: entity.NotificationNotice, Title: "New Notice", Message: "📢 hi", NoticeID: &noticeID}
		mock.ExpectExec(regexp.QuoteMeta(`SELECT id, $1, $2, $3, $4 FROM users;`)).
			WithArgs("notice", n.Title, n.Message, &noticeID).
			WillReturnResult(pgxmock.NewResult("INSERT", 3))
		count, err := repo.Broadcast(ctx, &n)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
	t.Run("create warning", func(t *testing.T) {
		n := entity.Notification{UserID: uid, Type: entity.NotificationWarning, Message: "Warning"}
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO notifications (user_id, type, title, message, notice_id) VALUES ($1, $2, $3, $4, $5);`)).
			WithArgs(uid, "warning", "", "Warning", (*uuid.UUID)(nil)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Create(ctx, &n))
	})
	t.Run("list", func(t *testing.T) {
		created := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
		id := uuid.New()
		rows := pgxmock.NewRows([]string{"id", "user_id", "type", "title", "message", "read", "notice_id", "created_at"}).
			AddRow(id, uid, "notice", "New Notice", "📢 hi", false, &noticeID, created)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;`)).
			WithArgs(uid, 50).
			WillReturnRows(rows)
		res, err := repo.ListByUser(ctx, uid, 50)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, entity.Notification{
			ID: id, UserID: uid, Type: entity.NotificationNotice, Title: "New Notice",
			Message: "📢 hi", NoticeID: &noticeID, CreatedAt: created,
		}, *res[0])
	})
	t.Run("count unread", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE;`)).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))
		count, err := repo.CountUnread(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})
	markRead := regexp.QuoteMeta(`UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2;`)
	t.Run("mark read", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectExec(markRead).WithArgs(id, uid).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.MarkRead(ctx, id, uid))
	})
	t.Run("mark read of someone else's notification", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectExec(markRead).WithArgs(id, uid).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.MarkRead(ctx, id, uid), errorvalues.ErrNotificationNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
