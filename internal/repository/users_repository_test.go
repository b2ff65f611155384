package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/internal/repository"
	"github.com/limbo/discipline-tracker/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "name", "email", "password_hash", "role", "profile_picture",
	"total_days", "success_rate", "current_streak", "longest_streak", "created_at", "updated_at"}

func userRow(rows *pgxmock.Rows, u *entity.User) *pgxmock.Rows {
	return rows.AddRow(u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), u.ProfilePicture,
		u.Stats.TotalDays, u.Stats.SuccessRate, u.Stats.CurrentStreak, u.Stats.LongestStreak,
		u.CreatedAt, u.UpdatedAt)
}

func testUser() entity.User {
	pic := "https://cdn/pic.jpg"
	return entity.User{
		ID:             uuid.New(),
		Name:           "test_user",
		Email:          "test@example.com",
		PasswordHash:   "test_password_hash",
		Role:           entity.RoleAdmin,
		ProfilePicture: &pic,
		Stats:          entity.Stats{TotalDays: 3, SuccessRate: 70, CurrentStreak: 2, LongestStreak: 3},
		CreatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	user := testUser()
	query := regexp.QuoteMeta(`INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id;`)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Name, user.Email, user.PasswordHash).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(user.ID))
		id, err := repo.Create(ctx, &user)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, id)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Name, user.Email, user.PasswordHash).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		_, err := repo.Create(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Name, user.Email, user.PasswordHash).WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &user)
		assert.EqualError(t, err, "creating user db error: db error")
	})
	t.Run("nil user", func(t *testing.T) {
		_, err := repo.Create(ctx, nil)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	user := testUser()
	byID := regexp.QuoteMeta(`FROM users WHERE id = $1;`)
	byEmail := regexp.QuoteMeta(`FROM users WHERE email = $1;`)
	t.Run("found by id", func(t *testing.T) {
		conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnRows(userRow(pgxmock.NewRows(userColumns), &user))
		result, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("found by email", func(t *testing.T) {
		conn.ExpectQuery(byEmail).WithArgs(user.Email).WillReturnRows(userRow(pgxmock.NewRows(userColumns), &user))
		result, err := repo.FindByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(byEmail).WithArgs(user.Email).WillReturnError(errors.New("db error"))
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.EqualError(t, err, "searching user by email error: db error")
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestListUsers(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepo(conn)
	first, second := testUser(), testUser()
	second.ProfilePicture = nil
	second.Role = entity.RoleUser
	query := regexp.QuoteMeta(`FROM users ORDER BY created_at;`)

	rows := pgxmock.NewRows(userColumns)
	userRow(rows, &first)
	userRow(rows, &second)
	conn.ExpectQuery(query).WillReturnRows(rows)
	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first, *users[0])
	assert.Equal(t, second, *users[1])

	conn.ExpectQuery(query).WillReturnError(errors.New("db error"))
	_, err = repo.List(context.Background())
	assert.EqualError(t, err, "listing users error: db error")
}

func TestUpdateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepo(conn)
	ctx := context.Background()
	uid := uuid.New()
	statsQuery := regexp.QuoteMeta(`UPDATE users SET total_days = $1, success_rate = $2, current_streak = $3, longest_streak = $4 WHERE id = $5;`)
	roleQuery := regexp.QuoteMeta(`UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2;`)
	profileQuery := regexp.QuoteMeta(`UPDATE users SET name = $1, profile_picture = COALESCE($2, profile_picture), updated_at = NOW() WHERE id = $3;`)
	stats := entity.Stats{TotalDays: 10, SuccessRate: 55, CurrentStreak: 4, LongestStreak: 6}

	t.Run("stats overwritten", func(t *testing.T) {
		conn.ExpectExec(statsQuery).WithArgs(10, 55, 4, 6, uid).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdateStats(ctx, uid, stats))
	})
	t.Run("stats of missing user", func(t *testing.T) {
		conn.ExpectExec(statsQuery).WithArgs(10, 55, 4, 6, uid).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.UpdateStats(ctx, uid, stats), errorvalues.ErrUserNotFound)
	})
	t.Run("role updated", func(t *testing.T) {
		conn.ExpectExec(roleQuery).WithArgs("admin", uid).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdateRole(ctx, uid, entity.RoleAdmin))
	})
	t.Run("profile without picture", func(t *testing.T) {
		conn.ExpectExec(profileQuery).WithArgs("new name", (*string)(nil), uid).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdateProfile(ctx, uid, "new name", nil))
	})
	t.Run("profile db error", func(t *testing.T) {
		conn.ExpectExec(profileQuery).WithArgs("new name", pgxmock.AnyArg(), uid).WillReturnError(errors.New("db error"))
		pic := "https://cdn/p.png"
		assert.EqualError(t, repo.UpdateProfile(ctx, uid, "new name", &pic), "updating user profile error: db error")
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepo(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc:  "deleted",
			Error: nil,
			MockPrepareFunc: func() {
				conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrUserNotFound,
			MockPrepareFunc: func() {
				conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("deleting user error: db error"),
			MockPrepareFunc: func() {
				conn.ExpectExec(query).WithArgs(uid).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			err := repo.Delete(context.Background(), uid)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
