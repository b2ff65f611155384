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

const userColumns = `id, name, email, password_hash, role, profile_picture,
	total_days, success_rate, current_streak, longest_streak, created_at, updated_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	var role string
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &role, &user.ProfilePicture,
		&user.Stats.TotalDays, &user.Stats.SuccessRate, &user.Stats.CurrentStreak, &user.Stats.LongestStreak,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Role = entity.Role(role)
	return &user, nil
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if user == nil {
		return uuid.Nil, errors.New("user is nil")
	}
	var id uuid.UUID
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id;`,
		user.Name, user.Email, user.PasswordHash)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return uuid.Nil, errorvalues.ErrUserExists
			}
		}
		return uuid.Nil, errors.New("creating user db error: " + err.Error())
	}
	return id, nil
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1;`, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by email error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := ur.conn.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at;`)
	if err != nil {
		return nil, errors.New("listing users error: " + err.Error())
	}
	defer rows.Close()
	users := make([]*entity.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, errors.New("unmarshalling user error: " + err.Error())
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning users: " + err.Error())
	}
	return users, nil
}

func (ur *UsersRepository) UpdateProfile(ctx context.Context, uid uuid.UUID, name string, picture *string) error {
	ct, err := ur.conn.Exec(ctx,
		`UPDATE users SET name = $1, profile_picture = COALESCE($2, profile_picture), updated_at = NOW() WHERE id = $3;`,
		name, picture, uid,
	)
	if err != nil {
		return errors.New("updating user profile error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateRole(ctx context.Context, uid uuid.UUID, role entity.Role) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2;`, string(role), uid)
	if err != nil {
		return errors.New("updating user role error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateStats(ctx context.Context, uid uuid.UUID, stats entity.Stats) error {
	ct, err := ur.conn.Exec(ctx,
		`UPDATE users SET total_days = $1, success_rate = $2, current_streak = $3, longest_streak = $4 WHERE id = $5;`,
		stats.TotalDays, stats.SuccessRate, stats.CurrentStreak, stats.LongestStreak, uid,
	)
	if err != nil {
		return errors.New("updating user stats error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
