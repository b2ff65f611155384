package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/discipline-tracker/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database. ID, role and timestamps are filled by the database
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by email. Used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Used by authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Lists every user ordered by creation time
	List(ctx context.Context) ([]*entity.User, error)
	// Updates display name and, when picture is not nil, the profile picture
	UpdateProfile(ctx context.Context, uid uuid.UUID, name string, picture *string) error
	UpdateRole(ctx context.Context, uid uuid.UUID, role entity.Role) error
	// Overwrites the cached stats snapshot
	UpdateStats(ctx context.Context, uid uuid.UUID, stats entity.Stats) error
	// Deletes user with all owned records
	Delete(ctx context.Context, uid uuid.UUID) error
}

type TasksRepositoryI interface {
	// Inserts or replaces the record identified by (user, task, date)
	Upsert(ctx context.Context, rec *entity.TaskRecord) error
	Get(ctx context.Context, uid uuid.UUID, taskID entity.TaskKind, date string) (*entity.TaskRecord, error)
	// Full history of one user
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.TaskRecord, error)
	// Records of one user between from and to inclusive (ISO date strings)
	ListByUserAndRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.TaskRecord, error)
	// Latest records of one user, newest date first
	ListRecentByUser(ctx context.Context, uid uuid.UUID, limit int) ([]entity.TaskRecord, error)
	// Every record of every user. Used by the leaderboard
	ListAll(ctx context.Context) ([]entity.TaskRecord, error)
}

type NoticesRepositoryI interface {
	Create(ctx context.Context, notice *entity.Notice) (uuid.UUID, error)
	// Active notices, newest first
	ListActive(ctx context.Context, limit int) ([]*entity.Notice, error)
	// Soft delete
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type NotificationsRepositoryI interface {
	Create(ctx context.Context, n *entity.Notification) error
	// Copies n to every existing user. Returns number of created notifications
	Broadcast(ctx context.Context, n *entity.Notification) (int64, error)
	ListByUser(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, uid uuid.UUID) (int, error)
	// Marks notification id as read if it belongs to uid
	MarkRead(ctx context.Context, id, uid uuid.UUID) error
}

type PlannersRepositoryI interface {
	Get(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyPlanner, error)
	// Inserts or replaces the planner identified by (user, date)
	Upsert(ctx context.Context, planner *entity.DailyPlanner) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
