package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/limbo/discipline-tracker/internal/stats"
	"github.com/limbo/discipline-tracker/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,min=2,max=100"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=8,max=72"`
}

type UpdateProfileRequest struct {
	Name string `validate:"required,min=2,max=100"`
	// Picture is nil when the profile picture stays unchanged
	Picture io.Reader `validate:"-"`
}

type UserWithRecentTasks struct {
	*entity.User
	RecentTasks []entity.TaskRecord `json:"recent_tasks"`
}

type TaskAction string

const (
	ActionUpdateTask       TaskAction = "updateTask"
	ActionUpdateCompletion TaskAction = "updateCompletion"
	ActionDeleteImage      TaskAction = "deleteImage"
)

// Upload is one file of a multipart task update. Field is the form field it
// came from: new_file_N, or full_bottle_N / empty_bottle_N for hydration.
type Upload struct {
	Field   string
	Content io.Reader
}

type UpdateTaskRequest struct {
	TaskID           string     `validate:"required,task_kind"`
	Date             string     `validate:"required,iso_date"`
	Action           TaskAction `validate:"required,oneof=updateTask updateCompletion deleteImage"`
	Completed        bool
	TextInput        string   `validate:"max=10000"`
	Notes            string   `validate:"max=10000"`
	RemoveImageIndex int      `validate:"min=0"`
	Uploads          []Upload `validate:"-"`
}

type UpdateTaskResult struct {
	FilesCount int        `json:"filesCount"`
	Action     TaskAction `json:"action"`
}

type DayTasks struct {
	TotalTasks     int                 `json:"totalTasks"`
	CompletedTasks int                 `json:"completedTasks"`
	Tasks          []entity.TaskRecord `json:"tasks"`
}

type Dashboard struct {
	Date        string                  `json:"date"`
	Stats       entity.Stats            `json:"stats"`
	Tasks       []entity.TaskRecord     `json:"tasks"`
	Catalog     []entity.TaskDefinition `json:"catalog"`
	UnreadCount int                     `json:"unread_count"`
}

type CreateNoticeRequest struct {
	Title    string                `validate:"required,max=200"`
	Content  string                `validate:"required,max=10000"`
	Priority entity.NoticePriority `validate:"omitempty,oneof=normal important urgent"`
}

type SendWarningRequest struct {
	UserID uuid.UUID `validate:"required"`
	TaskID string    `validate:"required,task_kind"`
	Date   string    `validate:"required,iso_date"`
}

type SavePlannerRequest struct {
	Name      string            `validate:"max=100"`
	Date      string            `validate:"required,iso_date"`
	TimeSlots []entity.TimeSlot `validate:"required"`
}

type UserServiceI interface {
	// Validates request, hashes password and creates user with "user" role
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Renames user and replaces the picture when one is given
	UpdateProfile(ctx context.Context, uid uuid.UUID, req *UpdateProfileRequest) (*entity.User, error)
	// Admin view: every user with the 10 latest task records
	ListWithRecentTasks(ctx context.Context) ([]*UserWithRecentTasks, error)
	// actor cannot change own role
	ChangeRole(ctx context.Context, actor, target uuid.UUID, role string) error
	// actor cannot delete own account
	DeleteUser(ctx context.Context, actor, target uuid.UUID) error
}

type TaskServiceI interface {
	UpdateTask(ctx context.Context, uid uuid.UUID, req *UpdateTaskRequest) (*UpdateTaskResult, error)
	GetDaily(ctx context.Context, uid uuid.UUID, date string) ([]entity.TaskRecord, error)
	// Records of the month grouped by date
	GetMonth(ctx context.Context, uid uuid.UUID, year, month int) (map[string]*DayTasks, error)
}

type StatsServiceI interface {
	// Recomputes stats from the full history and caches them on the user
	UserStats(ctx context.Context, uid uuid.UUID) (entity.Stats, error)
	Leaderboard(ctx context.Context) ([]stats.LeaderboardEntry, error)
}

type DashboardServiceI interface {
	Dashboard(ctx context.Context, uid uuid.UUID, date string) (*Dashboard, error)
}

type NoticeServiceI interface {
	List(ctx context.Context) ([]*entity.Notice, error)
	// Creates notice and notifies every user about it
	Create(ctx context.Context, author uuid.UUID, req *CreateNoticeRequest) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationServiceI interface {
	List(ctx context.Context, uid uuid.UUID) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, uid, id uuid.UUID) error
	SendWarning(ctx context.Context, req *SendWarningRequest) error
}

type PlannerServiceI interface {
	// Returns nil planner without error when nothing is saved for the date
	Get(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyPlanner, error)
	Save(ctx context.Context, uid uuid.UUID, req *SavePlannerRequest) error
}

type BlobStore interface {
	Upload(ctx context.Context, content io.Reader, folder string) (string, error)
}
