package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the ISO calendar date used as the grouping key of task records.
const DateLayout = "2006-01-02"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole accepts only the two known roles.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	ProfilePicture *string   `json:"profile_picture"`
	Stats          Stats     `json:"stats"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Stats is the derived streak snapshot. It is cached on the user row and
// recomputed from the full task history whenever it is requested.
type Stats struct {
	TotalDays     int `json:"total_days"`
	SuccessRate   int `json:"success_rate"`
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

type TaskRecord struct {
	UserID    uuid.UUID `json:"uid"`
	TaskID    TaskKind  `json:"task_id"`
	Date      string    `json:"date"`
	Completed bool      `json:"completed"`
	TextInput string    `json:"text_input"`
	Notes     string    `json:"notes"`
	Files     []string  `json:"files"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NoticePriority string

const (
	PriorityNormal    NoticePriority = "normal"
	PriorityImportant NoticePriority = "important"
	PriorityUrgent    NoticePriority = "urgent"
)

type Notice struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Priority  NoticePriority `json:"priority"`
	CreatedBy uuid.UUID      `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	Active    bool           `json:"active"`
	DeletedAt *time.Time     `json:"deleted_at,omitempty"`
}

type NotificationType string

const (
	NotificationWarning NotificationType = "warning"
	NotificationNotice  NotificationType = "notice"
)

type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"uid"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title,omitempty"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	NoticeID  *uuid.UUID       `json:"notice_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

type TimeSlot struct {
	Time      string `json:"time"`
	Task      string `json:"task"`
	Notes     string `json:"notes"`
	Completed bool   `json:"completed"`
}

type DailyPlanner struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"uid"`
	Name      string     `json:"name"`
	Date      string     `json:"date"`
	TimeSlots []TimeSlot `json:"time_slots"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
