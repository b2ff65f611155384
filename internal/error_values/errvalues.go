package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrForbidden        = errors.New("admin access required")
	ErrSelfModification = errors.New("admins cannot change or delete their own account")
	ErrInvalidRole      = errors.New("invalid role")

	ErrTaskNotFound    = errors.New("task record doesn't exist")
	ErrUnknownTask     = errors.New("unknown task kind")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidAction   = errors.New("unknown task update action")
	ErrImageIndex      = errors.New("image index out of range")
	ErrNoticeNotFound  = errors.New("notice doesn't exist")
	ErrPlannerNotFound = errors.New("daily planner doesn't exist")

	ErrNotificationNotFound = errors.New("notification doesn't exist")
	ErrValidation           = errors.New("validation error")
)
