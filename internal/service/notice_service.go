package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/internal/repository"
	"github.com/limbo/discipline-tracker/pkg/entity"
)

const (
	noticesLimit       = 50
	notificationsLimit = 50
	noticeTitle        = "New Notice"
)

type NoticeService struct {
	notices       repository.NoticesRepositoryI
	notifications repository.NotificationsRepositoryI
}

func NewNoticeService(noticesRepo repository.NoticesRepositoryI, notificationsRepo repository.NotificationsRepositoryI) *NoticeService {
	return &NoticeService{
		notices:       noticesRepo,
		notifications: notificationsRepo,
	}
}

func (ns *NoticeService) List(ctx context.Context) ([]*entity.Notice, error) {
	notices, err := ns.notices.ListActive(ctx, noticesLimit)
	if err != nil {
		return nil, fmt.Errorf("repository listing notices error: %w", err)
	}
	return notices, nil
}

func (ns *NoticeService) Create(ctx context.Context, author uuid.UUID, req *CreateNoticeRequest) (uuid.UUID, error) {
	if err := validateStruct(req); err != nil {
		return uuid.Nil, err
	}
	priority := req.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}
	id, err := ns.notices.Create(ctx, &entity.Notice{
		Title:     req.Title,
		Content:   req.Content,
		Priority:  priority,
		CreatedBy: author,
		Active:    true,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("repository creating notice error: %w", err)
	}
	_, err = ns.notifications.Broadcast(ctx, &entity.Notification{
		Type:     entity.NotificationNotice,
		Title:    noticeTitle,
		Message:  "📢 " + req.Title,
		NoticeID: &id,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("repository broadcasting notice error: %w", err)
	}
	return id, nil
}

func (ns *NoticeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ns.notices.Deactivate(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrNoticeNotFound) {
			return err
		}
		return fmt.Errorf("repository deleting notice error: %w", err)
	}
	return nil
}

type NotificationService struct {
	repo repository.NotificationsRepositoryI
}

func NewNotificationService(notificationsRepo repository.NotificationsRepositoryI) *NotificationService {
	return &NotificationService{
		repo: notificationsRepo,
	}
}

func (ns *NotificationService) List(ctx context.Context, uid uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := ns.repo.ListByUser(ctx, uid, notificationsLimit)
	if err != nil {
		return nil, fmt.Errorf("repository listing notifications error: %w", err)
	}
	return notifications, nil
}

func (ns *NotificationService) MarkRead(ctx context.Context, uid, id uuid.UUID) error {
	if err := ns.repo.MarkRead(ctx, id, uid); err != nil {
		if errors.Is(err, errorvalues.ErrNotificationNotFound) {
			return err
		}
		return fmt.Errorf("repository marking notification error: %w", err)
	}
	return nil
}

func (ns *NotificationService) SendWarning(ctx context.Context, req *SendWarningRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	err := ns.repo.Create(ctx, &entity.Notification{
		UserID: req.UserID,
		Type:   entity.NotificationWarning,
		Message: fmt.Sprintf(
			"Warning: You have not completed the %s task for %s. Please complete it to maintain your streak.",
			req.TaskID, req.Date,
		),
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("repository creating warning error: %w", err)
	}
	return nil
}
