package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/internal/repository"
	"github.com/limbo/discipline-tracker/pkg/entity"
)

const (
	taskFilesFolder     = "task-files"
	fullBottlesFolder   = "task-files/hydration/full"
	emptyBottlesFolder  = "task-files/hydration/empty"
	newFilePrefix       = "new_file_"
	fullBottlePrefix    = "full_bottle_"
	emptyBottlePrefix   = "empty_bottle_"
	lastDayOfMonthInKey = "31"
)

type TaskService struct {
	repo  repository.TasksRepositoryI
	blobs BlobStore
	now   func() time.Time
}

func NewTaskService(tasksRepo repository.TasksRepositoryI, blobs BlobStore) *TaskService {
	return &TaskService{
		repo:  tasksRepo,
		blobs: blobs,
		now:   time.Now,
	}
}

// UpdateTask applies one form submission to the (user, task, date) record.
// Existing files are kept; uploads are appended in form order, full bottles
// before empty ones. Uploads that fail are logged and skipped.
func (ts *TaskService) UpdateTask(ctx context.Context, uid uuid.UUID, req *UpdateTaskRequest) (*UpdateTaskResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	taskID := entity.TaskKind(req.TaskID)
	files := []string{}
	existing, err := ts.repo.Get(ctx, uid, taskID, req.Date)
	switch {
	case err == nil:
		files = append(files, existing.Files...)
	case errors.Is(err, errorvalues.ErrTaskNotFound):
	default:
		return nil, fmt.Errorf("repository getting task error: %w", err)
	}

	switch req.Action {
	case ActionDeleteImage:
		if req.RemoveImageIndex >= len(files) {
			return nil, errorvalues.ErrImageIndex
		}
		files = append(files[:req.RemoveImageIndex], files[req.RemoveImageIndex+1:]...)
	case ActionUpdateTask, ActionUpdateCompletion:
		files = append(files, ts.upload(ctx, taskID, req.Uploads)...)
	default:
		return nil, errorvalues.ErrInvalidAction
	}

	err = ts.repo.Upsert(ctx, &entity.TaskRecord{
		UserID:    uid,
		TaskID:    taskID,
		Date:      req.Date,
		Completed: req.Completed,
		TextInput: req.TextInput,
		Notes:     req.Notes,
		Files:     files,
		UpdatedAt: ts.now(),
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository upserting task error: %w", err)
	}
	return &UpdateTaskResult{FilesCount: len(files), Action: req.Action}, nil
}

func (ts *TaskService) upload(ctx context.Context, taskID entity.TaskKind, uploads []Upload) []string {
	type group struct {
		prefix string
		folder string
	}
	groups := []group{{prefix: newFilePrefix, folder: taskFilesFolder}}
	if taskID == entity.TaskHydration {
		groups = []group{
			{prefix: fullBottlePrefix, folder: fullBottlesFolder},
			{prefix: emptyBottlePrefix, folder: emptyBottlesFolder},
		}
	}
	urls := make([]string, 0, len(uploads))
	for _, g := range groups {
		for _, u := range uploads {
			if !strings.HasPrefix(u.Field, g.prefix) || u.Content == nil {
				continue
			}
			url, err := ts.blobs.Upload(ctx, u.Content, g.folder)
			if err != nil {
				slog.Warn("task file upload skipped",
					slog.String("task", string(taskID)),
					slog.String("field", u.Field),
					slog.String("error", err.Error()),
				)
				continue
			}
			urls = append(urls, url)
		}
	}
	return urls
}

func (ts *TaskService) GetDaily(ctx context.Context, uid uuid.UUID, date string) ([]entity.TaskRecord, error) {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	records, err := ts.repo.ListByUserAndRange(ctx, uid, date, date)
	if err != nil {
		return nil, fmt.Errorf("repository listing tasks error: %w", err)
	}
	return records, nil
}

// GetMonth selects YYYY-MM-01..YYYY-MM-31 by string comparison, so short
// months need no special casing.
func (ts *TaskService) GetMonth(ctx context.Context, uid uuid.UUID, year, month int) (map[string]*DayTasks, error) {
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: year and month are required", errorvalues.ErrValidation)
	}
	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	records, err := ts.repo.ListByUserAndRange(ctx, uid, prefix+"01", prefix+lastDayOfMonthInKey)
	if err != nil {
		return nil, fmt.Errorf("repository listing tasks error: %w", err)
	}
	days := make(map[string]*DayTasks)
	for _, rec := range records {
		d, ok := days[rec.Date]
		if !ok {
			d = &DayTasks{Tasks: []entity.TaskRecord{}}
			days[rec.Date] = d
		}
		d.TotalTasks++
		if rec.Completed {
			d.CompletedTasks++
		}
		d.Tasks = append(d.Tasks, rec)
	}
	return days, nil
}
