package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/internal/repository"
	"github.com/limbo/discipline-tracker/internal/stats"
	"github.com/limbo/discipline-tracker/pkg/entity"
)

// StatsService is the single owner of the streak engine. Profile stats, the
// leaderboard and the dashboard all go through it.
type StatsService struct {
	users  repository.UsersRepositoryI
	tasks  repository.TasksRepositoryI
	engine *stats.Engine
}

func NewStatsService(usersRepo repository.UsersRepositoryI, tasksRepo repository.TasksRepositoryI, engine *stats.Engine) *StatsService {
	if engine == nil {
		engine = stats.NewEngine(stats.DistinctDates)
	}
	return &StatsService{
		users:  usersRepo,
		tasks:  tasksRepo,
		engine: engine,
	}
}

func (ss *StatsService) UserStats(ctx context.Context, uid uuid.UUID) (entity.Stats, error) {
	snapshot, err := ss.compute(ctx, uid)
	if err != nil {
		return entity.Stats{}, err
	}
	if err = ss.users.UpdateStats(ctx, uid, snapshot); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return entity.Stats{}, err
		}
		return entity.Stats{}, fmt.Errorf("repository caching stats error: %w", err)
	}
	return snapshot, nil
}

func (ss *StatsService) compute(ctx context.Context, uid uuid.UUID) (entity.Stats, error) {
	records, err := ss.tasks.ListByUser(ctx, uid)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("repository listing tasks error: %w", err)
	}
	return ss.engine.Compute(records), nil
}

func (ss *StatsService) Leaderboard(ctx context.Context) ([]stats.LeaderboardEntry, error) {
	users, err := ss.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository listing users error: %w", err)
	}
	records, err := ss.tasks.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository listing tasks error: %w", err)
	}
	return ss.engine.BuildLeaderboard(users, records), nil
}

type DashboardService struct {
	stats         *StatsService
	tasks         repository.TasksRepositoryI
	notifications repository.NotificationsRepositoryI
	now           func() time.Time
}

func NewDashboardService(statsService *StatsService, tasksRepo repository.TasksRepositoryI, notificationsRepo repository.NotificationsRepositoryI) *DashboardService {
	return &DashboardService{
		stats:         statsService,
		tasks:         tasksRepo,
		notifications: notificationsRepo,
		now:           time.Now,
	}
}

// Dashboard collects everything the home screen shows for one day. An empty
// date means today.
func (ds *DashboardService) Dashboard(ctx context.Context, uid uuid.UUID, date string) (*Dashboard, error) {
	if date == "" {
		date = ds.now().Format(entity.DateLayout)
	}
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	snapshot, err := ds.stats.UserStats(ctx, uid)
	if err != nil {
		return nil, err
	}
	records, err := ds.tasks.ListByUserAndRange(ctx, uid, date, date)
	if err != nil {
		return nil, fmt.Errorf("repository listing tasks error: %w", err)
	}
	unread, err := ds.notifications.CountUnread(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("repository counting notifications error: %w", err)
	}
	return &Dashboard{
		Date:        date,
		Stats:       snapshot,
		Tasks:       records,
		Catalog:     entity.Tasks,
		UnreadCount: unread,
	}, nil
}
