// @title Discipline tracker API
// @description Daily discipline rules, streak statistics and leaderboard
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/limbo/discipline-tracker/docs"
	"github.com/limbo/discipline-tracker/internal/api"
	"github.com/limbo/discipline-tracker/internal/repository"
	"github.com/limbo/discipline-tracker/internal/service"
	"github.com/limbo/discipline-tracker/internal/stats"
	"github.com/limbo/discipline-tracker/pkg/blobstore"
	"github.com/limbo/discipline-tracker/pkg/cleanup"
	"github.com/limbo/discipline-tracker/pkg/config"
	jwtservice "github.com/limbo/discipline-tracker/pkg/jwt_service"
	"github.com/pressly/goose"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(newLogger(cfg))
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool, err := repository.Connect(ctx, &dbCfg)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.GetBool("MIGRATE_ON_START", false) {
		if err = migrate(pool, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
			log.Fatal(err)
		}
	}

	blobs, err := blobstore.NewCloudinary(blobstore.CloudinaryCfg{
		CloudName: cfg.GetString("CLOUDINARY_CLOUD_NAME"),
		APIKey:    cfg.GetString("CLOUDINARY_API_KEY"),
		APISecret: cfg.GetString("CLOUDINARY_API_SECRET"),
	})
	if err != nil {
		log.Fatal(err)
	}

	policy := stats.DistinctDates
	if cfg.GetBool("STREAK_CALENDAR_DAYS", false) {
		policy = stats.CalendarDays
	}
	engine := stats.NewEngine(policy)

	usersRepo := repository.NewUsersRepo(pool)
	tasksRepo := repository.NewTasksRepo(pool)
	noticesRepo := repository.NewNoticesRepo(pool)
	notificationsRepo := repository.NewNotificationsRepo(pool)
	plannersRepo := repository.NewPlannersRepo(pool)

	statsService := service.NewStatsService(usersRepo, tasksRepo, engine)
	serv := api.New(&api.ServicesList{
		UserService:         service.NewUserService(usersRepo, tasksRepo, blobs),
		TaskService:         service.NewTaskService(tasksRepo, blobs),
		StatsService:        statsService,
		DashboardService:    service.NewDashboardService(statsService, tasksRepo, notificationsRepo),
		NoticeService:       service.NewNoticeService(noticesRepo, notificationsRepo),
		NotificationService: service.NewNotificationService(notificationsRepo),
		PlannerService:      service.NewPlannerService(plannersRepo),
		JwtService:          jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", jwtservice.DefaultTTL)),
		CookieSecure:        cfg.GetBool("COOKIE_SECURE", false),
	})
	if err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}

func migrate(pool *pgxpool.Pool, dir string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, dir)
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.GetString("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(cfg.GetString("LOG_FORMAT")) == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
