package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/discipline-tracker/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	taskService         service.TaskServiceI
	statsService        service.StatsServiceI
	dashboardService    service.DashboardServiceI
	noticeService       service.NoticeServiceI
	notificationService service.NotificationServiceI
	plannerService      service.PlannerServiceI
	jwtService          JWTServiceI
	cookieSecure        bool
}

type ServicesList struct {
	UserService         service.UserServiceI
	TaskService         service.TaskServiceI
	StatsService        service.StatsServiceI
	DashboardService    service.DashboardServiceI
	NoticeService       service.NoticeServiceI
	NotificationService service.NotificationServiceI
	PlannerService      service.PlannerServiceI
	JwtService          JWTServiceI
	// Marks the auth cookie Secure. Enable behind TLS
	CookieSecure bool
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		taskService:         servicesOptions.TaskService,
		statsService:        servicesOptions.StatsService,
		dashboardService:    servicesOptions.DashboardService,
		noticeService:       servicesOptions.NoticeService,
		notificationService: servicesOptions.NotificationService,
		plannerService:      servicesOptions.PlannerService,
		jwtService:          servicesOptions.JwtService,
		cookieSecure:        servicesOptions.CookieSecure,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.RealIP, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, middleware.Recoverer)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
			r.Post("/logout", s.Logout)
			r.Get("/verify", s.Verify)
		})
		r.Get("/leaderboard", s.Leaderboard)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/user/profile", s.Profile)
			r.Post("/user/update", s.UpdateProfile)
			r.Get("/user/stats", s.UserStats)
			r.Get("/dashboard", s.Dashboard)

			r.Get("/tasks/catalog", s.TaskCatalog)
			r.Get("/tasks/daily", s.DailyTasks)
			r.Get("/tasks/month", s.MonthTasks)
			r.Post("/tasks/update", s.UpdateTask)

			r.Get("/notices", s.ListNotices)
			r.Get("/notifications", s.ListNotifications)
			r.Post("/notifications/mark-read", s.MarkNotificationRead)
			r.Get("/daily-planner", s.GetPlanner)
			r.Post("/daily-planner", s.SavePlanner)

			r.Group(func(r chi.Router) {
				r.Use(s.RequireAdminMiddleware)
				r.Post("/notices", s.CreateNotice)
				r.Delete("/notices/{id}", s.DeleteNotice)
				r.Get("/admin/users", s.AdminListUsers)
				r.Patch("/admin/users/{id}", s.AdminChangeRole)
				r.Delete("/admin/users/{id}", s.AdminDeleteUser)
				r.Post("/admin/send-warning", s.AdminSendWarning)
			})
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	slog.Info("server stopped")
	return nil
}
