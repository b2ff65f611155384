package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/limbo/discipline-tracker/internal/service"
	"github.com/limbo/discipline-tracker/pkg/entity"
	"github.com/limbo/discipline-tracker/pkg/httputil"
)

type CreateNoticeRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
}

type MarkReadRequest struct {
	NotificationID string `json:"notificationId"`
}

type SavePlannerRequest struct {
	Name      string            `json:"name"`
	Date      string            `json:"date"`
	TimeSlots []entity.TimeSlot `json:"timeSlots"`
}

func (s *Server) ListNotices(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	notices, err := s.noticeService.List(ctx)
	if err != nil {
		writeServiceError(w, logger, "listing notices", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"notices": notices})
}

// CreateNotice godoc
// @Summary Publish a notice and notify every user
// @Tags notices
// @Accept json
// @Produce json
// @Param body body CreateNoticeRequest true "notice"
// @Success 201 {object} map[string]string
// @Failure 403 {object} httputil.ErrorResponse
// @Router /notices [post]
func (s *Server) CreateNotice(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("notice creation error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateNoticeRequest
	if err = httputil.DecodeJSON(r.Body, &req); err != nil {
		logger.Error("notice creation error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	id, err := s.noticeService.Create(ctx, uid, &service.CreateNoticeRequest{
		Title:    req.Title,
		Content:  req.Content,
		Priority: entity.NoticePriority(req.Priority),
	})
	if err != nil {
		writeServiceError(w, logger, "notice creation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"noticeId": id.String()})
	logger.Info("notice created", slog.String("notice_id", id.String()))
}

func (s *Server) DeleteNotice(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid notice id", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	if err = s.noticeService.Delete(ctx, id); err != nil {
		writeServiceError(w, logger, "notice deletion", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "notice deleted")
	logger.Info("notice deleted", slog.String("notice_id", id.String()))
}

func (s *Server) ListNotifications(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("notifications error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	notifications, err := s.notificationService.List(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "listing notifications", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"notifications": notifications})
}

func (s *Server) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("mark read error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req MarkReadRequest
	if err = httputil.DecodeJSON(r.Body, &req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	id, err := uuid.Parse(req.NotificationID)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid notification id", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	if err = s.notificationService.MarkRead(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "marking notification", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "notification marked as read")
}

func (s *Server) GetPlanner(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("planner error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date is required", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	planner, err := s.plannerService.Get(ctx, uid, date)
	if err != nil {
		writeServiceError(w, logger, "getting planner", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"planner": planner})
}

func (s *Server) SavePlanner(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("planner saving error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SavePlannerRequest
	if err = httputil.DecodeJSON(r.Body, &req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	err = s.plannerService.Save(ctx, uid, &service.SavePlannerRequest{
		Name:      req.Name,
		Date:      req.Date,
		TimeSlots: req.TimeSlots,
	})
	if err != nil {
		writeServiceError(w, logger, "saving planner", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "planner saved")
}
