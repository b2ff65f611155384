package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/limbo/discipline-tracker/internal/service"
	"github.com/limbo/discipline-tracker/pkg/httputil"
)

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

type SendWarningRequest struct {
	UserID string `json:"userId"`
	TaskID string `json:"taskId"`
	Date   string `json:"date"`
}

func (s *Server) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	users, err := s.userService.ListWithRecentTasks(ctx)
	if err != nil {
		writeServiceError(w, logger, "listing users", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"users": users})
}

// AdminChangeRole godoc
// @Summary Change role of another user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "user id"
// @Param body body ChangeRoleRequest true "new role"
// @Success 200 {object} httputil.MessageResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Router /admin/users/{id} [patch]
func (s *Server) AdminChangeRole(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	target, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	var req ChangeRoleRequest
	if err = httputil.DecodeJSON(r.Body, &req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	if err = s.userService.ChangeRole(ctx, actor, target, req.Role); err != nil {
		writeServiceError(w, logger, "changing role", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "role updated")
	logger.Info("role changed", slog.String("target", target.String()), slog.String("role", req.Role))
}

func (s *Server) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	target, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	if err = s.userService.DeleteUser(ctx, actor, target); err != nil {
		writeServiceError(w, logger, "deleting user", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "user deleted")
	logger.Info("user deleted", slog.String("target", target.String()))
}

func (s *Server) AdminSendWarning(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SendWarningRequest
	if err := httputil.DecodeJSON(r.Body, &req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	err = s.notificationService.SendWarning(ctx, &service.SendWarningRequest{
		UserID: userID,
		TaskID: req.TaskID,
		Date:   req.Date,
	})
	if err != nil {
		writeServiceError(w, logger, "sending warning", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "warning sent")
}
