package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/internal/service"
	"github.com/limbo/discipline-tracker/pkg/httputil"
)

const maxMultipartMemory = 32 << 20

func (s *Server) Profile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

// UpdateProfile takes multipart form with "name" and optional "profilePicture".
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("profile update error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	if err = r.ParseMultipartForm(maxMultipartMemory); err != nil {
		logger.Error("profile update error: invalid form", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}
	req := service.UpdateProfileRequest{Name: r.FormValue("name")}
	picture, header, err := r.FormFile("profilePicture")
	if err == nil {
		defer picture.Close()
		if header.Size > 0 {
			req.Picture = picture
		}
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	user, err := s.userService.UpdateProfile(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "profile update", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("profile updated")
}

// UserStats godoc
// @Summary Recompute caller's streak statistics
// @Tags user
// @Produce json
// @Success 200 {object} map[string]entity.Stats
// @Router /user/stats [get]
func (s *Server) UserStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	snapshot, err := s.statsService.UserStats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "computing stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"stats": snapshot})
}

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("dashboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	dashboard, err := s.dashboardService.Dashboard(ctx, uid, r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, logger, "building dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dashboard)
}

// Leaderboard godoc
// @Summary Every user ranked by success rate, current and longest streak
// @Tags leaderboard
// @Produce json
// @Success 200 {object} map[string][]stats.LeaderboardEntry
// @Router /leaderboard [get]
func (s *Server) Leaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	board, err := s.statsService.Leaderboard(ctx)
	if err != nil {
		writeServiceError(w, logger, "building leaderboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"leaderboard": board})
}

// targetUser resolves the optional userId query parameter. Only admins may
// read another user's records.
func targetUser(r *http.Request, self uuid.UUID) (uuid.UUID, error) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		return self, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errorvalues.ErrValidation
	}
	if id != self && !IsAdmin(r) {
		return uuid.Nil, errorvalues.ErrForbidden
	}
	return id, nil
}
