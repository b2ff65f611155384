package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/internal/service"
	"github.com/limbo/discipline-tracker/pkg/entity"
	"github.com/limbo/discipline-tracker/pkg/httputil"
)

const requestTimeout = 10 * time.Second

func contextWithTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

type VerifyResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"uid,omitempty"`
}

// writeServiceError maps sentinel errors to statuses. Anything unknown is
// logged and reported as an internal error without details.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var status int
	switch {
	case errors.Is(err, errorvalues.ErrValidation),
		errors.Is(err, errorvalues.ErrInvalidDate),
		errors.Is(err, errorvalues.ErrInvalidAction),
		errors.Is(err, errorvalues.ErrImageIndex),
		errors.Is(err, errorvalues.ErrUnknownTask),
		errors.Is(err, errorvalues.ErrInvalidRole),
		errors.Is(err, errorvalues.ErrSelfModification):
		status = http.StatusBadRequest
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, errorvalues.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errorvalues.ErrUserNotFound),
		errors.Is(err, errorvalues.ErrTaskNotFound),
		errors.Is(err, errorvalues.ErrNoticeNotFound),
		errors.Is(err, errorvalues.ErrNotificationNotFound),
		errors.Is(err, errorvalues.ErrPlannerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errorvalues.ErrUserExists):
		status = http.StatusConflict
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
		return
	}
	logger.Error(op+" error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, status, op+" failed", err)
}

// Register godoc
// @Summary Register new user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "credentials"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Router /auth/register [post]
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := httputil.DecodeJSON(r.Body, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, logger, "registration", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

// Login godoc
// @Summary Log in and receive token and auth cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.DecodeJSON(r.Body, &req); err != nil || req.Email == "" || req.Password == "" {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "email and password are required", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		logger.Error("login error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.jwtService.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.WriteJSONResponse(w, http.StatusOK, LoginResponse{User: user, Token: token})
	logger.Info("successful login", slog.String("uid", user.ID.String()))
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.WriteMessage(w, http.StatusOK, "logged out")
}

// Verify checks the token signature and lifetime only.
func (s *Server) Verify(w http.ResponseWriter, r *http.Request) {
	tokenString, err := GetTokenFromRequest(r)
	if err != nil {
		httputil.WriteJSONResponse(w, http.StatusUnauthorized, VerifyResponse{Valid: false})
		return
	}
	claims, err := s.jwtService.ParseToken(tokenString)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Info("token verification failed", slog.String("error", err.Error()))
		httputil.WriteJSONResponse(w, http.StatusUnauthorized, VerifyResponse{Valid: false})
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, VerifyResponse{Valid: true, UserID: claims.UserID})
}
