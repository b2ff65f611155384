package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/limbo/discipline-tracker/internal/api"
	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/internal/repository"
	"github.com/limbo/discipline-tracker/internal/service"
	"github.com/limbo/discipline-tracker/internal/service/mocks"
	"github.com/limbo/discipline-tracker/pkg/entity"
	jwtservice "github.com/limbo/discipline-tracker/pkg/jwt_service"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	username = "test_name"
	email    = "test@example.com"
	password = "test_password"
	uid      = uuid.New()
	secret   = "secret"
)

// withUser puts the values AuthMiddleware would have stored.
func withUser(r *http.Request, id uuid.UUID, role entity.Role) *http.Request {
	ctx := context.WithValue(r.Context(), "User-ID", id)
	ctx = context.WithValue(ctx, "User-Role", role)
	return r.WithContext(ctx)
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:     username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	expectedReq := &service.RegisterRequest{Name: username, Email: email, Password: password}

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         []byte
	}{
		{
			Desc:         "registered",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expectedReq).Return(&entity.User{ID: uid, Name: username}, nil)
			},
			Body: body,
		},
		{
			Desc:         "email taken",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expectedReq).Return(nil, errorvalues.ErrUserExists)
			},
			Body: body,
		},
		{
			Desc:         "validation error",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expectedReq).Return(nil, errorvalues.ErrValidation)
			},
			Body: body,
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expectedReq).Return(nil, errors.New("service error"))
			},
			Body: body,
		},
		{
			Desc:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         []byte("corrupted"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(tc.Body))
			serv.Register(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtservice.New(secret, time.Hour),
	})
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{Email: email, Password: password})
	require.NoError(t, err)

	t.Run("logged in", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), email, password).Return(&entity.User{ID: uid, Email: email, Role: entity.RoleUser}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		serv.Login(rr, r)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)

		var resp api.LoginResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, uid, resp.User.ID)

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "token", cookies[0].Name)
		assert.Equal(t, resp.Token, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, int(time.Hour.Seconds()), cookies[0].MaxAge)
	})
	t.Run("wrong credentials", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), email, password).Return(nil, errorvalues.ErrWrongCredentials)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		serv.Login(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), email, password).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		serv.Login(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("missing password", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte(`{"email":"a@b.c"}`)))
		serv.Login(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestLogoutAndVerify(t *testing.T) {
	jwtService := jwtservice.New(secret, time.Hour)
	serv := api.New(&api.ServicesList{JwtService: jwtService})
	token, err := jwtService.GenerateToken(&entity.User{ID: uid, Email: email, Role: entity.RoleUser})
	require.NoError(t, err)

	t.Run("logout clears cookie", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Logout(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "", cookies[0].Value)
		assert.Less(t, cookies[0].MaxAge, 0)
	})
	t.Run("valid cookie", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/auth/verify", nil)
		r.AddCookie(&http.Cookie{Name: "token", Value: token})
		serv.Verify(rr, r)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.VerifyResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, uid.String(), resp.UserID)
	})
	t.Run("tampered token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/auth/verify", nil)
		r.Header.Set("Authorization", "Bearer "+token+"x")
		serv.Verify(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("no token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Verify(rr, httptest.NewRequest(http.MethodGet, "/api/v1/auth/verify", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": "` + uid.String() + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	jwtService := jwtservice.New(secret, time.Hour)
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtService,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	adminOnly := serv.AuthMiddleware(serv.RequireAdminMiddleware(http.HandlerFunc(testHandler)))

	// Token still says "user": the stored role must win.
	token, err := jwtService.GenerateToken(&entity.User{ID: uid, Email: email, Role: entity.RoleUser})
	require.NoError(t, err)

	t.Run("header token", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Role: entity.RoleUser}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("cookie token", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Role: entity.RoleUser}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		r.AddCookie(&http.Cookie{Name: "token", Value: token})
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("deleted user", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("no token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/endpoint", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("malformed header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		r.Header.Set("Authorization", "Token "+token)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("admin gate rejects user", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Role: entity.RoleUser}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		adminOnly.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
	t.Run("admin gate passes promoted user", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Role: entity.RoleAdmin}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		adminOnly.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
}

func TestRequestID(t *testing.T) {
	serv := api.New(&api.ServicesList{})
	rr := httptest.NewRecorder()
	serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/catalog", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	_, err := uuid.Parse(rr.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
}

func TestProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{UserService: uService})

	t.Run("found", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Name: username}, nil)
		rr := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/user/profile", nil), uid, entity.RoleUser)
		serv.Profile(rr, r)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var user entity.User
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&user))
		assert.Equal(t, username, user.Name)
	})
	t.Run("not found", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/user/profile", nil), uid, entity.RoleUser)
		serv.Profile(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("no uid", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Profile(rr, httptest.NewRequest(http.MethodGet, "/api/v1/user/profile", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestUserStatsAndLeaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStatsServiceI(ctrl)
	serv := api.New(&api.ServicesList{StatsService: sService})

	t.Run("stats", func(t *testing.T) {
		sService.EXPECT().UserStats(gomock.Any(), uid).Return(entity.Stats{TotalDays: 3, SuccessRate: 67, CurrentStreak: 2, LongestStreak: 2}, nil)
		rr := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/user/stats", nil), uid, entity.RoleUser)
		serv.UserStats(rr, r)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp struct {
			Stats entity.Stats `json:"stats"`
		}
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 67, resp.Stats.SuccessRate)
	})
	t.Run("leaderboard error", func(t *testing.T) {
		sService.EXPECT().Leaderboard(gomock.Any()).Return(nil, errors.New("db down"))
		rr := httptest.NewRecorder()
		serv.Leaderboard(rr, httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestUsersHandlersIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	cfg := setupTestDB(t)
	pool, err := repository.Connect(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	usersRepo := repository.NewUsersRepo(pool)
	tasksRepo := repository.NewTasksRepo(pool)
	serv := api.New(&api.ServicesList{
		UserService:  service.NewUserService(usersRepo, tasksRepo, nil),
		StatsService: service.NewStatsService(usersRepo, tasksRepo, nil),
		JwtService:   jwtservice.New(secret, time.Hour),
	})
	handler := serv.Handler()
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{Name: username, Email: email, Password: password})
	require.NoError(t, err)

	var token string
	t.Run("registered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body)))
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("duplicate email", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body)))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("logged in", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.LoginResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		token = resp.Token
		assert.Equal(t, entity.RoleUser, resp.User.Role)
	})
	t.Run("wrong password", func(t *testing.T) {
		wrong, _ := sonic.ConfigDefault.Marshal(api.LoginRequest{Email: email, Password: password + "1"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(wrong)))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("profile with token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/user/profile", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, r)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var user entity.User
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&user))
		assert.Equal(t, email, user.Email)
	})
	t.Run("stats of empty history", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/user/stats", nil)
		r.AddCookie(&http.Cookie{Name: "token", Value: token})
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("admin route as user", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("discipline"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
