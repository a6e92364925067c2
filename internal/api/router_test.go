package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workasana/workasana-be/internal/auth"
	"github.com/workasana/workasana-be/internal/database"
	"github.com/workasana/workasana-be/internal/models"
	"github.com/workasana/workasana-be/internal/services"
)

type testEnv struct {
	router *chi.Mux
	db     *sql.DB
	tokens *auth.TokenManager
	tasks  *services.TaskService
	users  *services.UserService
	teams  *services.TeamService
	projs  *services.ProjectService
	tags   *services.TagService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	env := &testEnv{
		db:     db,
		tokens: tokens,
		tasks:  services.NewTaskService(db),
		users:  services.NewUserService(db),
		teams:  services.NewTeamService(db),
		projs:  services.NewProjectService(db),
		tags:   services.NewTagService(db),
	}
	env.router = NewRouter(RouterDeps{
		Tokens:        tokens,
		Users:         env.users,
		Teams:         env.teams,
		Projects:      env.projs,
		Tags:          env.tags,
		Tasks:         env.tasks,
		Reports:       services.NewReportService(db),
		AllowedOrigin: "http://localhost:3000",
	}, DefaultRoutePolicy())
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = e.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestSignupValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/signup", "", map[string]string{"name": "Ada"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "hunter22",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ada@example.com", body["email"])
	assert.NotContains(t, body, "password")

	// Same email again conflicts.
	rec = env.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name": "Ada Again", "email": "ada@example.com", "password": "other",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	rec := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "ada@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "ghost@example.com", "password": "hunter22",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGuardedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/teams", "/projects", "/users", "/tasks", "/tags", "/report/closed-tasks"} {
		rec := env.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	token := env.login(t)
	rec := env.do(t, http.MethodGet, "/teams", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOpenRoutesPolicy(t *testing.T) {
	env := newTestEnv(t)

	// Tag creation has always been open.
	rec := env.do(t, http.MethodPost, "/tags", "", map[string]string{"name": "urgent"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// So has the pending report; with no tasks at all it is a 404.
	rec = env.do(t, http.MethodGet, "/report/pending", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskLifecycleAndReports(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	team, err := env.teams.CreateTeam("Alpha", "")
	require.NoError(t, err)
	project, err := env.projs.CreateProject("Atlas", "")
	require.NoError(t, err)
	users, err := env.users.ListUsers()
	require.NoError(t, err)
	require.NotEmpty(t, users)

	// Closed report with no completed tasks is a 404, not an empty list.
	rec := env.do(t, http.MethodGet, "/report/closed-tasks", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPost, "/tasks", token, models.TaskInput{
		Name:           "Ship it",
		Project:        project.ID,
		Team:           team.ID,
		Owners:         []string{users[0].ID},
		TimeToComplete: 5,
		Status:         models.StatusTodo,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Task
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "Atlas", created.Project.Name)

	// Pending report now has one project at 5 remaining days.
	rec = env.do(t, http.MethodGet, "/report/pending", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pending []models.ProjectPendingDays
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&pending))
	require.Len(t, pending, 1)
	assert.Equal(t, "Atlas", pending[0].Project)
	assert.Equal(t, 5, pending[0].RemainingDaysToClose)

	// Complete the task and check the closed rollup.
	rec = env.do(t, http.MethodPost, "/task", token, map[string]string{"taskId": created.ID})
	require.Equal(t, http.StatusOK, rec.Code)
	var completed models.Task
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&completed))
	assert.Equal(t, models.StatusCompleted, completed.Status)

	rec = env.do(t, http.MethodGet, "/report/closed-tasks", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var closed []models.TeamClosedCount
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&closed))
	require.Len(t, closed, 1)
	assert.Equal(t, models.TeamClosedCount{Name: "Alpha", CompletedTasks: 1}, closed[0])

	// The pending report no longer has data.
	rec = env.do(t, http.MethodGet, "/report/pending", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskCreateMissingFields(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/tasks", token, map[string]string{"name": "incomplete"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTeamEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/teams", token, map[string]string{"name": "Alpha", "description": "crew"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var team models.Team
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&team))

	rec = env.do(t, http.MethodPost, "/teams", token, map[string]string{"name": "Alpha"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodPost, "/teams", token, map[string]string{"description": "nameless"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/team/"+team.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/team/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
