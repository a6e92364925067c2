package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/workasana/workasana-be/internal/api/handlers"
	"github.com/workasana/workasana-be/internal/auth"
	"github.com/workasana/workasana-be/internal/services"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Tokens   *auth.TokenManager
	Users    services.UserServiceProvider
	Teams    services.TeamServiceProvider
	Projects services.ProjectServiceProvider
	Tags     services.TagServiceProvider
	Tasks    services.TaskServiceProvider
	Reports  services.ReportServiceProvider

	AllowedOrigin string
}

// NewRouter creates and configures a new Chi router. Auth coverage per
// route comes from the policy, not from the route tree.
func NewRouter(deps RouterDeps, policy RoutePolicy) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Tokens)
	userHandler := handlers.NewUserHandler(deps.Users)
	teamHandler := handlers.NewTeamHandler(deps.Teams)
	projectHandler := handlers.NewProjectHandler(deps.Projects)
	tagHandler := handlers.NewTagHandler(deps.Tags)
	taskHandler := handlers.NewTaskHandler(deps.Tasks)
	reportHandler := handlers.NewReportHandler(deps.Reports)

	requireAuth := auth.RequireAuth(deps.Tokens)
	guard := func(name string, h http.HandlerFunc) http.Handler {
		if policy.Guarded(name) {
			return requireAuth(h)
		}
		return h
	}

	r.Post("/auth/signup", authHandler.Signup)
	r.Post("/auth/login", authHandler.Login)

	r.Method(http.MethodGet, "/users", guard(RouteUsersList, userHandler.List))

	r.Method(http.MethodGet, "/teams", guard(RouteTeamsList, teamHandler.List))
	r.Method(http.MethodPost, "/teams", guard(RouteTeamsCreate, teamHandler.Create))
	r.Method(http.MethodGet, "/team/{teamId}", guard(RouteTeamsGet, teamHandler.Get))

	r.Method(http.MethodGet, "/projects", guard(RouteProjectsList, projectHandler.List))
	r.Method(http.MethodPost, "/projects", guard(RouteProjectsCreate, projectHandler.Create))
	r.Method(http.MethodGet, "/project/{projectId}", guard(RouteProjectsGet, projectHandler.Get))

	r.Method(http.MethodGet, "/tags", guard(RouteTagsList, tagHandler.List))
	r.Method(http.MethodPost, "/tags", guard(RouteTagsCreate, tagHandler.Create))

	r.Method(http.MethodGet, "/tasks", guard(RouteTasksList, taskHandler.List))
	r.Method(http.MethodPost, "/tasks", guard(RouteTasksCreate, taskHandler.Create))
	r.Method(http.MethodGet, "/task/{taskId}", guard(RouteTasksGet, taskHandler.Get))
	r.Method(http.MethodPost, "/task", guard(RouteTasksComplete, taskHandler.Complete))

	r.Method(http.MethodGet, "/report/closed-tasks", guard(RouteReportClosed, reportHandler.ClosedTasks))
	r.Method(http.MethodGet, "/report/pending", guard(RouteReportPending, reportHandler.Pending))
	r.Method(http.MethodGet, "/report/last-week", guard(RouteReportLastWeek, reportHandler.LastWeek))

	return r
}
