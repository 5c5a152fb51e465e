package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/placement-service/internal/api/http/handlers"
	"github.com/spec-kit/placement-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Jobs           *handlers.JobsHandler
	Applications   *handlers.ApplicationsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	authn := cfg.AuthMiddleware.Handle

	api.Get("/jobs", authn, auth.RequirePermission(auth.OpListJobs), cfg.Jobs.List)
	api.Get("/jobs/:id", authn, auth.RequirePermission(auth.OpGetJob), cfg.Jobs.Get)
	api.Post("/jobs", authn, auth.RequirePermission(auth.OpCreateJob), cfg.Jobs.Create)

	api.Get("/applications", authn, auth.RequirePermission(auth.OpListApplications), cfg.Applications.List)
	api.Post("/applications", authn, auth.RequirePermission(auth.OpCreateApplication), cfg.Applications.Create)
	api.Patch("/applications/:id/status", authn, auth.RequirePermission(auth.OpUpdateApplicationStatus), cfg.Applications.UpdateStatus)

	api.Get("/stats", authn, auth.RequirePermission(auth.OpViewStats), cfg.Admin.Stats)
	api.Patch("/employers/:id/approval", authn, auth.RequirePermission(auth.OpSetEmployerApproval), cfg.Admin.SetEmployerApproval)
}
