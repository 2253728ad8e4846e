package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/tostadas-valencia/case-service/internal/api/http/handlers"
	"github.com/tostadas-valencia/case-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Users     *handlers.UsersHandler
	Cases     *handlers.CasesHandler
	Assignees *handlers.AssigneesHandler
	Metrics   *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	app.Get("/users", cfg.Users.List)
	app.Get("/users/:email", cfg.Users.GetByEmail)
	app.Get("/user/id/:id", cfg.Users.GetByID)
	app.Post("/users", cfg.Users.Create)

	app.Get("/cases", cfg.Cases.List)
	app.Get("/cases/:id", cfg.Cases.GetByID)
	app.Get("/cases/user/:id", cfg.Cases.ListByAuthorID)
	app.Get("/cases/user/email/:email", cfg.Cases.ListByAuthorEmail)
	app.Get("/cases/ticket/:ticket", cfg.Cases.GetByTicket)
	app.Post("/cases", cfg.Cases.Create)

	app.Get("/assignee/:id", cfg.Assignees.GetByID)
	app.Get("/assignee/user/:id", cfg.Assignees.GetByUser)
	app.Get("/assignee/case/:id", cfg.Assignees.GetByCase)
	app.Get("/assignee/case/ticket/:ticket", cfg.Assignees.GetByCaseTicket)
	app.Get("/assignee/user/:userId/case/:caseId", cfg.Assignees.GetByUserAndCase)
}
