package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wexa-dev/studio-api/internal/api/http/handlers"
	"github.com/wexa-dev/studio-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Support        *handlers.SupportHandler
	Projects       *handlers.ProjectsHandler
	Invoices       *handlers.InvoicesHandler
	Services       *handlers.ServicesHandler
	Portfolio      *handlers.PortfolioHandler
	Settings       *handlers.SettingsHandler
	Contact        *handlers.ContactHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Public marketing surface.
	app.Get("/services", cfg.Services.ListServices)
	app.Get("/portfolio", cfg.Portfolio.ListPortfolio)
	app.Post("/contact", cfg.Contact.Submit)
	app.Get("/settings", cfg.AuthMiddleware.Optional, cfg.Settings.GetSettings)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Users.Me)

	users := authGroup.Group("/users", cfg.AuthMiddleware.Handle)
	users.Get("/", auth.RequireAdmin(), cfg.Users.ListUsers)
	users.Put("/:id", cfg.Users.UpdateUser)
	users.Delete("/:id", auth.RequireAdmin(), cfg.Users.DeleteUser)

	projects := app.Group("/projects", cfg.AuthMiddleware.Handle)
	projects.Get("/", cfg.Projects.ListProjects)
	projects.Post("/", auth.RequireAdmin(), cfg.Projects.CreateProject)
	projects.Put("/:id", auth.RequireAdmin(), cfg.Projects.UpdateProject)
	projects.Delete("/:id", auth.RequireAdmin(), cfg.Projects.DeleteProject)
	projects.Post("/:id/comments", cfg.Projects.AddComment)
	projects.Post("/:id/attachments", auth.RequireAdmin(), cfg.Projects.AddAttachment)
	projects.Delete("/:id/attachments/:attachmentId", auth.RequireAdmin(), cfg.Projects.DeleteAttachment)

	invoices := app.Group("/invoices", cfg.AuthMiddleware.Handle)
	invoices.Get("/", cfg.Invoices.ListInvoices)
	invoices.Post("/", auth.RequireAdmin(), cfg.Invoices.CreateInvoice)
	invoices.Put("/:id", cfg.Invoices.UpdateInvoice)
	invoices.Delete("/:id", auth.RequireAdmin(), cfg.Invoices.DeleteInvoice)

	services := app.Group("/services", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	services.Post("/", cfg.Services.CreateService)
	services.Put("/:id", cfg.Services.UpdateService)
	services.Delete("/:id", cfg.Services.DeleteService)

	portfolio := app.Group("/portfolio", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	portfolio.Post("/", cfg.Portfolio.CreatePortfolioItem)
	portfolio.Put("/:id", cfg.Portfolio.UpdatePortfolioItem)
	portfolio.Delete("/:id", cfg.Portfolio.DeletePortfolioItem)

	app.Post("/settings", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Settings.UpsertSetting)

	support := app.Group("/support", cfg.AuthMiddleware.Handle)
	support.Get("/", cfg.Support.ListTickets)
	support.Post("/", cfg.Support.CreateTicket)
	support.Post("/:id/messages", cfg.Support.AddMessage)
	support.Put("/:id/close", cfg.Support.CloseTicket)
}
