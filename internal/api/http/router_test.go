package http

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/wexa-dev/studio-api/internal/api/http/handlers"
	"github.com/wexa-dev/studio-api/internal/auth"
)

// Handlers are never invoked here, so nil services are fine.
func newRoutedApp() *fiber.App {
	app := fiber.New()
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("studio-api", "test", nil, nil),
		Users:          handlers.NewUsersHandler(nil),
		Support:        handlers.NewSupportHandler(nil),
		Projects:       handlers.NewProjectsHandler(nil),
		Invoices:       handlers.NewInvoicesHandler(nil),
		Services:       handlers.NewServicesHandler(nil),
		Portfolio:      handlers.NewPortfolioHandler(nil),
		Settings:       handlers.NewSettingsHandler(nil),
		Contact:        handlers.NewContactHandler(nil),
		AuthMiddleware: auth.NewMiddleware(nil, nil),
	})
	return app
}

func registeredRoutes(app *fiber.App) map[string]bool {
	routes := make(map[string]bool)
	for _, route := range app.GetRoutes() {
		path := route.Path
		if path != "/" {
			path = strings.TrimSuffix(path, "/")
		}
		routes[route.Method+" "+path] = true
	}
	return routes
}

func TestSupportRoutes(t *testing.T) {
	routes := registeredRoutes(newRoutedApp())

	for _, want := range []string{
		"GET /support",
		"POST /support",
		"POST /support/:id/messages",
		"PUT /support/:id/close",
	} {
		require.True(t, routes[want], "missing route %s", want)
	}
	require.False(t, routes["POST /support/:id/close"], "close is a PUT")
	require.False(t, routes["GET /support/tickets"], "tickets are rooted at /support")
}

func TestExternalRouteSurface(t *testing.T) {
	routes := registeredRoutes(newRoutedApp())

	for _, want := range []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /metrics",
		"GET /services",
		"GET /portfolio",
		"POST /contact",
		"GET /settings",
		"POST /settings",
		"POST /auth/register",
		"POST /auth/login",
		"GET /auth/me",
		"GET /auth/users",
		"PUT /auth/users/:id",
		"DELETE /auth/users/:id",
		"GET /projects",
		"POST /projects",
		"PUT /projects/:id",
		"DELETE /projects/:id",
		"POST /projects/:id/comments",
		"POST /projects/:id/attachments",
		"DELETE /projects/:id/attachments/:attachmentId",
		"GET /invoices",
		"POST /invoices",
		"PUT /invoices/:id",
		"DELETE /invoices/:id",
		"POST /services",
		"PUT /services/:id",
		"DELETE /services/:id",
		"POST /portfolio",
		"PUT /portfolio/:id",
		"DELETE /portfolio/:id",
	} {
		require.True(t, routes[want], "missing route %s", want)
	}
}
