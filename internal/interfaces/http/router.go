// Package http wires the Fiber routes to the application use cases. The route
// surface matches the SPA client: invoice CRUD plus send/render endpoints,
// singleton settings, login and JWT-protected profile routes, health checks.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/resonira/invoice-api/internal/application/auth"
	"github.com/resonira/invoice-api/internal/application/billing"
	appsettings "github.com/resonira/invoice-api/internal/application/settings"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	InvoiceUC   *billing.InvoiceUseCase
	SendUC      *billing.SendInvoiceUseCase
	SettingsUC  *appsettings.UseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
	BackendName string // storage backend label for the health report
	MailReady   bool
	Port        int
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Health
	healthHandler := NewHealthHandler(deps.InvoiceUC, deps.SettingsUC, deps.BackendName, deps.MailReady, deps.Port)
	api.Get("/health", healthHandler.Basic)
	api.Get("/health/full", healthHandler.Full)

	// Auth: login is public, profile routes require a Bearer token.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	profile := authGroup.Group("/profile", AuthMiddleware(deps.JWTSecret))
	profile.Get("/:id", authHandler.GetProfile)
	profile.Put("/:id", authHandler.UpdateProfile)

	// Invoices. Literal routes are registered before /:id so they are not
	// swallowed by the parameter match.
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.SendUC)
	invoices.Get("/email/status", invoiceHandler.EmailStatus)
	invoices.Post("/send-direct", invoiceHandler.SendDirect)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Post("/:id/send", invoiceHandler.Send)

	// Settings (singleton)
	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
}
