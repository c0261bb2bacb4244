package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/resonira/invoice-api/internal/application/billing"
	"github.com/resonira/invoice-api/internal/application/dto"
	appsettings "github.com/resonira/invoice-api/internal/application/settings"
)

// HealthHandler exposes liveness and a deeper storage/mail report.
type HealthHandler struct {
	invoiceUC  *billing.InvoiceUseCase
	settingsUC *appsettings.UseCase
	backend    string // "postgres" or "json-file-storage"
	mailReady  bool
	port       int
}

// NewHealthHandler builds the handler.
func NewHealthHandler(
	invoiceUC *billing.InvoiceUseCase,
	settingsUC *appsettings.UseCase,
	backend string,
	mailReady bool,
	port int,
) *HealthHandler {
	return &HealthHandler{
		invoiceUC:  invoiceUC,
		settingsUC: settingsUC,
		backend:    backend,
		mailReady:  mailReady,
		port:       port,
	}
}

// Basic liveness check.
// GET /api/health
func (h *HealthHandler) Basic(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Full health check: touches the storage backend and reports mail configuration.
// GET /api/health/full
func (h *HealthHandler) Full(c *fiber.Ctx) error {
	resp := dto.FullHealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services: map[string]dto.ServiceHealth{
			"backend": {Status: "ok", Port: h.port},
		},
	}

	mailStatus := "not_configured"
	if h.mailReady {
		mailStatus = "configured"
	}
	resp.Services["email"] = dto.ServiceHealth{Status: mailStatus}

	db := dto.ServiceHealth{Status: "ok", Type: h.backend}
	invoices, err := h.invoiceUC.List()
	if err == nil {
		info, settingsErr := h.settingsUC.Get()
		if settingsErr != nil {
			err = settingsErr
		} else {
			db.Counts = &dto.HealthCounts{
				Invoices:    len(invoices),
				HasSettings: info.Name != "",
			}
		}
	}
	if err != nil {
		resp.Status = "degraded"
		db = dto.ServiceHealth{Status: "error", Type: h.backend, Error: err.Error()}
	}
	resp.Services["database"] = db

	return c.JSON(resp)
}
