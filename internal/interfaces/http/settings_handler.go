package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/resonira/invoice-api/internal/application/dto"
	appsettings "github.com/resonira/invoice-api/internal/application/settings"
	"github.com/resonira/invoice-api/internal/domain/entity"
)

// SettingsHandler handles the singleton company record.
type SettingsHandler struct {
	uc *appsettings.UseCase
}

// NewSettingsHandler builds the handler.
func NewSettingsHandler(uc *appsettings.UseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get returns the company record (zero-value fields before first save).
// GET /api/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	info, err := h.uc.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(info)
}

// Update upserts the company record.
// PUT /api/settings
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var info entity.CompanyInfo
	if err := c.BodyParser(&info); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.Update(&info); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
