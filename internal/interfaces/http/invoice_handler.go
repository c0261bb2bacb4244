package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/resonira/invoice-api/internal/application/billing"
	"github.com/resonira/invoice-api/internal/application/dto"
	"github.com/resonira/invoice-api/internal/domain"
	"github.com/resonira/invoice-api/internal/domain/entity"
)

// InvoiceHandler handles invoice CRUD plus the render-and-deliver endpoints.
type InvoiceHandler struct {
	uc   *billing.InvoiceUseCase
	send *billing.SendInvoiceUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, send *billing.SendInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, send: send}
}

// List returns all invoices, newest first.
// GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if invoices == nil {
		invoices = []*entity.Invoice{}
	}
	return c.JSON(invoices)
}

// GetByID returns one invoice.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Invoice not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(inv)
}

// Create stores a new invoice, filling in id, reference and timestamps when absent.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var inv entity.Invoice
	if err := c.BodyParser(&inv); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.Create(&inv); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true, ID: inv.ID})
}

// Update fully replaces an invoice, line items included.
// PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var inv entity.Invoice
	if err := c.BodyParser(&inv); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.Update(c.Params("id"), &inv); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Invoice not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Delete removes an invoice.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Invoice not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Send renders a stored invoice and emails it. The body may carry an invoice
// override so unsaved edits can be sent without persisting first.
// POST /api/invoices/:id/send
func (h *InvoiceHandler) Send(c *fiber.Ctx) error {
	var in dto.SendInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if in.RecipientEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Recipient email is required"})
	}

	var err error
	if in.Invoice != nil {
		err = h.send.SendDirect(c.Context(), in.Invoice, in.RecipientEmail)
	} else {
		err = h.send.Send(c.Context(), c.Params("id"), in.RecipientEmail)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Invoice not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{
		Success: true,
		Message: fmt.Sprintf("Invoice sent successfully to %s", in.RecipientEmail),
	})
}

// SendDirect renders a body-supplied invoice and either returns the PDF bytes
// for download or emails it.
// POST /api/invoices/send-direct
func (h *InvoiceHandler) SendDirect(c *fiber.Ctx) error {
	var in dto.SendDirectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if in.Invoice == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invoice data is required"})
	}

	if in.Download {
		pdf, err := h.send.RenderDirect(c.Context(), in.Invoice)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		ref := in.Invoice.ReferenceNumber
		if ref == "" {
			ref = "draft"
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=invoice-%s.pdf`, ref))
		return c.Send(pdf)
	}

	if in.RecipientEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Recipient email is required"})
	}
	if err := h.send.SendDirect(c.Context(), in.Invoice, in.RecipientEmail); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{
		Success: true,
		Message: fmt.Sprintf("Invoice sent successfully to %s", in.RecipientEmail),
	})
}

// EmailStatus reports whether the SMTP relay is configured and reachable.
// GET /api/invoices/email/status
func (h *InvoiceHandler) EmailStatus(c *fiber.Ctx) error {
	configured, detail := h.send.EmailStatus(c.Context())
	return c.JSON(dto.EmailStatusResponse{Configured: configured, Error: detail})
}
