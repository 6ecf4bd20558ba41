package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/wexa-dev/studio-api/internal/api/dto"
	"github.com/wexa-dev/studio-api/internal/auth"
	"github.com/wexa-dev/studio-api/internal/domain"
	"github.com/wexa-dev/studio-api/internal/service"
	apperrors "github.com/wexa-dev/studio-api/pkg/util"
	"github.com/wexa-dev/studio-api/pkg/validate"
)

// InvoicesHandler manages billing endpoints.
type InvoicesHandler struct {
	service *service.InvoiceService
}

// NewInvoicesHandler constructs handler.
func NewInvoicesHandler(invoiceService *service.InvoiceService) *InvoicesHandler {
	return &InvoicesHandler{service: invoiceService}
}

// ListInvoices GET /invoices.
func (h *InvoicesHandler) ListInvoices(c *fiber.Ctx) error {
	requester, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	invoices, err := h.service.ListInvoices(c.Context(), requester)
	if err != nil {
		return err
	}
	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, invoiceResponse(&invoices[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateInvoice POST /invoices.
func (h *InvoicesHandler) CreateInvoice(c *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	invoice, err := h.service.CreateInvoice(c.Context(), service.InvoiceCreateInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Amount:      req.Amount,
		Type:        req.Type,
		DueDate:     req.DueDate,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": invoiceResponse(invoice)})
}

// UpdateInvoice PUT /invoices/:id.
func (h *InvoicesHandler) UpdateInvoice(c *fiber.Ctx) error {
	requester, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	invoice, err := h.service.UpdateInvoice(c.Context(), requester, c.Params("id"), service.InvoiceUpdateInput{
		Title:       req.Title,
		Amount:      req.Amount,
		Type:        req.Type,
		Status:      req.Status,
		DueDate:     req.DueDate,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": invoiceResponse(invoice)})
}

// DeleteInvoice DELETE /invoices/:id.
func (h *InvoicesHandler) DeleteInvoice(c *fiber.Ctx) error {
	if err := h.service.DeleteInvoice(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func invoiceResponse(invoice *domain.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:          invoice.ID,
		UserID:      invoice.UserID,
		OwnerName:   invoice.OwnerName,
		OwnerEmail:  invoice.OwnerEmail,
		Title:       invoice.Title,
		Amount:      invoice.Amount,
		Type:        invoice.Type,
		Status:      invoice.Status,
		DueDate:     invoice.DueDate,
		Description: invoice.Description,
		CreatedAt:   invoice.CreatedAt,
		UpdatedAt:   invoice.UpdatedAt,
	}
}
