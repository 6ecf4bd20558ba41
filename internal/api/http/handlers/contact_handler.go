package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/wexa-dev/studio-api/internal/api/dto"
	"github.com/wexa-dev/studio-api/internal/service"
	apperrors "github.com/wexa-dev/studio-api/pkg/util"
	"github.com/wexa-dev/studio-api/pkg/validate"
)

// ContactHandler accepts public contact form submissions.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{service: contactService}
}

// Submit POST /contact. The response acknowledges receipt only; delivery to
// the notification sink happens in the background.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	h.service.Submit(c.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"data": fiber.Map{"status": "accepted"}})
}
