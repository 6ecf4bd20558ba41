package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/wexa-dev/studio-api/internal/api/dto"
	"github.com/wexa-dev/studio-api/internal/domain"
	"github.com/wexa-dev/studio-api/internal/service"
	apperrors "github.com/wexa-dev/studio-api/pkg/util"
	"github.com/wexa-dev/studio-api/pkg/validate"
)

// ServicesHandler manages the public service catalog endpoints.
type ServicesHandler struct {
	service *service.CatalogService
}

// NewServicesHandler constructs handler.
func NewServicesHandler(catalogService *service.CatalogService) *ServicesHandler {
	return &ServicesHandler{service: catalogService}
}

// ListServices GET /services.
func (h *ServicesHandler) ListServices(c *fiber.Ctx) error {
	services, err := h.service.ListServices(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		items = append(items, serviceResponse(&services[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateService POST /services.
func (h *ServicesHandler) CreateService(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	svc, err := h.service.CreateService(c.Context(), service.ServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		IconName:    req.IconName,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": serviceResponse(svc)})
}

// UpdateService PUT /services/:id.
func (h *ServicesHandler) UpdateService(c *fiber.Ctx) error {
	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	svc, err := h.service.UpdateService(c.Context(), c.Params("id"), service.ServiceUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		IconName:    req.IconName,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceResponse(svc)})
}

// DeleteService DELETE /services/:id.
func (h *ServicesHandler) DeleteService(c *fiber.Ctx) error {
	if err := h.service.DeleteService(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func serviceResponse(svc *domain.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:          svc.ID,
		Title:       svc.Title,
		Description: svc.Description,
		Price:       svc.Price,
		IconName:    svc.IconName,
		CreatedAt:   svc.CreatedAt,
		UpdatedAt:   svc.UpdatedAt,
	}
}
