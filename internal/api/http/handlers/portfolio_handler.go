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

// PortfolioHandler manages the public showcase endpoints.
type PortfolioHandler struct {
	service *service.CatalogService
}

// NewPortfolioHandler constructs handler.
func NewPortfolioHandler(catalogService *service.CatalogService) *PortfolioHandler {
	return &PortfolioHandler{service: catalogService}
}

// ListPortfolio GET /portfolio.
func (h *PortfolioHandler) ListPortfolio(c *fiber.Ctx) error {
	items, err := h.service.ListPortfolio(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.PortfolioResponse, 0, len(items))
	for i := range items {
		resp = append(resp, portfolioResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// CreatePortfolioItem POST /portfolio.
func (h *PortfolioHandler) CreatePortfolioItem(c *fiber.Ctx) error {
	var req dto.CreatePortfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	item, err := h.service.CreatePortfolioItem(c.Context(), service.PortfolioInput{
		Title:       req.Title,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
		ProjectURL:  req.ProjectURL,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": portfolioResponse(item)})
}

// UpdatePortfolioItem PUT /portfolio/:id.
func (h *PortfolioHandler) UpdatePortfolioItem(c *fiber.Ctx) error {
	var req dto.UpdatePortfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	item, err := h.service.UpdatePortfolioItem(c.Context(), c.Params("id"), service.PortfolioUpdateInput{
		Title:       req.Title,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
		ProjectURL:  req.ProjectURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": portfolioResponse(item)})
}

// DeletePortfolioItem DELETE /portfolio/:id.
func (h *PortfolioHandler) DeletePortfolioItem(c *fiber.Ctx) error {
	if err := h.service.DeletePortfolioItem(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func portfolioResponse(item *domain.PortfolioItem) dto.PortfolioResponse {
	return dto.PortfolioResponse{
		ID:          item.ID,
		Title:       item.Title,
		Category:    item.Category,
		Image:       item.Image,
		Description: item.Description,
		ProjectURL:  item.ProjectURL,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
