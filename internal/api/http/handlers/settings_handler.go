package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wexa-dev/studio-api/internal/api/dto"
	"github.com/wexa-dev/studio-api/internal/auth"
	"github.com/wexa-dev/studio-api/internal/service"
	apperrors "github.com/wexa-dev/studio-api/pkg/util"
	"github.com/wexa-dev/studio-api/pkg/validate"
)

// SettingsHandler manages the settings store endpoints.
type SettingsHandler struct {
	service *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: settingsService}
}

// GetSettings GET /settings. Anonymous and client callers receive the
// redacted public view; admins receive raw values.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	requester, _ := auth.UserFromContext(c)
	settings, err := h.service.GetAll(c.Context(), requester)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": settings})
}

// UpsertSetting POST /settings.
func (h *SettingsHandler) UpsertSetting(c *fiber.Ctx) error {
	var req dto.UpsertSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	setting, err := h.service.Upsert(c.Context(), req.Key, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SettingResponse{
		Key:   setting.Key,
		Value: setting.Value,
	}})
}
