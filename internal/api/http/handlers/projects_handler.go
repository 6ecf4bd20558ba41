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

// ProjectsHandler manages project, comment, and attachment endpoints.
type ProjectsHandler struct {
	service *service.ProjectService
}

// NewProjectsHandler constructs handler.
func NewProjectsHandler(projectService *service.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{service: projectService}
}

// ListProjects GET /projects.
func (h *ProjectsHandler) ListProjects(c *fiber.Ctx) error {
	requester, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	projects, err := h.service.ListProjects(c.Context(), requester)
	if err != nil {
		return err
	}
	items := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		items = append(items, projectResponse(&projects[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateProject POST /projects.
func (h *ProjectsHandler) CreateProject(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	project, err := h.service.CreateProject(c.Context(), service.ProjectCreateInput{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Status:      req.Status,
		Progress:    req.Progress,
		Deadline:    req.Deadline,
		Cost:        req.Cost,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": projectResponse(project)})
}

// UpdateProject PUT /projects/:id.
func (h *ProjectsHandler) UpdateProject(c *fiber.Ctx) error {
	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	project, err := h.service.UpdateProject(c.Context(), c.Params("id"), service.ProjectUpdateInput{
		Name:        req.Name,
		Status:      req.Status,
		Progress:    req.Progress,
		Deadline:    req.Deadline,
		Cost:        req.Cost,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": projectResponse(project)})
}

// DeleteProject DELETE /projects/:id.
func (h *ProjectsHandler) DeleteProject(c *fiber.Ctx) error {
	if err := h.service.DeleteProject(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddComment POST /projects/:id/comments.
func (h *ProjectsHandler) AddComment(c *fiber.Ctx) error {
	requester, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	comment, err := h.service.AddComment(c.Context(), requester, c.Params("id"), req.Text)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": commentResponse(comment)})
}

// AddAttachment POST /projects/:id/attachments.
func (h *ProjectsHandler) AddAttachment(c *fiber.Ctx) error {
	var req dto.AddAttachmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	attachment, err := h.service.AddAttachment(c.Context(), c.Params("id"), service.AttachmentInput{
		Name: req.Name,
		URL:  req.URL,
		Type: req.Type,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": attachmentResponse(attachment)})
}

// DeleteAttachment DELETE /projects/:id/attachments/:attachmentId.
func (h *ProjectsHandler) DeleteAttachment(c *fiber.Ctx) error {
	if err := h.service.DeleteAttachment(c.Context(), c.Params("id"), c.Params("attachmentId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func projectResponse(project *domain.Project) dto.ProjectResponse {
	comments := make([]dto.CommentResponse, 0, len(project.Comments))
	for i := range project.Comments {
		comments = append(comments, commentResponse(&project.Comments[i]))
	}
	attachments := make([]dto.AttachmentResponse, 0, len(project.Attachments))
	for i := range project.Attachments {
		attachments = append(attachments, attachmentResponse(&project.Attachments[i]))
	}
	return dto.ProjectResponse{
		ID:           project.ID,
		ClientID:     project.ClientID,
		ClientName:   project.ClientName,
		ClientEmail:  project.ClientEmail,
		ClientAvatar: project.ClientAvatar,
		Name:         project.Name,
		Status:       project.Status,
		Progress:     project.Progress,
		Deadline:     project.Deadline,
		Cost:         project.Cost,
		Description:  project.Description,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
		Comments:     comments,
		Attachments:  attachments,
	}
}

func commentResponse(comment *domain.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:           comment.ID,
		ProjectID:    comment.ProjectID,
		AuthorID:     comment.AuthorID,
		AuthorName:   comment.AuthorName,
		AuthorAvatar: comment.AuthorAvatar,
		Text:         comment.Text,
		CreatedAt:    comment.CreatedAt,
	}
}

func attachmentResponse(attachment *domain.Attachment) dto.AttachmentResponse {
	return dto.AttachmentResponse{
		ID:        attachment.ID,
		ProjectID: attachment.ProjectID,
		Name:      attachment.Name,
		URL:       attachment.URL,
		Type:      attachment.Type,
		CreatedAt: attachment.CreatedAt,
	}
}
