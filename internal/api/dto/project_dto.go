package dto

import (
	"time"

	"github.com/wexa-dev/studio-api/internal/domain"
)

// CreateProjectRequest payload.
type CreateProjectRequest struct {
	ClientID    string               `json:"client_id" validate:"required,uuid"`
	Name        string               `json:"name" validate:"required,min=2,max=200"`
	Status      domain.ProjectStatus `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Progress    int                  `json:"progress" validate:"gte=0,lte=100"`
	Deadline    time.Time            `json:"deadline" validate:"required"`
	Cost        string               `json:"cost" validate:"required,max=100"`
	Description *string              `json:"description" validate:"omitempty,max=5000"`
}

// UpdateProjectRequest carries a partial project update.
type UpdateProjectRequest struct {
	Name        *string               `json:"name" validate:"omitempty,min=2,max=200"`
	Status      *domain.ProjectStatus `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Progress    *int                  `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Deadline    *time.Time            `json:"deadline"`
	Cost        *string               `json:"cost" validate:"omitempty,max=100"`
	Description *string               `json:"description" validate:"omitempty,max=5000"`
}

// AddCommentRequest payload.
type AddCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=5000"`
}

// AddAttachmentRequest payload.
type AddAttachmentRequest struct {
	Name string                `json:"name" validate:"required,min=1,max=200"`
	URL  string                `json:"url" validate:"required,url"`
	Type domain.AttachmentType `json:"type" validate:"required,oneof=file image link"`
}

// CommentResponse represents a project discussion entry.
type CommentResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar *string   `json:"author_avatar"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
}

// AttachmentResponse metadata.
type AttachmentResponse struct {
	ID        string                `json:"id"`
	ProjectID string                `json:"project_id"`
	Name      string                `json:"name"`
	URL       string                `json:"url"`
	Type      domain.AttachmentType `json:"type"`
	CreatedAt time.Time             `json:"created_at"`
}

// ProjectResponse provides full project info.
type ProjectResponse struct {
	ID           string               `json:"id"`
	ClientID     string               `json:"client_id"`
	ClientName   string               `json:"client_name"`
	ClientEmail  string               `json:"client_email"`
	ClientAvatar *string              `json:"client_avatar"`
	Name         string               `json:"name"`
	Status       domain.ProjectStatus `json:"status"`
	Progress     int                  `json:"progress"`
	Deadline     time.Time            `json:"deadline"`
	Cost         string               `json:"cost"`
	Description  *string              `json:"description"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	Comments     []CommentResponse    `json:"comments"`
	Attachments  []AttachmentResponse `json:"attachments"`
}
