package domain

import "time"

// ProjectStatus enumerates delivery states for client projects.
type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Project is a client engagement tracked in the portal.
type Project struct {
	ID          string
	ClientID    string
	Name        string
	Status      ProjectStatus
	Progress    int
	Deadline    time.Time
	Cost        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	ClientName   string
	ClientEmail  string
	ClientAvatar *string

	Comments    []Comment
	Attachments []Attachment
}

// Comment is a discussion entry on a project.
type Comment struct {
	ID        string
	ProjectID string
	AuthorID  string
	Text      string
	CreatedAt time.Time

	AuthorName   string
	AuthorAvatar *string
}

// AttachmentType classifies what an attachment URL points at.
type AttachmentType string

const (
	AttachmentTypeFile  AttachmentType = "file"
	AttachmentTypeImage AttachmentType = "image"
	AttachmentTypeLink  AttachmentType = "link"
)

// Attachment is URL metadata pinned to a project; the platform stores no
// file bytes itself.
type Attachment struct {
	ID        string
	ProjectID string
	Name      string
	URL       string
	Type      AttachmentType
	CreatedAt time.Time
}
