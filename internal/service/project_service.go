package service

import (
	"context"
	"strings"
	"time"

	"github.com/wexa-dev/studio-api/internal/domain"
	"github.com/wexa-dev/studio-api/internal/repository"
	apperrors "github.com/wexa-dev/studio-api/pkg/util"
)

// ProjectService coordinates project, comment, and attachment workflows.
type ProjectService struct {
	projects    repository.ProjectRepository
	comments    repository.CommentRepository
	attachments repository.AttachmentRepository
	users       repository.UserRepository
}

// ProjectDependencies bundles repositories for the project service.
type ProjectDependencies struct {
	ProjectRepo    repository.ProjectRepository
	CommentRepo    repository.CommentRepository
	AttachmentRepo repository.AttachmentRepository
	UserRepo       repository.UserRepository
}

// NewProjectService constructs the service.
func NewProjectService(deps ProjectDependencies) *ProjectService {
	return &ProjectService{
		projects:    deps.ProjectRepo,
		comments:    deps.CommentRepo,
		attachments: deps.AttachmentRepo,
		users:       deps.UserRepo,
	}
}

// ListProjects returns projects newest first, each with comments and
// attachments. Admins see all projects; clients only their own.
func (s *ProjectService) ListProjects(ctx context.Context, requester *domain.User) ([]domain.Project, error) {
	var client *string
	if !requester.IsAdmin() {
		client = &requester.ID
	}

	projects, err := s.projects.List(ctx, client)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if err := s.loadNested(ctx, &projects[i]); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (s *ProjectService) loadNested(ctx context.Context, project *domain.Project) error {
	comments, err := s.comments.ListByProject(ctx, project.ID)
	if err != nil {
		return err
	}
	attachments, err := s.attachments.ListByProject(ctx, project.ID)
	if err != nil {
		return err
	}
	project.Comments = comments
	project.Attachments = attachments
	return nil
}

// ProjectCreateInput describes a new project.
type ProjectCreateInput struct {
	ClientID    string
	Name        string
	Status      domain.ProjectStatus
	Progress    int
	Deadline    time.Time
	Cost        string
	Description *string
}

// CreateProject creates a project for a client. The route is admin-guarded.
func (s *ProjectService) CreateProject(ctx context.Context, input ProjectCreateInput) (*domain.Project, error) {
	client, err := s.users.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, notFoundOr(err, "client")
	}

	status := input.Status
	if status == "" {
		status = domain.ProjectStatusPending
	}

	project := &domain.Project{
		ClientID:     client.ID,
		Name:         strings.TrimSpace(input.Name),
		Status:       status,
		Progress:     input.Progress,
		Deadline:     input.Deadline,
		Cost:         strings.TrimSpace(input.Cost),
		Description:  input.Description,
		ClientName:   client.Name,
		ClientEmail:  client.Email,
		ClientAvatar: client.Avatar,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ProjectUpdateInput carries a partial project update; nil fields are left
// as-is.
type ProjectUpdateInput struct {
	Name        *string
	Status      *domain.ProjectStatus
	Progress    *int
	Deadline    *time.Time
	Cost        *string
	Description *string
}

// UpdateProject merges the input into the project. The route is
// admin-guarded.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, input ProjectUpdateInput) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "project")
	}

	if input.Name != nil {
		project.Name = strings.TrimSpace(*input.Name)
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.Progress != nil {
		project.Progress = *input.Progress
	}
	if input.Deadline != nil {
		project.Deadline = *input.Deadline
	}
	if input.Cost != nil {
		project.Cost = strings.TrimSpace(*input.Cost)
	}
	if input.Description != nil {
		project.Description = input.Description
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, notFoundOr(err, "project")
	}
	if err := s.loadNested(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project and, through the schema, its comments and
// attachments. The route is admin-guarded.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return notFoundOr(err, "project")
	}
	return nil
}

// AddComment appends a discussion entry. Admins and the project's client may
// comment; other clients may not.
func (s *ProjectService) AddComment(ctx context.Context, requester *domain.User, projectID, text string) (*domain.Comment, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, notFoundOr(err, "project")
	}
	if !requester.IsAdmin() && project.ClientID != requester.ID {
		return nil, apperrors.NewForbidden("not allowed to comment on this project")
	}

	comment := &domain.Comment{
		ProjectID:    project.ID,
		AuthorID:     requester.ID,
		Text:         strings.TrimSpace(text),
		AuthorName:   requester.Name,
		AuthorAvatar: requester.Avatar,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// AttachmentInput describes attachment metadata.
type AttachmentInput struct {
	Name string
	URL  string
	Type domain.AttachmentType
}

// AddAttachment pins URL metadata to a project. The route is admin-guarded.
func (s *ProjectService) AddAttachment(ctx context.Context, projectID string, input AttachmentInput) (*domain.Attachment, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, notFoundOr(err, "project")
	}

	attachment := &domain.Attachment{
		ProjectID: project.ID,
		Name:      strings.TrimSpace(input.Name),
		URL:       strings.TrimSpace(input.URL),
		Type:      input.Type,
	}
	if err := s.attachments.Create(ctx, attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

// DeleteAttachment removes an attachment, verifying it belongs to the named
// project. The route is admin-guarded.
func (s *ProjectService) DeleteAttachment(ctx context.Context, projectID, attachmentID string) error {
	attachment, err := s.attachments.GetByID(ctx, attachmentID)
	if err != nil {
		return notFoundOr(err, "attachment")
	}
	if attachment.ProjectID != projectID {
		return apperrors.NewNotFound("attachment", nil)
	}
	if err := s.attachments.Delete(ctx, attachmentID); err != nil {
		return notFoundOr(err, "attachment")
	}
	return nil
}
