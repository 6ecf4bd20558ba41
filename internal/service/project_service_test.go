package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wexa-dev/studio-api/internal/domain"
)

func newProjectFixture(t *testing.T) (*ProjectService, *stubUserRepo, *domain.User) {
	t.Helper()
	users := newStubUserRepo()
	client := &domain.User{Name: "Alice", Email: "alice@example.com", Role: domain.RoleClient}
	require.NoError(t, users.Create(context.Background(), client))

	svc := NewProjectService(ProjectDependencies{
		ProjectRepo:    newStubProjectRepo(),
		CommentRepo:    newStubCommentRepo(),
		AttachmentRepo: newStubAttachmentRepo(),
		UserRepo:       users,
	})
	return svc, users, client
}

func createProject(t *testing.T, svc *ProjectService, clientID string) *domain.Project {
	t.Helper()
	project, err := svc.CreateProject(context.Background(), ProjectCreateInput{
		ClientID: clientID,
		Name:     "Corporate site",
		Progress: 0,
		Deadline: time.Now().Add(30 * 24 * time.Hour),
		Cost:     "$5,000",
	})
	require.NoError(t, err)
	return project
}

func TestCreateProjectDefaultsToPending(t *testing.T) {
	svc, _, client := newProjectFixture(t)

	project := createProject(t, svc, client.ID)
	assert.Equal(t, domain.ProjectStatusPending, project.Status)
	assert.Equal(t, client.Name, project.ClientName)
}

func TestCreateProjectUnknownClientNotFound(t *testing.T) {
	svc, _, _ := newProjectFixture(t)

	_, err := svc.CreateProject(context.Background(), ProjectCreateInput{
		ClientID: "ghost",
		Name:     "Corporate site",
		Deadline: time.Now(),
		Cost:     "$5,000",
	})
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestListProjectsScopedByClient(t *testing.T) {
	svc, users, client := newProjectFixture(t)
	createProject(t, svc, client.ID)

	other := &domain.User{Name: "Bob", Email: "bob@example.com", Role: domain.RoleClient}
	require.NoError(t, users.Create(context.Background(), other))
	createProject(t, svc, other.ID)

	mine, err := svc.ListProjects(context.Background(), client)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, client.ID, mine[0].ClientID)

	all, err := svc.ListProjects(context.Background(), adminUser())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAddCommentByProjectClient(t *testing.T) {
	svc, _, client := newProjectFixture(t)
	project := createProject(t, svc, client.ID)

	comment, err := svc.AddComment(context.Background(), client, project.ID, "Looks great so far")
	require.NoError(t, err)
	assert.Equal(t, client.ID, comment.AuthorID)
	assert.Equal(t, client.Name, comment.AuthorName)

	projects, err := svc.ListProjects(context.Background(), client)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Len(t, projects[0].Comments, 1)
	assert.Equal(t, "Looks great so far", projects[0].Comments[0].Text)
}

func TestAddCommentStrangerForbidden(t *testing.T) {
	svc, users, client := newProjectFixture(t)
	project := createProject(t, svc, client.ID)

	stranger := &domain.User{Name: "Bob", Email: "bob@example.com", Role: domain.RoleClient}
	require.NoError(t, users.Create(context.Background(), stranger))

	_, err := svc.AddComment(context.Background(), stranger, project.ID, "sneaky")
	requireDomainCode(t, err, "FORBIDDEN")
}

func TestAddCommentAdminAllowed(t *testing.T) {
	svc, _, client := newProjectFixture(t)
	project := createProject(t, svc, client.ID)

	comment, err := svc.AddComment(context.Background(), adminUser(), project.ID, "Status update")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", comment.AuthorID)
}

func TestUpdateProjectMergesFields(t *testing.T) {
	svc, _, client := newProjectFixture(t)
	project := createProject(t, svc, client.ID)

	status := domain.ProjectStatusInProgress
	progress := 40
	updated, err := svc.UpdateProject(context.Background(), project.ID, ProjectUpdateInput{
		Status:   &status,
		Progress: &progress,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusInProgress, updated.Status)
	assert.Equal(t, 40, updated.Progress)
	assert.Equal(t, project.Name, updated.Name, "untouched fields survive")
}

func TestAddAndDeleteAttachment(t *testing.T) {
	svc, _, client := newProjectFixture(t)
	project := createProject(t, svc, client.ID)

	attachment, err := svc.AddAttachment(context.Background(), project.ID, AttachmentInput{
		Name: "Wireframes",
		URL:  "https://files.example.com/wireframes.pdf",
		Type: domain.AttachmentTypeFile,
	})
	require.NoError(t, err)
	assert.Equal(t, project.ID, attachment.ProjectID)

	require.NoError(t, svc.DeleteAttachment(context.Background(), project.ID, attachment.ID))

	err = svc.DeleteAttachment(context.Background(), project.ID, attachment.ID)
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestDeleteAttachmentWrongProjectNotFound(t *testing.T) {
	svc, _, client := newProjectFixture(t)
	project := createProject(t, svc, client.ID)
	other := createProject(t, svc, client.ID)

	attachment, err := svc.AddAttachment(context.Background(), project.ID, AttachmentInput{
		Name: "Logo",
		URL:  "https://files.example.com/logo.png",
		Type: domain.AttachmentTypeImage,
	})
	require.NoError(t, err)

	err = svc.DeleteAttachment(context.Background(), other.ID, attachment.ID)
	requireDomainCode(t, err, "NOT_FOUND")
}
