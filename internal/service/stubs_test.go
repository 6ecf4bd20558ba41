package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wexa-dev/studio-api/internal/domain"
	"github.com/wexa-dev/studio-api/internal/events"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

// testClock hands out strictly increasing timestamps so ordering assertions
// do not depend on wall-clock resolution.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type stubUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	result := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, *user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int, error) {
	count := 0
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

// stubTicketRepo implements both TicketRepository and MessageRepository so
// tests can hand the same instance to the support service for reads and
// writes, mirroring the shared tables underneath.
type stubTicketRepo struct {
	clock    *testClock
	seq      int
	tickets  map[string]*domain.Ticket
	messages map[string][]domain.Message
}

func newStubTicketRepo() *stubTicketRepo {
	return &stubTicketRepo{
		clock:    newTestClock(),
		tickets:  make(map[string]*domain.Ticket),
		messages: make(map[string][]domain.Message),
	}
}

func (r *stubTicketRepo) CreateWithInitialMessage(_ context.Context, ticket *domain.Ticket, msg *domain.Message) error {
	r.seq++
	now := r.clock.next()
	ticket.ID = fmt.Sprintf("ticket-%d", r.seq)
	ticket.CreatedAt = now
	ticket.UpdatedAt = now

	r.seq++
	msg.ID = fmt.Sprintf("msg-%d", r.seq)
	msg.TicketID = ticket.ID
	msg.CreatedAt = now
	ticket.LastMessageAt = msg.CreatedAt

	ticketClone := *ticket
	r.tickets[ticket.ID] = &ticketClone
	r.messages[ticket.ID] = append(r.messages[ticket.ID], *msg)
	return nil
}

func (r *stubTicketRepo) AppendMessage(_ context.Context, ticket *domain.Ticket, msg *domain.Message) error {
	stored, ok := r.tickets[ticket.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	r.seq++
	msg.ID = fmt.Sprintf("msg-%d", r.seq)
	msg.TicketID = ticket.ID
	msg.CreatedAt = r.clock.next()

	stored.LastMessageAt = msg.CreatedAt
	r.messages[ticket.ID] = append(r.messages[ticket.ID], *msg)
	return nil
}

func (r *stubTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *ticket
	return &clone, nil
}

func (r *stubTicketRepo) List(_ context.Context, ownerID *string) ([]domain.Ticket, error) {
	result := make([]domain.Ticket, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		if ownerID != nil && ticket.UserID != *ownerID {
			continue
		}
		result = append(result, *ticket)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LastMessageAt.After(result[j].LastMessageAt)
	})
	return result, nil
}

func (r *stubTicketRepo) SetStatus(_ context.Context, id string, status domain.TicketStatus) error {
	ticket, ok := r.tickets[id]
	if !ok {
		return pgx.ErrNoRows
	}
	ticket.Status = status
	return nil
}

func (r *stubTicketRepo) ListByTicket(_ context.Context, ticketID string) ([]domain.Message, error) {
	msgs := append([]domain.Message{}, r.messages[ticketID]...)
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].CreatedAt.Before(msgs[j].CreatedAt) })
	return msgs, nil
}

type stubInvoiceRepo struct {
	seq      int
	invoices map[string]*domain.Invoice
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: make(map[string]*domain.Invoice)}
}

func (r *stubInvoiceRepo) Create(_ context.Context, invoice *domain.Invoice) error {
	r.seq++
	invoice.ID = fmt.Sprintf("invoice-%d", r.seq)
	invoice.CreatedAt = time.Now()
	invoice.UpdatedAt = invoice.CreatedAt
	clone := *invoice
	r.invoices[invoice.ID] = &clone
	return nil
}

func (r *stubInvoiceRepo) Update(_ context.Context, invoice *domain.Invoice) error {
	if _, ok := r.invoices[invoice.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *invoice
	r.invoices[invoice.ID] = &clone
	return nil
}

func (r *stubInvoiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.invoices[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.invoices, id)
	return nil
}

func (r *stubInvoiceRepo) GetByID(_ context.Context, id string) (*domain.Invoice, error) {
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *invoice
	return &clone, nil
}

func (r *stubInvoiceRepo) List(_ context.Context, ownerID *string) ([]domain.Invoice, error) {
	result := make([]domain.Invoice, 0, len(r.invoices))
	for _, invoice := range r.invoices {
		if ownerID != nil && invoice.UserID != *ownerID {
			continue
		}
		result = append(result, *invoice)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

type stubProjectRepo struct {
	seq      int
	projects map[string]*domain.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, project *domain.Project) error {
	r.seq++
	project.ID = fmt.Sprintf("project-%d", r.seq)
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt
	clone := *project
	r.projects[project.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Update(_ context.Context, project *domain.Project) error {
	if _, ok := r.projects[project.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *project
	r.projects[project.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.projects, id)
	return nil
}

func (r *stubProjectRepo) GetByID(_ context.Context, id string) (*domain.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *project
	return &clone, nil
}

func (r *stubProjectRepo) List(_ context.Context, clientID *string) ([]domain.Project, error) {
	result := make([]domain.Project, 0, len(r.projects))
	for _, project := range r.projects {
		if clientID != nil && project.ClientID != *clientID {
			continue
		}
		result = append(result, *project)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

type stubCommentRepo struct {
	seq      int
	comments map[string][]domain.Comment
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string][]domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	r.seq++
	comment.ID = fmt.Sprintf("comment-%d", r.seq)
	comment.CreatedAt = time.Now()
	r.comments[comment.ProjectID] = append(r.comments[comment.ProjectID], *comment)
	return nil
}

func (r *stubCommentRepo) GetByID(_ context.Context, id string) (*domain.Comment, error) {
	for _, list := range r.comments {
		for i := range list {
			if list[i].ID == id {
				clone := list[i]
				return &clone, nil
			}
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *stubCommentRepo) ListByProject(_ context.Context, projectID string) ([]domain.Comment, error) {
	return append([]domain.Comment{}, r.comments[projectID]...), nil
}

type stubAttachmentRepo struct {
	seq         int
	attachments map[string]*domain.Attachment
}

func newStubAttachmentRepo() *stubAttachmentRepo {
	return &stubAttachmentRepo{attachments: make(map[string]*domain.Attachment)}
}

func (r *stubAttachmentRepo) Create(_ context.Context, attachment *domain.Attachment) error {
	r.seq++
	attachment.ID = fmt.Sprintf("attachment-%d", r.seq)
	attachment.CreatedAt = time.Now()
	clone := *attachment
	r.attachments[attachment.ID] = &clone
	return nil
}

func (r *stubAttachmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.attachments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.attachments, id)
	return nil
}

func (r *stubAttachmentRepo) GetByID(_ context.Context, id string) (*domain.Attachment, error) {
	attachment, ok := r.attachments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *attachment
	return &clone, nil
}

func (r *stubAttachmentRepo) ListByProject(_ context.Context, projectID string) ([]domain.Attachment, error) {
	var result []domain.Attachment
	for _, attachment := range r.attachments {
		if attachment.ProjectID == projectID {
			result = append(result, *attachment)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type stubSettingRepo struct {
	settings map[string]*domain.Setting
}

func newStubSettingRepo() *stubSettingRepo {
	return &stubSettingRepo{settings: make(map[string]*domain.Setting)}
}

func (r *stubSettingRepo) Upsert(_ context.Context, setting *domain.Setting) error {
	clone := *setting
	r.settings[setting.Key] = &clone
	return nil
}

func (r *stubSettingRepo) Get(_ context.Context, key string) (*domain.Setting, error) {
	setting, ok := r.settings[key]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *setting
	return &clone, nil
}

func (r *stubSettingRepo) List(_ context.Context) ([]domain.Setting, error) {
	keys := make([]string, 0, len(r.settings))
	for key := range r.settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]domain.Setting, 0, len(keys))
	for _, key := range keys {
		result = append(result, *r.settings[key])
	}
	return result, nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.Type, events.Handler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}
