package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wexa-dev/studio-api/internal/domain"
	"github.com/wexa-dev/studio-api/internal/events"
	"github.com/wexa-dev/studio-api/internal/repository"
	apperrors "github.com/wexa-dev/studio-api/pkg/util"
)

// InvoiceService coordinates billing records and the guarded status
// lifecycle: pending moves to paid or cancelled, both terminal.
type InvoiceService struct {
	invoices   repository.InvoiceRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// InvoiceDependencies bundles repositories for the invoice service.
type InvoiceDependencies struct {
	InvoiceRepo repository.InvoiceRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
}

// NewInvoiceService constructs the service.
func NewInvoiceService(deps InvoiceDependencies) *InvoiceService {
	return &InvoiceService{
		invoices:   deps.InvoiceRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// ListInvoices returns invoices newest first. Admins see all; clients only
// their own.
func (s *InvoiceService) ListInvoices(ctx context.Context, requester *domain.User) ([]domain.Invoice, error) {
	var owner *string
	if !requester.IsAdmin() {
		owner = &requester.ID
	}
	return s.invoices.List(ctx, owner)
}

// InvoiceCreateInput describes a new invoice.
type InvoiceCreateInput struct {
	UserID      string
	Title       string
	Amount      float64
	Type        domain.InvoiceType
	DueDate     time.Time
	Description *string
}

// CreateInvoice issues a pending invoice to a client. The route is
// admin-guarded.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input InvoiceCreateInput) (*domain.Invoice, error) {
	owner, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}

	invoice := &domain.Invoice{
		UserID:      owner.ID,
		Title:       strings.TrimSpace(input.Title),
		Amount:      input.Amount,
		Type:        input.Type,
		Status:      domain.InvoiceStatusPending,
		DueDate:     input.DueDate,
		Description: input.Description,
		OwnerName:   owner.Name,
		OwnerEmail:  owner.Email,
	}
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// InvoiceUpdateInput carries a partial invoice update; nil fields are left
// as-is.
type InvoiceUpdateInput struct {
	Title       *string
	Amount      *float64
	Type        *domain.InvoiceType
	Status      *domain.InvoiceStatus
	DueDate     *time.Time
	Description *string
}

// statusOnly reports whether the update touches nothing but the status.
func (in InvoiceUpdateInput) statusOnly() bool {
	return in.Status != nil &&
		in.Title == nil && in.Amount == nil && in.Type == nil &&
		in.DueDate == nil && in.Description == nil
}

// UpdateInvoice merges the input into the invoice. Admins may edit any
// field; clients may perform exactly one mutation on their own invoices:
// marking a pending invoice paid. Every status change passes the transition
// guard.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, requester *domain.User, id string, input InvoiceUpdateInput) (*domain.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "invoice")
	}

	if !requester.IsAdmin() {
		if invoice.UserID != requester.ID {
			return nil, apperrors.NewForbidden("not allowed to update this invoice")
		}
		if !input.statusOnly() || *input.Status != domain.InvoiceStatusPaid {
			return nil, apperrors.NewForbidden("clients may only mark their invoices paid")
		}
	}

	oldStatus := invoice.Status
	if input.Status != nil && *input.Status != invoice.Status {
		if !domain.CanTransition(invoice.Status, *input.Status) {
			return nil, apperrors.NewConflict("illegal invoice status transition", map[string]any{
				"from": invoice.Status,
				"to":   *input.Status,
			})
		}
		invoice.Status = *input.Status
	}
	if input.Title != nil {
		invoice.Title = strings.TrimSpace(*input.Title)
	}
	if input.Amount != nil {
		invoice.Amount = *input.Amount
	}
	if input.Type != nil {
		invoice.Type = *input.Type
	}
	if input.DueDate != nil {
		invoice.DueDate = *input.DueDate
	}
	if input.Description != nil {
		invoice.Description = input.Description
	}

	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, notFoundOr(err, "invoice")
	}

	if invoice.Status != oldStatus {
		s.publish(ctx, events.Event{
			Type:    events.EventInvoiceStatusChanged,
			ActorID: requester.ID,
			Payload: events.InvoiceStatusChangedPayload{
				InvoiceID: invoice.ID,
				OldStatus: oldStatus,
				NewStatus: invoice.Status,
			},
		})
	}
	return invoice, nil
}

// DeleteInvoice removes an invoice. The route is admin-guarded.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	if err := s.invoices.Delete(ctx, id); err != nil {
		return notFoundOr(err, "invoice")
	}
	return nil
}

func (s *InvoiceService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
