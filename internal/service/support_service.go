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

// SupportService coordinates the ticket and message-thread workflows. The
// guard middleware answers "who is this"; the ownership predicate here
// answers "may they".
type SupportService struct {
	tickets    repository.TicketRepository
	messages   repository.MessageRepository
	dispatcher events.Dispatcher
}

// SupportDependencies bundles repositories for the support service.
type SupportDependencies struct {
	TicketRepo  repository.TicketRepository
	MessageRepo repository.MessageRepository
	Dispatcher  events.Dispatcher
}

// NewSupportService constructs the service.
func NewSupportService(deps SupportDependencies) *SupportService {
	return &SupportService{
		tickets:    deps.TicketRepo,
		messages:   deps.MessageRepo,
		dispatcher: deps.Dispatcher,
	}
}

// canAccessTicket is the per-operation authorization predicate: the ticket's
// owner and any admin may act on it.
func canAccessTicket(requester *domain.User, ticket *domain.Ticket) bool {
	if requester == nil {
		return false
	}
	return requester.IsAdmin() || ticket.UserID == requester.ID
}

// CreateTicket opens a ticket together with its first message. The two
// writes commit atomically, so a ticket with zero messages is never
// observable.
func (s *SupportService) CreateTicket(ctx context.Context, requester *domain.User, subject, initialMessage string) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		UserID:     requester.ID,
		Subject:    strings.TrimSpace(subject),
		Status:     domain.TicketStatusOpen,
		OwnerName:  requester.Name,
		OwnerEmail: requester.Email,
	}
	msg := &domain.Message{
		SenderID:   requester.ID,
		Text:       strings.TrimSpace(initialMessage),
		IsAdmin:    requester.IsAdmin(),
		SenderName: requester.Name,
	}

	if err := s.tickets.CreateWithInitialMessage(ctx, ticket, msg); err != nil {
		return nil, err
	}
	ticket.Messages = []domain.Message{*msg}

	s.publish(ctx, events.Event{
		Type:    events.EventTicketCreated,
		ActorID: requester.ID,
		Payload: events.TicketCreatedPayload{
			TicketID: ticket.ID,
			Subject:  ticket.Subject,
		},
	})
	return ticket, nil
}

// AppendMessage adds a message to an open ticket owned by the requester (or
// any ticket, for admins) and advances the ticket's lastMessageAt to the new
// message's creation time. Closed tickets reject the append with a specific
// conflict error; this is enforced at the data layer, not just in the UI.
func (s *SupportService) AppendMessage(ctx context.Context, requester *domain.User, ticketID, text string) (*domain.Message, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, notFoundOr(err, "ticket")
	}
	if !canAccessTicket(requester, ticket) {
		return nil, apperrors.NewForbidden("not allowed to post to this ticket")
	}
	if ticket.Status == domain.TicketStatusClosed {
		return nil, apperrors.NewConflict("ticket is closed", nil)
	}

	msg := &domain.Message{
		SenderID:   requester.ID,
		Text:       strings.TrimSpace(text),
		IsAdmin:    requester.IsAdmin(),
		SenderName: requester.Name,
	}
	if err := s.tickets.AppendMessage(ctx, ticket, msg); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventTicketMessageAdded,
		ActorID: requester.ID,
		Payload: events.TicketMessageAddedPayload{
			TicketID:    ticket.ID,
			MessageID:   msg.ID,
			IsAdmin:     msg.IsAdmin,
			TextPreview: textPreview(msg.Text, 120),
		},
	})
	return msg, nil
}

// CloseTicket moves a ticket to closed. Closing an already-closed ticket is
// a no-op, not an error. There is no reopen operation.
func (s *SupportService) CloseTicket(ctx context.Context, requester *domain.User, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, notFoundOr(err, "ticket")
	}
	if !canAccessTicket(requester, ticket) {
		return nil, apperrors.NewForbidden("not allowed to close this ticket")
	}
	if ticket.Status == domain.TicketStatusClosed {
		return ticket, nil
	}

	if err := s.tickets.SetStatus(ctx, ticket.ID, domain.TicketStatusClosed); err != nil {
		return nil, notFoundOr(err, "ticket")
	}
	ticket.Status = domain.TicketStatusClosed

	s.publish(ctx, events.Event{
		Type:    events.EventTicketClosed,
		ActorID: requester.ID,
		Payload: events.TicketClosedPayload{TicketID: ticket.ID},
	})
	return ticket, nil
}

// ListTickets returns the caller's conversations, most recently active
// first, each with its full thread in creation order. Admins see every
// ticket; clients only their own.
func (s *SupportService) ListTickets(ctx context.Context, requester *domain.User) ([]domain.Ticket, error) {
	var owner *string
	if !requester.IsAdmin() {
		owner = &requester.ID
	}

	tickets, err := s.tickets.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		msgs, err := s.messages.ListByTicket(ctx, tickets[i].ID)
		if err != nil {
			return nil, err
		}
		tickets[i].Messages = msgs
	}
	return tickets, nil
}

func (s *SupportService) publish(ctx context.Context, event events.Event) {
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

func textPreview(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	if max <= 3 {
		return text[:max]
	}
	return text[:max-3] + "..."
}
