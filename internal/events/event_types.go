package events

import (
	"time"

	"github.com/wexa-dev/studio-api/internal/domain"
)

// Type enumerates supported event identifiers.
type Type string

const (
	EventTicketCreated        Type = "ticket_created"
	EventTicketMessageAdded   Type = "ticket_message_added"
	EventTicketClosed         Type = "ticket_closed"
	EventInvoiceStatusChanged Type = "invoice_status_changed"
	EventContactSubmitted     Type = "contact_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	ActorID   string    `json:"actor_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID string `json:"ticket_id"`
	Subject  string `json:"subject"`
}

// TicketMessageAddedPayload payload.
type TicketMessageAddedPayload struct {
	TicketID    string `json:"ticket_id"`
	MessageID   string `json:"message_id"`
	IsAdmin     bool   `json:"is_admin"`
	TextPreview string `json:"text_preview"`
}

// TicketClosedPayload payload.
type TicketClosedPayload struct {
	TicketID string `json:"ticket_id"`
}

// InvoiceStatusChangedPayload payload.
type InvoiceStatusChangedPayload struct {
	InvoiceID string               `json:"invoice_id"`
	OldStatus domain.InvoiceStatus `json:"old_status"`
	NewStatus domain.InvoiceStatus `json:"new_status"`
}

// ContactSubmittedPayload carries a contact form submission to the
// notification sink.
type ContactSubmittedPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
