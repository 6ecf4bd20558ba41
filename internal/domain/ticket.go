package domain

import "time"

// TicketStatus enumerates the ticket lifecycle states.
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "open"
	TicketStatusClosed TicketStatus = "closed"
)

// Ticket is a support conversation header owned by one user. LastMessageAt
// tracks the creation time of the newest message and never decreases.
type Ticket struct {
	ID            string
	UserID        string
	Subject       string
	Status        TicketStatus
	LastMessageAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Denormalized owner summary, populated by list queries.
	OwnerName  string
	OwnerEmail string

	// Messages holds the thread ordered by creation time ascending when the
	// ticket was loaded through the support service.
	Messages []Message
}

// Message is one entry in a ticket's conversation. IsAdmin is a snapshot of
// the sender's role at send time and is never recomputed from the user row.
type Message struct {
	ID        string
	TicketID  string
	SenderID  string
	Text      string
	IsAdmin   bool
	CreatedAt time.Time

	// SenderName is joined in by list queries for display.
	SenderName string
}
