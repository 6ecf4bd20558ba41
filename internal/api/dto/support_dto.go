package dto

import (
	"time"

	"github.com/wexa-dev/studio-api/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject string `json:"subject" validate:"required,min=3,max=200"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

// AddMessageRequest payload.
type AddMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=5000"`
}

// MessageResponse represents one thread entry.
type MessageResponse struct {
	ID         string    `json:"id"`
	TicketID   string    `json:"ticket_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Text       string    `json:"text"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`
}

// TicketResponse provides a conversation with its thread.
type TicketResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"user_id"`
	OwnerName     string              `json:"owner_name"`
	OwnerEmail    string              `json:"owner_email"`
	Subject       string              `json:"subject"`
	Status        domain.TicketStatus `json:"status"`
	LastMessageAt time.Time           `json:"last_message_at"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Messages      []MessageResponse   `json:"messages"`
}
