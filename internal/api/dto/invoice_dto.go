package dto

import (
	"time"

	"github.com/wexa-dev/studio-api/internal/domain"
)

// CreateInvoiceRequest payload.
type CreateInvoiceRequest struct {
	UserID      string             `json:"user_id" validate:"required,uuid"`
	Title       string             `json:"title" validate:"required,min=2,max=200"`
	Amount      float64            `json:"amount" validate:"required,gt=0"`
	Type        domain.InvoiceType `json:"type" validate:"required,oneof=one_time monthly"`
	DueDate     time.Time          `json:"due_date" validate:"required"`
	Description *string            `json:"description" validate:"omitempty,max=5000"`
}

// UpdateInvoiceRequest carries a partial invoice update.
type UpdateInvoiceRequest struct {
	Title       *string               `json:"title" validate:"omitempty,min=2,max=200"`
	Amount      *float64              `json:"amount" validate:"omitempty,gt=0"`
	Type        *domain.InvoiceType   `json:"type" validate:"omitempty,oneof=one_time monthly"`
	Status      *domain.InvoiceStatus `json:"status" validate:"omitempty,oneof=pending paid cancelled"`
	DueDate     *time.Time            `json:"due_date"`
	Description *string               `json:"description" validate:"omitempty,max=5000"`
}

// InvoiceResponse is the billing record shape.
type InvoiceResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	OwnerName   string               `json:"owner_name"`
	OwnerEmail  string               `json:"owner_email"`
	Title       string               `json:"title"`
	Amount      float64              `json:"amount"`
	Type        domain.InvoiceType   `json:"type"`
	Status      domain.InvoiceStatus `json:"status"`
	DueDate     time.Time            `json:"due_date"`
	Description *string              `json:"description"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
