package domain

import "time"

// InvoiceStatus enumerates billing states.
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// InvoiceType distinguishes one-off work from recurring billing.
type InvoiceType string

const (
	InvoiceTypeOneTime InvoiceType = "one_time"
	InvoiceTypeMonthly InvoiceType = "monthly"
)

// Invoice is a billing record owned by one user.
type Invoice struct {
	ID          string
	UserID      string
	Title       string
	Amount      float64
	Type        InvoiceType
	Status      InvoiceStatus
	DueDate     time.Time
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	OwnerName  string
	OwnerEmail string
}

// CanTransition reports whether an invoice status change is legal. Paid and
// cancelled are terminal.
func CanTransition(from, to InvoiceStatus) bool {
	if from != InvoiceStatusPending {
		return false
	}
	return to == InvoiceStatusPaid || to == InvoiceStatusCancelled
}
