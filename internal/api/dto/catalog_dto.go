package dto

import "time"

// CreateServiceRequest payload.
type CreateServiceRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"required,max=2000"`
	Price       string `json:"price" validate:"required,max=100"`
	IconName    string `json:"icon_name" validate:"required,max=100"`
}

// UpdateServiceRequest carries a partial catalog update.
type UpdateServiceRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Price       *string `json:"price" validate:"omitempty,max=100"`
	IconName    *string `json:"icon_name" validate:"omitempty,max=100"`
}

// ServiceResponse is a catalog entry.
type ServiceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	IconName    string    `json:"icon_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatePortfolioRequest payload.
type CreatePortfolioRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Category    string  `json:"category" validate:"required,max=100"`
	Image       string  `json:"image" validate:"required,url"`
	Description string  `json:"description" validate:"required,max=2000"`
	ProjectURL  *string `json:"project_url" validate:"omitempty,url"`
}

// UpdatePortfolioRequest carries a partial showcase update.
type UpdatePortfolioRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=200"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Image       *string `json:"image" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ProjectURL  *string `json:"project_url" validate:"omitempty,url"`
}

// PortfolioResponse is a showcase entry.
type PortfolioResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	ProjectURL  *string   `json:"project_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
