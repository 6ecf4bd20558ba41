package domain

import "time"

// Service is a public catalog entry describing offered work.
type Service struct {
	ID          string
	Title       string
	Description string
	Price       string
	IconName    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PortfolioItem is a public showcase entry.
type PortfolioItem struct {
	ID          string
	Title       string
	Category    string
	Image       string
	Description string
	ProjectURL  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
