package service

import (
	"context"
	"strings"

	"github.com/wexa-dev/studio-api/internal/domain"
	"github.com/wexa-dev/studio-api/internal/repository"
)

// CatalogService manages the public service and portfolio catalogs. Reads
// are open to everyone; writes are admin-guarded at the route level.
type CatalogService struct {
	services  repository.ServiceRepository
	portfolio repository.PortfolioRepository
}

// NewCatalogService constructs the service.
func NewCatalogService(services repository.ServiceRepository, portfolio repository.PortfolioRepository) *CatalogService {
	return &CatalogService{services: services, portfolio: portfolio}
}

// ListServices returns catalog entries in insertion order.
func (s *CatalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

// ServiceInput describes a catalog entry.
type ServiceInput struct {
	Title       string
	Description string
	Price       string
	IconName    string
}

// CreateService adds a catalog entry.
func (s *CatalogService) CreateService(ctx context.Context, input ServiceInput) (*domain.Service, error) {
	svc := &domain.Service{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Price:       strings.TrimSpace(input.Price),
		IconName:    strings.TrimSpace(input.IconName),
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// ServiceUpdateInput carries a partial catalog update; nil fields are left
// as-is.
type ServiceUpdateInput struct {
	Title       *string
	Description *string
	Price       *string
	IconName    *string
}

// UpdateService merges the input into a catalog entry.
func (s *CatalogService) UpdateService(ctx context.Context, id string, input ServiceUpdateInput) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "service")
	}

	if input.Title != nil {
		svc.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		svc.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		svc.Price = strings.TrimSpace(*input.Price)
	}
	if input.IconName != nil {
		svc.IconName = strings.TrimSpace(*input.IconName)
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, notFoundOr(err, "service")
	}
	return svc, nil
}

// DeleteService removes a catalog entry.
func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.services.Delete(ctx, id); err != nil {
		return notFoundOr(err, "service")
	}
	return nil
}

// ListPortfolio returns showcase entries newest first.
func (s *CatalogService) ListPortfolio(ctx context.Context) ([]domain.PortfolioItem, error) {
	return s.portfolio.List(ctx)
}

// PortfolioInput describes a showcase entry.
type PortfolioInput struct {
	Title       string
	Category    string
	Image       string
	Description string
	ProjectURL  *string
}

// CreatePortfolioItem adds a showcase entry.
func (s *CatalogService) CreatePortfolioItem(ctx context.Context, input PortfolioInput) (*domain.PortfolioItem, error) {
	item := &domain.PortfolioItem{
		Title:       strings.TrimSpace(input.Title),
		Category:    strings.TrimSpace(input.Category),
		Image:       strings.TrimSpace(input.Image),
		Description: strings.TrimSpace(input.Description),
		ProjectURL:  input.ProjectURL,
	}
	if err := s.portfolio.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// PortfolioUpdateInput carries a partial showcase update; nil fields are
// left as-is.
type PortfolioUpdateInput struct {
	Title       *string
	Category    *string
	Image       *string
	Description *string
	ProjectURL  *string
}

// UpdatePortfolioItem merges the input into a showcase entry.
func (s *CatalogService) UpdatePortfolioItem(ctx context.Context, id string, input PortfolioUpdateInput) (*domain.PortfolioItem, error) {
	item, err := s.portfolio.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "portfolio item")
	}

	if input.Title != nil {
		item.Title = strings.TrimSpace(*input.Title)
	}
	if input.Category != nil {
		item.Category = strings.TrimSpace(*input.Category)
	}
	if input.Image != nil {
		item.Image = strings.TrimSpace(*input.Image)
	}
	if input.Description != nil {
		item.Description = strings.TrimSpace(*input.Description)
	}
	if input.ProjectURL != nil {
		item.ProjectURL = input.ProjectURL
	}

	if err := s.portfolio.Update(ctx, item); err != nil {
		return nil, notFoundOr(err, "portfolio item")
	}
	return item, nil
}

// DeletePortfolioItem removes a showcase entry.
func (s *CatalogService) DeletePortfolioItem(ctx context.Context, id string) error {
	if err := s.portfolio.Delete(ctx, id); err != nil {
		return notFoundOr(err, "portfolio item")
	}
	return nil
}
