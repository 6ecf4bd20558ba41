package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/wexa-dev/studio-api/internal/auth"
	"github.com/wexa-dev/studio-api/internal/config"
	"github.com/wexa-dev/studio-api/internal/domain"
	"github.com/wexa-dev/studio-api/internal/repository"
)

// Seeder provisions first-run data: the initial admin account and the
// default service catalog. Both steps are idempotent and skip when data
// already exists.
type Seeder struct {
	users    repository.UserRepository
	services repository.ServiceRepository
	cfg      config.SeedConfig
	authCfg  config.AuthConfig
	logger   *zap.Logger
}

// NewSeeder constructs the seeder.
func NewSeeder(users repository.UserRepository, services repository.ServiceRepository, cfg config.SeedConfig, authCfg config.AuthConfig, logger *zap.Logger) *Seeder {
	return &Seeder{users: users, services: services, cfg: cfg, authCfg: authCfg, logger: logger}
}

// Run applies all seed steps.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.Enabled {
		return nil
	}
	if err := s.seedAdmin(ctx); err != nil {
		return err
	}
	return s.seedServices(ctx)
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	count, err := s.users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(s.cfg.AdminPassword, s.authCfg.BcryptCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Name:         s.cfg.AdminName,
		Email:        s.cfg.AdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("seeded initial admin account", zap.String("email", admin.Email))
	return nil
}

func (s *Seeder) seedServices(ctx context.Context) error {
	count, err := s.services.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []domain.Service{
		{
			Title:       "Web Development",
			Description: "Design and build of fast, modern websites and web applications.",
			Price:       "from $1,500",
			IconName:    "globe",
		},
		{
			Title:       "Mobile Applications",
			Description: "Native and cross-platform apps for iOS and Android.",
			Price:       "from $3,000",
			IconName:    "smartphone",
		},
		{
			Title:       "UI/UX Design",
			Description: "Interfaces, prototypes, and design systems centered on the user.",
			Price:       "from $800",
			IconName:    "pen-tool",
		},
		{
			Title:       "E-commerce",
			Description: "Online stores with payments, catalogs, and order management.",
			Price:       "from $2,500",
			IconName:    "shopping-cart",
		},
		{
			Title:       "SEO Optimization",
			Description: "Technical and content optimization to grow organic traffic.",
			Price:       "from $500",
			IconName:    "trending-up",
		},
		{
			Title:       "Technical Support",
			Description: "Ongoing maintenance, monitoring, and improvement of live products.",
			Price:       "from $300/mo",
			IconName:    "life-buoy",
		},
	}
	for i := range defaults {
		if err := s.services.Create(ctx, &defaults[i]); err != nil {
			return err
		}
	}
	s.logger.Info("seeded default service catalog", zap.Int("count", len(defaults)))
	return nil
}
