package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wexa-dev/studio-api/internal/config"
	"github.com/wexa-dev/studio-api/internal/domain"
)

type stubServiceCatalogRepo struct {
	seq      int
	services []domain.Service
}

func (r *stubServiceCatalogRepo) Create(_ context.Context, svc *domain.Service) error {
	r.seq++
	svc.ID = fmt.Sprintf("svc-%d", r.seq)
	r.services = append(r.services, *svc)
	return nil
}

func (r *stubServiceCatalogRepo) Update(context.Context, *domain.Service) error { return nil }
func (r *stubServiceCatalogRepo) Delete(context.Context, string) error          { return nil }
func (r *stubServiceCatalogRepo) GetByID(context.Context, string) (*domain.Service, error) {
	return nil, nil
}

func (r *stubServiceCatalogRepo) List(context.Context) ([]domain.Service, error) {
	return append([]domain.Service{}, r.services...), nil
}

func (r *stubServiceCatalogRepo) Count(context.Context) (int, error) {
	return len(r.services), nil
}

func newSeederFixture() (*Seeder, *stubUserRepo, *stubServiceCatalogRepo) {
	users := newStubUserRepo()
	services := &stubServiceCatalogRepo{}
	seeder := NewSeeder(users, services, config.SeedConfig{
		Enabled:       true,
		AdminName:     "Administrator",
		AdminEmail:    "admin@example.com",
		AdminPassword: "changeme",
	}, config.AuthConfig{BcryptCost: 4}, zap.NewNop())
	return seeder, users, services
}

func TestSeedCreatesAdminAndCatalogOnEmptyDatabase(t *testing.T) {
	seeder, users, services := newSeederFixture()

	require.NoError(t, seeder.Run(context.Background()))

	count, err := users.CountByRole(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	admin, err := users.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "changeme", admin.PasswordHash, "password must be stored hashed")

	assert.Len(t, services.services, 6)
}

func TestSeedIsIdempotent(t *testing.T) {
	seeder, users, services := newSeederFixture()

	require.NoError(t, seeder.Run(context.Background()))
	require.NoError(t, seeder.Run(context.Background()))

	count, err := users.CountByRole(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, services.services, 6)
}

func TestSeedSkipsWhenDisabled(t *testing.T) {
	users := newStubUserRepo()
	services := &stubServiceCatalogRepo{}
	seeder := NewSeeder(users, services, config.SeedConfig{Enabled: false}, config.AuthConfig{BcryptCost: 4}, zap.NewNop())

	require.NoError(t, seeder.Run(context.Background()))

	count, err := users.CountByRole(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, services.services)
}

func TestSeedSkipsAdminWhenOneExists(t *testing.T) {
	seeder, users, _ := newSeederFixture()

	existing := &domain.User{Name: "Boss", Email: "boss@example.com", Role: domain.RoleAdmin}
	require.NoError(t, users.Create(context.Background(), existing))

	require.NoError(t, seeder.Run(context.Background()))

	_, err := users.GetByEmail(context.Background(), "admin@example.com")
	assert.Error(t, err, "no second admin is created")
}
