package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wexa-dev/studio-api/internal/domain"
)

func newSettingsFixture() (*SettingsService, *stubSettingRepo) {
	repo := newStubSettingRepo()
	// nil cache: the service must work without Redis.
	svc := NewSettingsService(repo, nil, nil)
	return svc, repo
}

func seedTelegramConfig(t *testing.T, svc *SettingsService) {
	t.Helper()
	_, err := svc.Upsert(context.Background(), domain.SettingKeyTelegram,
		json.RawMessage(`{"isEnabled":true,"botToken":"123:secret","chatId":"-100200300"}`))
	require.NoError(t, err)
}

func TestGetAllRedactsForAnonymous(t *testing.T) {
	svc, _ := newSettingsFixture()
	seedTelegramConfig(t, svc)

	view, err := svc.GetAll(context.Background(), nil)
	require.NoError(t, err)

	var cfg map[string]any
	require.NoError(t, json.Unmarshal(view[domain.SettingKeyTelegram], &cfg))
	assert.Equal(t, true, cfg["isEnabled"])
	assert.NotContains(t, cfg, "botToken")
	assert.NotContains(t, cfg, "chatId")
}

func TestGetAllRedactsForClients(t *testing.T) {
	svc, _ := newSettingsFixture()
	seedTelegramConfig(t, svc)

	view, err := svc.GetAll(context.Background(), clientUser("user-1", "alice"))
	require.NoError(t, err)

	var cfg map[string]any
	require.NoError(t, json.Unmarshal(view[domain.SettingKeyTelegram], &cfg))
	assert.NotContains(t, cfg, "botToken")
}

func TestGetAllRawForAdmins(t *testing.T) {
	svc, _ := newSettingsFixture()
	seedTelegramConfig(t, svc)

	view, err := svc.GetAll(context.Background(), adminUser())
	require.NoError(t, err)

	var cfg map[string]any
	require.NoError(t, json.Unmarshal(view[domain.SettingKeyTelegram], &cfg))
	assert.Equal(t, "123:secret", cfg["botToken"])
	assert.Equal(t, "-100200300", cfg["chatId"])
}

func TestGetAllPassesUnknownKeysThrough(t *testing.T) {
	svc, _ := newSettingsFixture()

	_, err := svc.Upsert(context.Background(), "site_banner",
		json.RawMessage(`{"text":"Summer sale","enabled":true}`))
	require.NoError(t, err)

	view, err := svc.GetAll(context.Background(), nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"Summer sale","enabled":true}`, string(view["site_banner"]))
}

func TestUpsertRejectsEmptyKey(t *testing.T) {
	svc, _ := newSettingsFixture()

	_, err := svc.Upsert(context.Background(), "  ", json.RawMessage(`{}`))
	requireDomainCode(t, err, "VALIDATION_FAILED")
}

func TestUpsertRejectsMalformedJSON(t *testing.T) {
	svc, _ := newSettingsFixture()

	_, err := svc.Upsert(context.Background(), "site_banner", json.RawMessage(`{"broken"`))
	requireDomainCode(t, err, "VALIDATION_FAILED")
}

func TestUpsertAcceptsScalarValues(t *testing.T) {
	svc, _ := newSettingsFixture()

	_, err := svc.Upsert(context.Background(), "maintenance_mode", json.RawMessage(`false`))
	require.NoError(t, err)

	view, err := svc.GetAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "false", string(view["maintenance_mode"]))
}
