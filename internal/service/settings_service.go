package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wexa-dev/studio-api/internal/domain"
	"github.com/wexa-dev/studio-api/internal/repository"
	apperrors "github.com/wexa-dev/studio-api/pkg/util"
)

const (
	publicSettingsCacheKey = "settings:public"
	publicSettingsCacheTTL = 60 * time.Second
)

// sensitiveSettingFields lists per-key JSON object fields that are stripped
// from the public view.
var sensitiveSettingFields = map[string][]string{
	domain.SettingKeyTelegram: {"botToken", "chatId"},
}

// SettingsService serves the key to arbitrary-JSON settings store. Admin
// readers get the raw values; everyone else gets the public view with
// sensitive fields removed. The public view is cached in Redis and the
// service degrades to the database when the cache is unreachable.
type SettingsService struct {
	settings repository.SettingRepository
	cache    *redis.Client
	logger   *zap.Logger
}

// NewSettingsService constructs the service. cache may be nil.
func NewSettingsService(settings repository.SettingRepository, cache *redis.Client, logger *zap.Logger) *SettingsService {
	return &SettingsService{settings: settings, cache: cache, logger: logger}
}

// GetAll returns every setting keyed by name. requester may be nil for
// anonymous callers, who receive the redacted public view.
func (s *SettingsService) GetAll(ctx context.Context, requester *domain.User) (map[string]json.RawMessage, error) {
	if requester != nil && requester.IsAdmin() {
		return s.loadAll(ctx, false)
	}

	if cached := s.cachedPublicView(ctx); cached != nil {
		return cached, nil
	}

	view, err := s.loadAll(ctx, true)
	if err != nil {
		return nil, err
	}
	s.storePublicView(ctx, view)
	return view, nil
}

// Upsert stores a setting value and invalidates the cached public view.
func (s *SettingsService) Upsert(ctx context.Context, key string, value json.RawMessage) (*domain.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, apperrors.NewValidationError("setting key must not be empty", nil)
	}
	if !json.Valid(value) {
		return nil, apperrors.NewValidationError("setting value must be valid JSON", nil)
	}

	setting := &domain.Setting{Key: key, Value: value}
	if err := s.settings.Upsert(ctx, setting); err != nil {
		return nil, err
	}
	s.invalidatePublicView(ctx)
	return setting, nil
}

func (s *SettingsService) loadAll(ctx context.Context, redact bool) (map[string]json.RawMessage, error) {
	settings, err := s.settings.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]json.RawMessage, len(settings))
	for _, setting := range settings {
		value := setting.Value
		if redact {
			value = redactSetting(setting.Key, value)
		}
		result[setting.Key] = value
	}
	return result, nil
}

// redactSetting strips sensitive fields from JSON object values. Non-object
// values and unknown keys pass through unchanged.
func redactSetting(key string, value json.RawMessage) json.RawMessage {
	fields, ok := sensitiveSettingFields[key]
	if !ok {
		return value
	}

	var obj map[string]any
	if err := json.Unmarshal(value, &obj); err != nil {
		return value
	}
	for _, field := range fields {
		delete(obj, field)
	}
	redacted, err := json.Marshal(obj)
	if err != nil {
		return value
	}
	return redacted
}

func (s *SettingsService) cachedPublicView(ctx context.Context) map[string]json.RawMessage {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, publicSettingsCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var view map[string]json.RawMessage
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil
	}
	return view
}

func (s *SettingsService) storePublicView(ctx context.Context, view map[string]json.RawMessage) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, publicSettingsCacheKey, raw, publicSettingsCacheTTL).Err(); err != nil && s.logger != nil {
		s.logger.Debug("settings cache write failed", zap.Error(err))
	}
}

func (s *SettingsService) invalidatePublicView(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, publicSettingsCacheKey).Err(); err != nil && s.logger != nil {
		s.logger.Debug("settings cache invalidation failed", zap.Error(err))
	}
}
