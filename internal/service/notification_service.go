package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/wexa-dev/studio-api/internal/domain"
	"github.com/wexa-dev/studio-api/internal/events"
	"github.com/wexa-dev/studio-api/internal/notify"
	"github.com/wexa-dev/studio-api/internal/observability"
	"github.com/wexa-dev/studio-api/internal/repository"
)

// NotificationService reacts to domain events. Contact submissions fan out
// to the configured Telegram chat; everything else is logged for operators.
// Delivery is best effort and never fails the originating operation.
type NotificationService struct {
	settings repository.SettingRepository
	telegram *notify.TelegramClient
	logger   *zap.Logger
}

// NewNotificationService constructs the service.
func NewNotificationService(settings repository.SettingRepository, telegram *notify.TelegramClient, logger *zap.Logger) *NotificationService {
	return &NotificationService{settings: settings, telegram: telegram, logger: logger}
}

// HandleContactSubmitted delivers a contact form submission to Telegram. The
// chat-bot configuration lives in the settings store; a missing or disabled
// config skips delivery silently.
func (s *NotificationService) HandleContactSubmitted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ContactSubmittedPayload)
	if !ok {
		s.logger.Warn("unexpected contact event payload", zap.String("event_id", event.ID))
		return nil
	}

	cfg, err := s.telegramConfig(ctx)
	if err != nil {
		observability.NotificationsTotal.WithLabelValues("failed").Inc()
		s.logger.Warn("unable to load chat-bot config", zap.Error(err))
		return nil
	}
	if !cfg.Configured() {
		observability.NotificationsTotal.WithLabelValues("skipped").Inc()
		s.logger.Debug("chat-bot notifications disabled, skipping contact delivery")
		return nil
	}

	text := notify.ContactText(payload.Name, payload.Email, payload.Subject, payload.Message)
	if err := s.telegram.SendMessage(ctx, cfg, text); err != nil {
		observability.NotificationsTotal.WithLabelValues("failed").Inc()
		s.logger.Warn("contact notification delivery failed", zap.Error(err))
		return nil
	}

	observability.NotificationsTotal.WithLabelValues("sent").Inc()
	s.logger.Info("contact notification delivered",
		zap.String("event_id", event.ID),
		zap.String("from", payload.Email),
	)
	return nil
}

// HandleTicketActivity records support ticket lifecycle events.
func (s *NotificationService) HandleTicketActivity(_ context.Context, event events.Event) error {
	s.logger.Info("ticket activity",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("actor_id", event.ActorID),
	)
	return nil
}

// HandleInvoiceStatusChanged records invoice lifecycle transitions.
func (s *NotificationService) HandleInvoiceStatusChanged(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.InvoiceStatusChangedPayload)
	if !ok {
		return nil
	}
	s.logger.Info("invoice status changed",
		zap.String("event_id", event.ID),
		zap.String("invoice_id", payload.InvoiceID),
		zap.String("old_status", string(payload.OldStatus)),
		zap.String("new_status", string(payload.NewStatus)),
	)
	return nil
}

func (s *NotificationService) telegramConfig(ctx context.Context) (notify.TelegramConfig, error) {
	setting, err := s.settings.Get(ctx, domain.SettingKeyTelegram)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No stored config means notifications are simply off.
			return notify.TelegramConfig{}, nil
		}
		return notify.TelegramConfig{}, err
	}

	var cfg notify.TelegramConfig
	if err := json.Unmarshal(setting.Value, &cfg); err != nil {
		return notify.TelegramConfig{}, err
	}
	return cfg, nil
}
