package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wexa-dev/studio-api/internal/events"
)

// ContactService accepts public contact form submissions. Delivery to the
// notification sink happens off the request path: the caller gets an
// immediate acknowledgement regardless of downstream outcome.
type ContactService struct {
	dispatcher     events.Dispatcher
	deliverTimeout time.Duration
}

// NewContactService constructs the service.
func NewContactService(dispatcher events.Dispatcher, deliverTimeout time.Duration) *ContactService {
	return &ContactService{dispatcher: dispatcher, deliverTimeout: deliverTimeout}
}

// ContactInput is a contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit publishes the submission asynchronously. The event carries its own
// deadline because the HTTP request context ends before delivery does.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) {
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventContactSubmitted,
		Timestamp: time.Now(),
		Payload: events.ContactSubmittedPayload{
			Name:    strings.TrimSpace(input.Name),
			Email:   strings.TrimSpace(input.Email),
			Subject: strings.TrimSpace(input.Subject),
			Message: strings.TrimSpace(input.Message),
		},
	}

	if s.dispatcher == nil {
		return
	}
	go func() {
		deliverCtx, cancel := context.WithTimeout(context.Background(), s.deliverTimeout)
		defer cancel()
		_ = s.dispatcher.Publish(deliverCtx, event)
	}()
}
