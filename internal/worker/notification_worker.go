// Package worker wires event subscriptions to their handlers.
package worker

import (
	"github.com/wexa-dev/studio-api/internal/events"
	"github.com/wexa-dev/studio-api/internal/service"
)

// StartNotificationWorker subscribes the notification service to the events
// it cares about. Handlers run synchronously on the dispatcher.
func StartNotificationWorker(dispatcher events.Dispatcher, notifications *service.NotificationService) {
	dispatcher.Subscribe(events.EventContactSubmitted, notifications.HandleContactSubmitted)
	dispatcher.Subscribe(events.EventTicketCreated, notifications.HandleTicketActivity)
	dispatcher.Subscribe(events.EventTicketMessageAdded, notifications.HandleTicketActivity)
	dispatcher.Subscribe(events.EventTicketClosed, notifications.HandleTicketActivity)
	dispatcher.Subscribe(events.EventInvoiceStatusChanged, notifications.HandleInvoiceStatusChanged)
}
