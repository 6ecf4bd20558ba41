package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wexa-dev/studio-api/internal/domain"
	"github.com/wexa-dev/studio-api/internal/events"
)

func newInvoiceFixture(t *testing.T) (*InvoiceService, *stubUserRepo, *recordingDispatcher, *domain.User) {
	t.Helper()
	users := newStubUserRepo()
	owner := &domain.User{Name: "Alice", Email: "alice@example.com", Role: domain.RoleClient}
	require.NoError(t, users.Create(context.Background(), owner))

	dispatcher := &recordingDispatcher{}
	svc := NewInvoiceService(InvoiceDependencies{
		InvoiceRepo: newStubInvoiceRepo(),
		UserRepo:    users,
		Dispatcher:  dispatcher,
	})
	return svc, users, dispatcher, owner
}

func createPendingInvoice(t *testing.T, svc *InvoiceService, ownerID string) *domain.Invoice {
	t.Helper()
	invoice, err := svc.CreateInvoice(context.Background(), InvoiceCreateInput{
		UserID:  ownerID,
		Title:   "Website build",
		Amount:  1500,
		Type:    domain.InvoiceTypeOneTime,
		DueDate: time.Now().Add(14 * 24 * time.Hour),
	})
	require.NoError(t, err)
	return invoice
}

func TestCreateInvoiceStartsPending(t *testing.T) {
	svc, _, _, owner := newInvoiceFixture(t)

	invoice := createPendingInvoice(t, svc, owner.ID)
	assert.Equal(t, domain.InvoiceStatusPending, invoice.Status)
	assert.Equal(t, owner.Name, invoice.OwnerName)
}

func TestCreateInvoiceUnknownUserNotFound(t *testing.T) {
	svc, _, _, _ := newInvoiceFixture(t)

	_, err := svc.CreateInvoice(context.Background(), InvoiceCreateInput{
		UserID:  "ghost",
		Title:   "Website build",
		Amount:  1500,
		Type:    domain.InvoiceTypeOneTime,
		DueDate: time.Now(),
	})
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestClientMarksOwnPendingInvoicePaid(t *testing.T) {
	svc, _, dispatcher, owner := newInvoiceFixture(t)
	invoice := createPendingInvoice(t, svc, owner.ID)

	paid := domain.InvoiceStatusPaid
	updated, err := svc.UpdateInvoice(context.Background(), owner, invoice.ID, InvoiceUpdateInput{Status: &paid})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, updated.Status)

	published := dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventInvoiceStatusChanged, published[0].Type)
}

func TestClientCannotCancelInvoice(t *testing.T) {
	svc, _, _, owner := newInvoiceFixture(t)
	invoice := createPendingInvoice(t, svc, owner.ID)

	cancelled := domain.InvoiceStatusCancelled
	_, err := svc.UpdateInvoice(context.Background(), owner, invoice.ID, InvoiceUpdateInput{Status: &cancelled})
	requireDomainCode(t, err, "FORBIDDEN")
}

func TestClientCannotEditInvoiceFields(t *testing.T) {
	svc, _, _, owner := newInvoiceFixture(t)
	invoice := createPendingInvoice(t, svc, owner.ID)

	paid := domain.InvoiceStatusPaid
	amount := 1.0
	_, err := svc.UpdateInvoice(context.Background(), owner, invoice.ID, InvoiceUpdateInput{
		Status: &paid,
		Amount: &amount,
	})
	requireDomainCode(t, err, "FORBIDDEN")
}

func TestClientCannotTouchForeignInvoice(t *testing.T) {
	svc, users, _, owner := newInvoiceFixture(t)
	invoice := createPendingInvoice(t, svc, owner.ID)

	stranger := &domain.User{Name: "Bob", Email: "bob@example.com", Role: domain.RoleClient}
	require.NoError(t, users.Create(context.Background(), stranger))

	paid := domain.InvoiceStatusPaid
	_, err := svc.UpdateInvoice(context.Background(), stranger, invoice.ID, InvoiceUpdateInput{Status: &paid})
	requireDomainCode(t, err, "FORBIDDEN")
}

func TestPaidInvoiceIsTerminal(t *testing.T) {
	svc, _, _, owner := newInvoiceFixture(t)
	invoice := createPendingInvoice(t, svc, owner.ID)

	paid := domain.InvoiceStatusPaid
	_, err := svc.UpdateInvoice(context.Background(), adminUser(), invoice.ID, InvoiceUpdateInput{Status: &paid})
	require.NoError(t, err)

	pending := domain.InvoiceStatusPending
	_, err = svc.UpdateInvoice(context.Background(), adminUser(), invoice.ID, InvoiceUpdateInput{Status: &pending})
	requireDomainCode(t, err, "CONFLICT")

	cancelled := domain.InvoiceStatusCancelled
	_, err = svc.UpdateInvoice(context.Background(), adminUser(), invoice.ID, InvoiceUpdateInput{Status: &cancelled})
	requireDomainCode(t, err, "CONFLICT")
}

func TestAdminCancelsPendingInvoice(t *testing.T) {
	svc, _, _, owner := newInvoiceFixture(t)
	invoice := createPendingInvoice(t, svc, owner.ID)

	cancelled := domain.InvoiceStatusCancelled
	updated, err := svc.UpdateInvoice(context.Background(), adminUser(), invoice.ID, InvoiceUpdateInput{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusCancelled, updated.Status)
}

func TestAdminEditsFieldsWithoutStatusChange(t *testing.T) {
	svc, _, dispatcher, owner := newInvoiceFixture(t)
	invoice := createPendingInvoice(t, svc, owner.ID)

	title := "Website build, phase 2"
	updated, err := svc.UpdateInvoice(context.Background(), adminUser(), invoice.ID, InvoiceUpdateInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Empty(t, dispatcher.published(), "no status change, no event")
}

func TestListInvoicesScopedByOwner(t *testing.T) {
	svc, users, _, owner := newInvoiceFixture(t)
	createPendingInvoice(t, svc, owner.ID)

	other := &domain.User{Name: "Bob", Email: "bob@example.com", Role: domain.RoleClient}
	require.NoError(t, users.Create(context.Background(), other))
	createPendingInvoice(t, svc, other.ID)

	mine, err := svc.ListInvoices(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, owner.ID, mine[0].UserID)

	all, err := svc.ListInvoices(context.Background(), adminUser())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
