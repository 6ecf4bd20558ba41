package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wexa-dev/studio-api/internal/domain"
)

// TicketRepository encapsulates ticket persistence. The two multi-row writes
// of the support subsystem (ticket + first message, message + lastMessageAt
// bump) run inside transactions here so a partial failure can never leave an
// orphaned ticket or a stale activity timestamp.
type TicketRepository interface {
	CreateWithInitialMessage(ctx context.Context, ticket *domain.Ticket, msg *domain.Message) error
	AppendMessage(ctx context.Context, ticket *domain.Ticket, msg *domain.Message) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context, ownerID *string) ([]domain.Ticket, error)
	SetStatus(ctx context.Context, id string, status domain.TicketStatus) error
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) CreateWithInitialMessage(ctx context.Context, ticket *domain.Ticket, msg *domain.Message) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insertTicket = `
        INSERT INTO tickets (user_id, subject, status)
        VALUES ($1, $2, $3)
        RETURNING id, last_message_at, created_at, updated_at`
	if err := tx.QueryRow(ctx, insertTicket,
		ticket.UserID,
		ticket.Subject,
		ticket.Status,
	).Scan(&ticket.ID, &ticket.LastMessageAt, &ticket.CreatedAt, &ticket.UpdatedAt); err != nil {
		return err
	}

	msg.TicketID = ticket.ID
	if err := insertMessage(ctx, tx, msg); err != nil {
		return err
	}
	if err := touchTicket(ctx, tx, ticket.ID, msg); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	ticket.LastMessageAt = msg.CreatedAt
	return nil
}

func (r *ticketRepository) AppendMessage(ctx context.Context, ticket *domain.Ticket, msg *domain.Message) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	msg.TicketID = ticket.ID
	if err := insertMessage(ctx, tx, msg); err != nil {
		return err
	}
	if err := touchTicket(ctx, tx, ticket.ID, msg); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	ticket.LastMessageAt = msg.CreatedAt
	return nil
}

func insertMessage(ctx context.Context, tx pgx.Tx, msg *domain.Message) error {
	const query = `
        INSERT INTO messages (ticket_id, sender_id, text, is_admin)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`
	return tx.QueryRow(ctx, query,
		msg.TicketID,
		msg.SenderID,
		msg.Text,
		msg.IsAdmin,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func touchTicket(ctx context.Context, tx pgx.Tx, ticketID string, msg *domain.Message) error {
	const query = `
        UPDATE tickets SET last_message_at=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := tx.Exec(ctx, query, msg.CreatedAt, ticketID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `
        SELECT t.id, t.user_id, t.subject, t.status, t.last_message_at, t.created_at, t.updated_at,
               u.name, u.email
        FROM tickets t JOIN users u ON u.id = t.user_id
        WHERE t.id=$1`

	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.UserID,
		&ticket.Subject,
		&ticket.Status,
		&ticket.LastMessageAt,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.OwnerName,
		&ticket.OwnerEmail,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// List returns tickets ordered by last activity, newest first. A nil ownerID
// returns all tickets (admin view).
func (r *ticketRepository) List(ctx context.Context, ownerID *string) ([]domain.Ticket, error) {
	const base = `
        SELECT t.id, t.user_id, t.subject, t.status, t.last_message_at, t.created_at, t.updated_at,
               u.name, u.email
        FROM tickets t JOIN users u ON u.id = t.user_id`

	var (
		rows pgx.Rows
		err  error
	)
	if ownerID != nil {
		rows, err = r.pool.Query(ctx, base+` WHERE t.user_id=$1 ORDER BY t.last_message_at DESC`, *ownerID)
	} else {
		rows, err = r.pool.Query(ctx, base+` ORDER BY t.last_message_at DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.UserID,
			&ticket.Subject,
			&ticket.Status,
			&ticket.LastMessageAt,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
			&ticket.OwnerName,
			&ticket.OwnerEmail,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

func (r *ticketRepository) SetStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE tickets SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
