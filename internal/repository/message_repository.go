package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wexa-dev/studio-api/internal/domain"
)

// MessageRepository reads ticket threads. Writes go through TicketRepository
// so they stay transactional with the lastMessageAt bump.
type MessageRepository interface {
	ListByTicket(ctx context.Context, ticketID string) ([]domain.Message, error)
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository builds repository.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

func (r *messageRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.Message, error) {
	const query = `
        SELECT m.id, m.ticket_id, m.sender_id, m.text, m.is_admin, m.created_at, u.name
        FROM messages m JOIN users u ON u.id = m.sender_id
        WHERE m.ticket_id=$1 ORDER BY m.created_at ASC`
	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID,
			&msg.TicketID,
			&msg.SenderID,
			&msg.Text,
			&msg.IsAdmin,
			&msg.CreatedAt,
			&msg.SenderName,
		); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}
