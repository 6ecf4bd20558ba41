package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wexa-dev/studio-api/internal/domain"
)

// InvoiceRepository encapsulates invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context, ownerID *string) ([]domain.Invoice, error)
}

type invoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository instantiates repository.
func NewInvoiceRepository(pool *pgxpool.Pool) InvoiceRepository {
	return &invoiceRepository{pool: pool}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	const query = `
        INSERT INTO invoices (user_id, title, amount, type, status, due_date, description)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		invoice.UserID,
		invoice.Title,
		invoice.Amount,
		invoice.Type,
		invoice.Status,
		invoice.DueDate,
		invoice.Description,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	const query = `
        UPDATE invoices SET user_id=$1, title=$2, amount=$3, type=$4, status=$5,
            due_date=$6, description=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		invoice.UserID,
		invoice.Title,
		invoice.Amount,
		invoice.Type,
		invoice.Status,
		invoice.DueDate,
		invoice.Description,
		invoice.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	const query = `
        SELECT i.id, i.user_id, i.title, i.amount, i.type, i.status, i.due_date, i.description,
               i.created_at, i.updated_at, u.name, u.email
        FROM invoices i JOIN users u ON u.id = i.user_id
        WHERE i.id=$1`

	var invoice domain.Invoice
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.UserID,
		&invoice.Title,
		&invoice.Amount,
		&invoice.Type,
		&invoice.Status,
		&invoice.DueDate,
		&invoice.Description,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
		&invoice.OwnerName,
		&invoice.OwnerEmail,
	); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// List returns invoices newest first. A nil ownerID returns all invoices.
func (r *invoiceRepository) List(ctx context.Context, ownerID *string) ([]domain.Invoice, error) {
	const base = `
        SELECT i.id, i.user_id, i.title, i.amount, i.type, i.status, i.due_date, i.description,
               i.created_at, i.updated_at, u.name, u.email
        FROM invoices i JOIN users u ON u.id = i.user_id`

	var (
		rows pgx.Rows
		err  error
	)
	if ownerID != nil {
		rows, err = r.pool.Query(ctx, base+` WHERE i.user_id=$1 ORDER BY i.created_at DESC`, *ownerID)
	} else {
		rows, err = r.pool.Query(ctx, base+` ORDER BY i.created_at DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Invoice
	for rows.Next() {
		var invoice domain.Invoice
		if err := rows.Scan(
			&invoice.ID,
			&invoice.UserID,
			&invoice.Title,
			&invoice.Amount,
			&invoice.Type,
			&invoice.Status,
			&invoice.DueDate,
			&invoice.Description,
			&invoice.CreatedAt,
			&invoice.UpdatedAt,
			&invoice.OwnerName,
			&invoice.OwnerEmail,
		); err != nil {
			return nil, err
		}
		result = append(result, invoice)
	}
	return result, rows.Err()
}
