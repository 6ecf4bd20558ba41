package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wexa-dev/studio-api/internal/domain"
)

// PortfolioRepository manages public showcase entries.
type PortfolioRepository interface {
	Create(ctx context.Context, item *domain.PortfolioItem) error
	Update(ctx context.Context, item *domain.PortfolioItem) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.PortfolioItem, error)
	List(ctx context.Context) ([]domain.PortfolioItem, error)
}

type portfolioRepository struct {
	pool *pgxpool.Pool
}

// NewPortfolioRepository builds repository.
func NewPortfolioRepository(pool *pgxpool.Pool) PortfolioRepository {
	return &portfolioRepository{pool: pool}
}

func (r *portfolioRepository) Create(ctx context.Context, item *domain.PortfolioItem) error {
	const query = `
        INSERT INTO portfolio_items (title, category, image, description, project_url)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		item.Title,
		item.Category,
		item.Image,
		item.Description,
		item.ProjectURL,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *portfolioRepository) Update(ctx context.Context, item *domain.PortfolioItem) error {
	const query = `
        UPDATE portfolio_items SET title=$1, category=$2, image=$3, description=$4,
            project_url=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		item.Title,
		item.Category,
		item.Image,
		item.Description,
		item.ProjectURL,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM portfolio_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *portfolioRepository) GetByID(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	const query = `
        SELECT id, title, category, image, description, project_url, created_at, updated_at
        FROM portfolio_items WHERE id=$1`

	var item domain.PortfolioItem
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Category,
		&item.Image,
		&item.Description,
		&item.ProjectURL,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *portfolioRepository) List(ctx context.Context) ([]domain.PortfolioItem, error) {
	const query = `
        SELECT id, title, category, image, description, project_url, created_at, updated_at
        FROM portfolio_items ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PortfolioItem
	for rows.Next() {
		var item domain.PortfolioItem
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Category,
			&item.Image,
			&item.Description,
			&item.ProjectURL,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
