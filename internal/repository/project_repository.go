package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wexa-dev/studio-api/internal/domain"
)

// ProjectRepository encapsulates project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, clientID *string) ([]domain.Project, error)
}

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository instantiates repository.
func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &projectRepository{pool: pool}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	const query = `
        INSERT INTO projects (client_id, name, status, progress, deadline, cost, description)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		project.ClientID,
		project.Name,
		project.Status,
		project.Progress,
		project.Deadline,
		project.Cost,
		project.Description,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	const query = `
        UPDATE projects SET client_id=$1, name=$2, status=$3, progress=$4, deadline=$5,
            cost=$6, description=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		project.ClientID,
		project.Name,
		project.Status,
		project.Progress,
		project.Deadline,
		project.Cost,
		project.Description,
		project.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	const query = `
        SELECT p.id, p.client_id, p.name, p.status, p.progress, p.deadline, p.cost, p.description,
               p.created_at, p.updated_at, u.name, u.email, u.avatar
        FROM projects p JOIN users u ON u.id = p.client_id
        WHERE p.id=$1`

	var project domain.Project
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.ClientID,
		&project.Name,
		&project.Status,
		&project.Progress,
		&project.Deadline,
		&project.Cost,
		&project.Description,
		&project.CreatedAt,
		&project.UpdatedAt,
		&project.ClientName,
		&project.ClientEmail,
		&project.ClientAvatar,
	); err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns projects newest first. A nil clientID returns all projects.
func (r *projectRepository) List(ctx context.Context, clientID *string) ([]domain.Project, error) {
	const base = `
        SELECT p.id, p.client_id, p.name, p.status, p.progress, p.deadline, p.cost, p.description,
               p.created_at, p.updated_at, u.name, u.email, u.avatar
        FROM projects p JOIN users u ON u.id = p.client_id`

	var (
		rows pgx.Rows
		err  error
	)
	if clientID != nil {
		rows, err = r.pool.Query(ctx, base+` WHERE p.client_id=$1 ORDER BY p.created_at DESC`, *clientID)
	} else {
		rows, err = r.pool.Query(ctx, base+` ORDER BY p.created_at DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Project
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(
			&project.ID,
			&project.ClientID,
			&project.Name,
			&project.Status,
			&project.Progress,
			&project.Deadline,
			&project.Cost,
			&project.Description,
			&project.CreatedAt,
			&project.UpdatedAt,
			&project.ClientName,
			&project.ClientEmail,
			&project.ClientAvatar,
		); err != nil {
			return nil, err
		}
		result = append(result, project)
	}
	return result, rows.Err()
}
