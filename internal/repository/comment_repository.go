package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wexa-dev/studio-api/internal/domain"
)

// CommentRepository manages project discussion entries.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Comment, error)
}

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository builds repository.
func NewCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const query = `
        INSERT INTO comments (project_id, author_id, text)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		comment.ProjectID,
		comment.AuthorID,
		comment.Text,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	const query = `
        SELECT c.id, c.project_id, c.author_id, c.text, c.created_at, u.name, u.avatar
        FROM comments c JOIN users u ON u.id = c.author_id
        WHERE c.id=$1`

	var comment domain.Comment
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.ProjectID,
		&comment.AuthorID,
		&comment.Text,
		&comment.CreatedAt,
		&comment.AuthorName,
		&comment.AuthorAvatar,
	); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Comment, error) {
	const query = `
        SELECT c.id, c.project_id, c.author_id, c.text, c.created_at, u.name, u.avatar
        FROM comments c JOIN users u ON u.id = c.author_id
        WHERE c.project_id=$1 ORDER BY c.created_at ASC`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.ProjectID,
			&comment.AuthorID,
			&comment.Text,
			&comment.CreatedAt,
			&comment.AuthorName,
			&comment.AuthorAvatar,
		); err != nil {
			return nil, err
		}
		result = append(result, comment)
	}
	return result, rows.Err()
}
