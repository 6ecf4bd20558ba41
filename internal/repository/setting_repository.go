package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wexa-dev/studio-api/internal/domain"
)

// SettingRepository manages the key to arbitrary-JSON settings store.
type SettingRepository interface {
	Upsert(ctx context.Context, setting *domain.Setting) error
	Get(ctx context.Context, key string) (*domain.Setting, error)
	List(ctx context.Context) ([]domain.Setting, error)
}

type settingRepository struct {
	pool *pgxpool.Pool
}

// NewSettingRepository builds repository.
func NewSettingRepository(pool *pgxpool.Pool) SettingRepository {
	return &settingRepository{pool: pool}
}

func (r *settingRepository) Upsert(ctx context.Context, setting *domain.Setting) error {
	const query = `
        INSERT INTO settings (key, value) VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=NOW()`
	_, err := r.pool.Exec(ctx, query, setting.Key, []byte(setting.Value))
	return err
}

func (r *settingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var raw []byte
	if err := r.pool.QueryRow(ctx, `SELECT value FROM settings WHERE key=$1`, key).Scan(&raw); err != nil {
		return nil, err
	}
	return &domain.Setting{Key: key, Value: json.RawMessage(raw)}, nil
}

func (r *settingRepository) List(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.pool.Query(ctx, `SELECT key, value FROM settings ORDER BY key ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Setting
	for rows.Next() {
		var (
			key string
			raw []byte
		)
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, err
		}
		result = append(result, domain.Setting{Key: key, Value: json.RawMessage(raw)})
	}
	return result, rows.Err()
}
