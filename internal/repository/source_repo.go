package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
)

var ErrSourceNotFound = errors.New("source not found")

type SourceRepository interface {
	Create(ctx context.Context, source domain.Source) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Source, error)
}

type PgSourceRepository struct {
	pool *pgxpool.Pool
}

func NewPgSourceRepository(pool *pgxpool.Pool) *PgSourceRepository {
	return &PgSourceRepository{pool: pool}
}

func (r *PgSourceRepository) Create(ctx context.Context, source domain.Source) error {
	const query = `
		INSERT INTO sources (id, name, source_type, file_name, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		source.ID,
		source.Name,
		source.SourceType,
		source.FileName,
		source.CreatedBy,
		source.CreatedAt,
	)
	return err
}

func (r *PgSourceRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Source, error) {
	const query = `
		SELECT id, name, source_type, file_name, created_by, created_at
		FROM sources
		WHERE id = $1
	`
	var source domain.Source
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&source.ID,
		&source.Name,
		&source.SourceType,
		&source.FileName,
		&source.CreatedBy,
		&source.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Source{}, ErrSourceNotFound
	}
	return source, err
}
