package treasuryrepo

import (
	"context"

	"github.com/akarpovich/orgbank/internal/domain"
	"github.com/akarpovich/orgbank/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context) (*domain.Treasury, error) {
	query := `
        SELECT amount, last_updated_by, last_updated_at
        FROM treasury
        WHERE id = 1
    `
	row := r.db.QueryRow(ctx, query)

	var treasury domain.Treasury
	err := row.Scan(&treasury.Amount, &treasury.LastUpdatedBy, &treasury.LastUpdatedAt)
	if err != nil {
		zap.L().Error("can't get treasury", zap.Error(err))
		return nil, err
	}
	return &treasury, nil
}

// GetForUpdate locks the treasury row so capacity checks and the following
// write happen under one exclusive hold.
func (r *Repository) GetForUpdate(ctx context.Context) (*domain.Treasury, error) {
	query := `
        SELECT amount, last_updated_by, last_updated_at
        FROM treasury
        WHERE id = 1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query)

	var treasury domain.Treasury
	err := row.Scan(&treasury.Amount, &treasury.LastUpdatedBy, &treasury.LastUpdatedAt)
	if err != nil {
		zap.L().Error("can't lock treasury", zap.Error(err))
		return nil, err
	}
	return &treasury, nil
}

func (r *Repository) Update(ctx context.Context, amount int64, actorID *int64) error {
	query := `
        UPDATE treasury
        SET amount = $1, last_updated_by = $2, last_updated_at = now()
        WHERE id = 1
    `
	_, err := r.db.Exec(ctx, query, amount, actorID)
	if err != nil {
		zap.L().Error("can't update treasury", zap.Error(err))
		return err
	}
	return nil
}
