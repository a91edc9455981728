package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

// Append writes one audit row. Entries are never updated or deleted.
func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `
        INSERT INTO ledger_entries (entry_type, amount, from_account, to_account, reference_type, reference_id, actor_id, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		entry.EntryType, entry.Amount, entry.FromAccount, entry.ToAccount,
		entry.ReferenceType, entry.ReferenceID, entry.ActorID, entry.Notes,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, limit int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, entry_type, amount, from_account, to_account, reference_type, reference_id, actor_id, notes, created_at
        FROM ledger_entries
        ORDER BY id DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.EntryType, &e.Amount, &e.FromAccount, &e.ToAccount, &e.ReferenceType, &e.ReferenceID, &e.ActorID, &e.Notes, &e.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// LatestBaseline returns the most recent treasury_set entry, if any. A manual
// set is a rebasing point for drift replay, not a real flow.
func (r *Repository) LatestBaseline(ctx context.Context) (amount int64, entryID int64, found bool, err error) {
	query := `
        SELECT id, amount
        FROM ledger_entries
        WHERE entry_type = 'treasury_set'
        ORDER BY id DESC
        LIMIT 1
    `
	err = r.db.QueryRow(ctx, query).Scan(&entryID, &amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, false, nil
	}
	if err != nil {
		zap.L().Error("can't get ledger baseline", zap.Error(err))
		return 0, 0, false, err
	}
	return amount, entryID, true, nil
}

// TreasuryFlowsSince replays every entry after the baseline that credits or
// debits the treasury label.
func (r *Repository) TreasuryFlowsSince(ctx context.Context, afterID int64) (credits int64, debits int64, err error) {
	query := `
        SELECT
            COALESCE(SUM(CASE WHEN to_account = 'treasury' THEN amount ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN from_account = 'treasury' THEN amount ELSE 0 END), 0)
        FROM ledger_entries
        WHERE id > $1
          AND entry_type <> 'treasury_set'
          AND (to_account = 'treasury' OR from_account = 'treasury')
    `
	err = r.db.QueryRow(ctx, query, afterID).Scan(&credits, &debits)
	if err != nil {
		zap.L().Error("can't replay treasury flows", zap.Error(err))
		return 0, 0, err
	}
	return credits, debits, nil
}
