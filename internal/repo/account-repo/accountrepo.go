package accountrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

// Ensure lazily materializes a zeroed account row. Insert-if-absent: an
// existing row is never overwritten.
func (r *Repository) Ensure(ctx context.Context, memberID int64) error {
	query := `
        INSERT INTO accounts (member_id, balance, shares, locked_shares, reputation)
        VALUES ($1, 0, 0, 0, 0)
        ON CONFLICT (member_id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't ensure account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByMemberID(ctx context.Context, memberID int64) (*domain.Account, error) {
	query := `
        SELECT member_id, balance, shares, locked_shares, reputation, created_at, updated_at
        FROM accounts
        WHERE member_id = $1
    `
	row := r.db.QueryRow(ctx, query, memberID)

	var account domain.Account
	err := row.Scan(&account.MemberID, &account.Balance, &account.Shares, &account.LockedShares, &account.Reputation, &account.CreatedAt, &account.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// GetForUpdate locks the account row for the rest of the transaction.
func (r *Repository) GetForUpdate(ctx context.Context, memberID int64) (*domain.Account, error) {
	query := `
        SELECT member_id, balance, shares, locked_shares, reputation, created_at, updated_at
        FROM accounts
        WHERE member_id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, memberID)

	var account domain.Account
	err := row.Scan(&account.MemberID, &account.Balance, &account.Shares, &account.LockedShares, &account.Reputation, &account.CreatedAt, &account.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) AddBalance(ctx context.Context, memberID int64, delta int64) error {
	query := `
        UPDATE accounts
        SET balance = balance + $1, updated_at = now()
        WHERE member_id = $2
    `
	_, err := r.db.Exec(ctx, query, delta, memberID)
	if err != nil {
		zap.L().Error("can't update balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddShares(ctx context.Context, memberID int64, delta int64) error {
	query := `
        UPDATE accounts
        SET shares = shares + $1, updated_at = now()
        WHERE member_id = $2
    `
	_, err := r.db.Exec(ctx, query, delta, memberID)
	if err != nil {
		zap.L().Error("can't update shares", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddLockedShares(ctx context.Context, memberID int64, delta int64) error {
	query := `
        UPDATE accounts
        SET locked_shares = locked_shares + $1, updated_at = now()
        WHERE member_id = $2
    `
	_, err := r.db.Exec(ctx, query, delta, memberID)
	if err != nil {
		zap.L().Error("can't update locked shares", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetLockedShares(ctx context.Context, memberID int64, lockedShares int64) error {
	query := `
        UPDATE accounts
        SET locked_shares = $1, updated_at = now()
        WHERE member_id = $2
    `
	_, err := r.db.Exec(ctx, query, lockedShares, memberID)
	if err != nil {
		zap.L().Error("can't set locked shares", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddReputation(ctx context.Context, memberID int64, delta int64) error {
	query := `
        UPDATE accounts
        SET reputation = reputation + $1, updated_at = now()
        WHERE member_id = $2
    `
	_, err := r.db.Exec(ctx, query, delta, memberID)
	if err != nil {
		zap.L().Error("can't update reputation", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddTransaction(ctx context.Context, tx *domain.Transaction) error {
	query := `
        INSERT INTO transactions (member_id, type, amount, shares_delta, rep_delta, actor_id, reference)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, tx.MemberID, tx.Type, tx.Amount, tx.SharesDelta, tx.RepDelta, tx.ActorID, tx.Reference).
		Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListTransactions(ctx context.Context, memberID *int64, types []string, limit int) ([]domain.Transaction, error) {
	var where []string
	var args []any

	if memberID != nil {
		args = append(args, *memberID)
		where = append(where, fmt.Sprintf("member_id = $%d", len(args)))
	}
	if len(types) > 0 {
		args = append(args, types)
		where = append(where, fmt.Sprintf("type = ANY($%d)", len(args)))
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
        SELECT id, member_id, type, amount, shares_delta, rep_delta, actor_id, reference, created_at
        FROM transactions
        %s
        ORDER BY created_at DESC, id DESC
        LIMIT $%d
    `, whereSQL, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.MemberID, &tx.Type, &tx.Amount, &tx.SharesDelta, &tx.RepDelta, &tx.ActorID, &tx.Reference, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// ListMemberIDs returns every member known to the accounts table or referenced
// by a cash-out request, for whole-system reconciliation.
func (r *Repository) ListMemberIDs(ctx context.Context) ([]int64, error) {
	query := `
        SELECT member_id FROM accounts
        UNION
        SELECT requester_id FROM cashout_requests
        ORDER BY 1
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list member ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan member id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
