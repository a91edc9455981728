package cashoutrepo

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

const requestColumns = `id, requester_id, shares, status, handled_by, handled_note,
               channel_ref, message_ref, thread_ref, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, req *domain.CashoutRequest) error {
	query := `
        INSERT INTO cashout_requests (requester_id, shares, status, channel_ref, message_ref)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, req.RequesterID, req.Shares, req.Status, req.ChannelRef, req.MessageRef).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save cashout request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, requestID int64) (*domain.CashoutRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM cashout_requests
        WHERE id = $1
    `
	return r.scanRequest(r.db.QueryRow(ctx, query, requestID))
}

// GetForUpdate locks the request row for the rest of the transaction.
func (r *Repository) GetForUpdate(ctx context.Context, requestID int64) (*domain.CashoutRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM cashout_requests
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanRequest(r.db.QueryRow(ctx, query, requestID))
}

func (r *Repository) scanRequest(row pgx.Row) (*domain.CashoutRequest, error) {
	var req domain.CashoutRequest
	err := row.Scan(&req.ID, &req.RequesterID, &req.Shares, &req.Status, &req.HandledBy, &req.HandledNote,
		&req.ChannelRef, &req.MessageRef, &req.ThreadRef, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get cashout request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

// UpdateStatus performs a conditional transition from one of the given
// states. A zero rowcount means the request was not in an allowed state.
func (r *Repository) UpdateStatus(ctx context.Context, requestID int64, from []domain.CashoutStatus, to domain.CashoutStatus, handledBy *int64, note *string) (bool, error) {
	fromStates := make([]string, 0, len(from))
	for _, s := range from {
		fromStates = append(fromStates, string(s))
	}
	query := `
        UPDATE cashout_requests
        SET status = $1, handled_by = $2, handled_note = $3, updated_at = now()
        WHERE id = $4 AND status = ANY($5)
    `
	tag, err := r.db.Exec(ctx, query, to, handledBy, note, requestID, fromStates)
	if err != nil {
		zap.L().Error("can't update cashout status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) SetThreadRef(ctx context.Context, requestID int64, threadRef string) error {
	query := `
        UPDATE cashout_requests
        SET thread_ref = $1, updated_at = now()
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, threadRef, requestID)
	if err != nil {
		zap.L().Error("can't set cashout thread ref", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, statuses []domain.CashoutStatus, limit int) ([]domain.CashoutRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM cashout_requests
        WHERE status = ANY($1)
        ORDER BY created_at DESC, id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, statusStrings(statuses), limit)
	if err != nil {
		zap.L().Error("can't get cashout requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.CashoutRequest
	for rows.Next() {
		var req domain.CashoutRequest
		err := rows.Scan(&req.ID, &req.RequesterID, &req.Shares, &req.Status, &req.HandledBy, &req.HandledNote,
			&req.ChannelRef, &req.MessageRef, &req.ThreadRef, &req.CreatedAt, &req.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan cashout request row", zap.Error(err))
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func (r *Repository) Count(ctx context.Context, statuses []domain.CashoutStatus) (int64, error) {
	query := `
        SELECT COUNT(*)
        FROM cashout_requests
        WHERE status = ANY($1)
    `
	var count int64
	err := r.db.QueryRow(ctx, query, statusStrings(statuses)).Scan(&count)
	if err != nil {
		zap.L().Error("can't count cashout requests", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// SumActiveShares is the expected locked-share total for one member: the sum
// over that member's pending and approved requests.
func (r *Repository) SumActiveShares(ctx context.Context, requesterID int64) (int64, error) {
	query := `
        SELECT COALESCE(SUM(shares), 0)
        FROM cashout_requests
        WHERE requester_id = $1 AND status IN ('pending', 'approved')
    `
	var sum int64
	err := r.db.QueryRow(ctx, query, requesterID).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum active cashout shares", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

// ListActiveIDs returns the ids of pending and approved requests, optionally
// scoped to one requester.
func (r *Repository) ListActiveIDs(ctx context.Context, requesterID *int64) ([]int64, error) {
	query := `
        SELECT id
        FROM cashout_requests
        WHERE status IN ('pending', 'approved') AND ($1::bigint IS NULL OR requester_id = $1)
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, requesterID)
	if err != nil {
		zap.L().Error("can't list active cashout requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan active request id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ForceRejectActive rejects every pending or approved request in scope and
// returns the affected ids. The rejection is recorded in handled_note.
func (r *Repository) ForceRejectActive(ctx context.Context, requesterID *int64, handledBy *int64) ([]int64, error) {
	query := `
        UPDATE cashout_requests
        SET status = 'rejected',
            handled_by = $1,
            handled_note = TRIM(BOTH ' | ' FROM COALESCE(handled_note, '') || ' | ' || 'reconcile force_clear_active'),
            updated_at = now()
        WHERE status IN ('pending', 'approved') AND ($2::bigint IS NULL OR requester_id = $2)
        RETURNING id
    `
	rows, err := r.db.Query(ctx, query, handledBy, requesterID)
	if err != nil {
		zap.L().Error("can't force reject cashout requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan rejected request id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func statusStrings(statuses []domain.CashoutStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
