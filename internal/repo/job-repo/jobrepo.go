package jobrepo

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

const jobColumns = `id, title, description, reward, escrow_amount, escrow_status, status,
               created_by, claimed_by, category, channel_ref, message_ref, thread_ref, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, job *domain.Job) error {
	query := `
        INSERT INTO jobs (title, description, reward, escrow_amount, escrow_status, status, created_by, category, channel_ref, message_ref)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		job.Title, job.Description, job.Reward, job.EscrowAmount, job.EscrowStatus, job.Status,
		job.CreatedBy, job.Category, job.ChannelRef, job.MessageRef,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save job", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, jobID int64) (*domain.Job, error) {
	query := `
        SELECT ` + jobColumns + `
        FROM jobs
        WHERE id = $1
    `
	return r.scanJob(r.db.QueryRow(ctx, query, jobID))
}

// GetForUpdate locks the job row for the rest of the transaction.
func (r *Repository) GetForUpdate(ctx context.Context, jobID int64) (*domain.Job, error) {
	query := `
        SELECT ` + jobColumns + `
        FROM jobs
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanJob(r.db.QueryRow(ctx, query, jobID))
}

func (r *Repository) scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(&job.ID, &job.Title, &job.Description, &job.Reward, &job.EscrowAmount, &job.EscrowStatus, &job.Status,
		&job.CreatedBy, &job.ClaimedBy, &job.Category, &job.ChannelRef, &job.MessageRef, &job.ThreadRef, &job.CreatedAt, &job.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get job", zap.Error(err))
		return nil, err
	}
	return &job, nil
}

// Claim is the concurrency primitive for job acceptance: the single
// conditional update guarantees at most one claimant even under simultaneous
// attempts.
func (r *Repository) Claim(ctx context.Context, jobID int64, claimantID int64) (bool, error) {
	query := `
        UPDATE jobs
        SET status = 'claimed', claimed_by = $1, updated_at = now()
        WHERE id = $2 AND status = 'open' AND claimed_by IS NULL
    `
	tag, err := r.db.Exec(ctx, query, claimantID, jobID)
	if err != nil {
		zap.L().Error("can't claim job", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Complete(ctx context.Context, jobID int64) (bool, error) {
	query := `
        UPDATE jobs
        SET status = 'completed', updated_at = now()
        WHERE id = $1 AND status = 'claimed'
    `
	tag, err := r.db.Exec(ctx, query, jobID)
	if err != nil {
		zap.L().Error("can't complete job", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkPaid transitions completed -> paid and releases the escrow in the same
// statement, so a double release is impossible.
func (r *Repository) MarkPaid(ctx context.Context, jobID int64) (bool, error) {
	query := `
        UPDATE jobs
        SET status = 'paid', escrow_status = 'released', updated_at = now()
        WHERE id = $1 AND status = 'completed' AND escrow_status = 'reserved'
    `
	tag, err := r.db.Exec(ctx, query, jobID)
	if err != nil {
		zap.L().Error("can't mark job paid", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Cancel releases the reservation together with the status change; the
// escrow_status guard makes the release single-shot.
func (r *Repository) Cancel(ctx context.Context, jobID int64) (bool, error) {
	query := `
        UPDATE jobs
        SET status = 'cancelled', escrow_status = 'released', updated_at = now()
        WHERE id = $1 AND status NOT IN ('paid', 'cancelled') AND escrow_status = 'reserved'
    `
	tag, err := r.db.Exec(ctx, query, jobID)
	if err != nil {
		zap.L().Error("can't cancel job", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Reopen puts a cancelled job back on the board with a fresh reservation and
// no claimant.
func (r *Repository) Reopen(ctx context.Context, jobID int64) (bool, error) {
	query := `
        UPDATE jobs
        SET status = 'open', escrow_status = 'reserved', claimed_by = NULL, thread_ref = NULL, updated_at = now()
        WHERE id = $1 AND status = 'cancelled'
    `
	tag, err := r.db.Exec(ctx, query, jobID)
	if err != nil {
		zap.L().Error("can't reopen job", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) SetThreadRef(ctx context.Context, jobID int64, threadRef string) error {
	query := `
        UPDATE jobs
        SET thread_ref = $1, updated_at = now()
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, threadRef, jobID)
	if err != nil {
		zap.L().Error("can't set job thread ref", zap.Error(err))
		return err
	}
	return nil
}

// ReservedEscrow sums every live reservation against the treasury.
func (r *Repository) ReservedEscrow(ctx context.Context) (int64, error) {
	query := `
        SELECT COALESCE(SUM(escrow_amount), 0)
        FROM jobs
        WHERE escrow_status = 'reserved'
    `
	var sum int64
	err := r.db.QueryRow(ctx, query).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum reserved escrow", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
