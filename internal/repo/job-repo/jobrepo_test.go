package jobrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/akarpovich/orgbank/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)
	return repo, mockDB
}

func jobRows(jobs ...*domain.Job) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "title", "description", "reward", "escrow_amount", "escrow_status", "status",
		"created_by", "claimed_by", "category", "channel_ref", "message_ref", "thread_ref", "created_at", "updated_at"})
	for _, j := range jobs {
		rows.AddRow(j.ID, j.Title, j.Description, j.Reward, j.EscrowAmount, j.EscrowStatus, j.Status,
			j.CreatedBy, j.ClaimedBy, j.Category, j.ChannelRef, j.MessageRef, j.ThreadRef, j.CreatedAt, j.UpdatedAt)
	}
	return rows
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	job := &domain.Job{
		Title:        "fix roof",
		Reward:       600,
		EscrowAmount: 600,
		EscrowStatus: domain.EscrowReserved,
		Status:       domain.JobOpen,
		CreatedBy:    1,
	}
	mock.ExpectQuery("INSERT INTO jobs").
		WithArgs(job.Title, job.Description, job.Reward, job.EscrowAmount, job.EscrowStatus, job.Status,
			job.CreatedBy, job.Category, job.ChannelRef, job.MessageRef).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), now, now))

	err := repo.Create(context.Background(), job)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), job.ID)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Existing job", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM jobs").
			WithArgs(int64(5)).
			WillReturnRows(jobRows(&domain.Job{ID: 5, Title: "fix roof", Reward: 600, EscrowAmount: 600,
				EscrowStatus: domain.EscrowReserved, Status: domain.JobOpen, CreatedBy: 1, CreatedAt: now, UpdatedAt: now}))

		job, err := repo.GetByID(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, "fix roof", job.Title)
	})

	t.Run("Missing job returns nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM jobs").
			WithArgs(int64(9)).
			WillReturnError(pgx.ErrNoRows)

		job, err := repo.GetByID(context.Background(), 9)
		assert.NoError(t, err)
		assert.Nil(t, job)
	})
}

func TestRepository_Claim(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Open unclaimed job is claimed", func(t *testing.T) {
		mock.ExpectExec("UPDATE jobs").
			WithArgs(int64(2), int64(5)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.Claim(context.Background(), 5, 2)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Already claimed job does not match", func(t *testing.T) {
		mock.ExpectExec("UPDATE jobs").
			WithArgs(int64(3), int64(5)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.Claim(context.Background(), 5, 3)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE jobs").
			WithArgs(int64(2), int64(5)).
			WillReturnError(errors.New("db error"))

		_, err := repo.Claim(context.Background(), 5, 2)
		assert.Error(t, err)
	})
}

func TestRepository_MarkPaid(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Completed reserved job is paid", func(t *testing.T) {
		mock.ExpectExec("UPDATE jobs").
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.MarkPaid(context.Background(), 5)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Released escrow cannot be paid again", func(t *testing.T) {
		mock.ExpectExec("UPDATE jobs").
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.MarkPaid(context.Background(), 5)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Open job cancels", func(t *testing.T) {
		mock.ExpectExec("UPDATE jobs").
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.Cancel(context.Background(), 5)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Terminal job does not match", func(t *testing.T) {
		mock.ExpectExec("UPDATE jobs").
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.Cancel(context.Background(), 5)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_Reopen(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec("UPDATE jobs").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.Reopen(context.Background(), 5)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestRepository_ReservedEscrow(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(900)))

	sum, err := repo.ReservedEscrow(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(900), sum)
}
