package cashoutrepo

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

func requestRows(id, requesterID, shares int64, status domain.CashoutStatus, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "requester_id", "shares", "status", "handled_by", "handled_note",
		"channel_ref", "message_ref", "thread_ref", "created_at", "updated_at",
	}).AddRow(id, requesterID, shares, status, nil, nil, "chan-1", "msg-1", nil, now, now)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	req := &domain.CashoutRequest{
		RequesterID: 1,
		Shares:      5,
		Status:      domain.CashoutPending,
		ChannelRef:  "chan-1",
		MessageRef:  "msg-1",
	}
	mock.ExpectQuery("INSERT INTO cashout_requests").
		WithArgs(req.RequesterID, req.Shares, req.Status, req.ChannelRef, req.MessageRef).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(3), now, now))

	err := repo.Create(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), req.ID)
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Existing request returns the row", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cashout_requests").
			WithArgs(int64(3)).
			WillReturnRows(requestRows(3, 1, 5, domain.CashoutPending, now))

		req, err := repo.GetForUpdate(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), req.Shares)
		assert.Equal(t, domain.CashoutPending, req.Status)
	})

	t.Run("Missing request returns nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cashout_requests").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		req, err := repo.GetForUpdate(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, req)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	handledBy := int64(2)
	note := "looks good"

	t.Run("Transition from an allowed state", func(t *testing.T) {
		mock.ExpectExec("UPDATE cashout_requests").
			WithArgs(domain.CashoutApproved, &handledBy, &note, int64(3), []string{"pending"}).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.UpdateStatus(context.Background(), 3, []domain.CashoutStatus{domain.CashoutPending}, domain.CashoutApproved, &handledBy, &note)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Row outside the allowed states is untouched", func(t *testing.T) {
		mock.ExpectExec("UPDATE cashout_requests").
			WithArgs(domain.CashoutPaid, &handledBy, (*string)(nil), int64(3), []string{"approved"}).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.UpdateStatus(context.Background(), 3, []domain.CashoutStatus{domain.CashoutApproved}, domain.CashoutPaid, &handledBy, nil)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE cashout_requests").
			WithArgs(domain.CashoutApproved, &handledBy, (*string)(nil), int64(3), []string{"pending"}).
			WillReturnError(errors.New("db error"))

		ok, err := repo.UpdateStatus(context.Background(), 3, []domain.CashoutStatus{domain.CashoutPending}, domain.CashoutApproved, &handledBy, nil)
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM cashout_requests").
		WithArgs([]string{"pending"}, 20).
		WillReturnRows(requestRows(3, 1, 5, domain.CashoutPending, now))

	reqs, err := repo.List(context.Background(), []domain.CashoutStatus{domain.CashoutPending}, 20)
	assert.NoError(t, err)
	assert.Len(t, reqs, 1)
	assert.Equal(t, int64(3), reqs[0].ID)
}

func TestRepository_Count(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs([]string{"pending", "approved"}).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	count, err := repo.Count(context.Background(), []domain.CashoutStatus{domain.CashoutPending, domain.CashoutApproved})
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestRepository_SumActiveShares(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(shares\), 0\)`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(int64(7)))

	sum, err := repo.SumActiveShares(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), sum)
}

func TestRepository_ListActiveIDs(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Scoped to one requester", func(t *testing.T) {
		requesterID := int64(1)
		mock.ExpectQuery("SELECT id").
			WithArgs(&requesterID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)).AddRow(int64(4)))

		ids, err := repo.ListActiveIDs(context.Background(), &requesterID)
		assert.NoError(t, err)
		assert.Equal(t, []int64{3, 4}, ids)
	})

	t.Run("Nil requester covers everyone", func(t *testing.T) {
		mock.ExpectQuery("SELECT id").
			WithArgs((*int64)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		ids, err := repo.ListActiveIDs(context.Background(), nil)
		assert.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestRepository_ForceRejectActive(t *testing.T) {
	repo, mock := NewMock(t)
	actorID := int64(9)

	mock.ExpectQuery("UPDATE cashout_requests").
		WithArgs(&actorID, (*int64)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)).AddRow(int64(4)))

	ids, err := repo.ForceRejectActive(context.Background(), nil, &actorID)
	assert.NoError(t, err)
	assert.Equal(t, []int64{3, 4}, ids)
}
