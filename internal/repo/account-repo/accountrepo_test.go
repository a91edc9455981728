package accountrepo

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

func TestRepository_Ensure(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Inserts a zeroed row when absent", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Ensure(context.Background(), 1)
		assert.NoError(t, err)
	})

	t.Run("Existing row is left alone", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		err := repo.Ensure(context.Background(), 1)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(int64(1)).
			WillReturnError(errors.New("db error"))

		err := repo.Ensure(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestRepository_GetByMemberID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Existing member returns account", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"member_id", "balance", "shares", "locked_shares", "reputation", "created_at", "updated_at"}).
			AddRow(int64(1), int64(500), int64(10), int64(4), int64(250), now, now)
		mock.ExpectQuery("SELECT member_id, balance, shares, locked_shares, reputation").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		account, err := repo.GetByMemberID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(500), account.Balance)
		assert.Equal(t, int64(4), account.LockedShares)
	})

	t.Run("Missing member returns nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT member_id, balance, shares, locked_shares, reputation").
			WithArgs(int64(2)).
			WillReturnError(pgx.ErrNoRows)

		account, err := repo.GetByMemberID(context.Background(), 2)
		assert.NoError(t, err)
		assert.Nil(t, account)
	})
}

func TestRepository_DeltaUpdates(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("AddBalance applies the signed delta", func(t *testing.T) {
		mock.ExpectExec("UPDATE accounts").
			WithArgs(int64(-50), int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.AddBalance(context.Background(), 1, -50)
		assert.NoError(t, err)
	})

	t.Run("AddLockedShares applies the signed delta", func(t *testing.T) {
		mock.ExpectExec("UPDATE accounts").
			WithArgs(int64(5), int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.AddLockedShares(context.Background(), 1, 5)
		assert.NoError(t, err)
	})

	t.Run("SetLockedShares overwrites the lock", func(t *testing.T) {
		mock.ExpectExec("UPDATE accounts").
			WithArgs(int64(0), int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SetLockedShares(context.Background(), 1, 0)
		assert.NoError(t, err)
	})
}

func TestRepository_AddTransaction(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tx := &domain.Transaction{
		MemberID:    1,
		Type:        "payout",
		Amount:      600,
		SharesDelta: 0,
		RepDelta:    10,
		Reference:   "job:5",
	}
	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(tx.MemberID, tx.Type, tx.Amount, tx.SharesDelta, tx.RepDelta, tx.ActorID, tx.Reference).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	err := repo.AddTransaction(context.Background(), tx)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), tx.ID)
	assert.Equal(t, now, tx.CreatedAt)
}

func TestRepository_ListTransactions(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Member and type filters build the query", func(t *testing.T) {
		memberID := int64(1)
		rows := pgxmock.NewRows([]string{"id", "member_id", "type", "amount", "shares_delta", "rep_delta", "actor_id", "reference", "created_at"}).
			AddRow(int64(7), int64(1), "payout", int64(600), int64(0), int64(10), nil, "job:5", now)
		mock.ExpectQuery("SELECT id, member_id, type, amount").
			WithArgs(memberID, []string{"payout"}, 10).
			WillReturnRows(rows)

		txs, err := repo.ListTransactions(context.Background(), &memberID, []string{"payout"}, 10)
		assert.NoError(t, err)
		assert.Len(t, txs, 1)
		assert.Equal(t, "payout", txs[0].Type)
	})

	t.Run("No filters lists everything", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, member_id, type, amount").
			WithArgs(10).
			WillReturnRows(pgxmock.NewRows([]string{"id", "member_id", "type", "amount", "shares_delta", "rep_delta", "actor_id", "reference", "created_at"}))

		txs, err := repo.ListTransactions(context.Background(), nil, nil, 10)
		assert.NoError(t, err)
		assert.Empty(t, txs)
	})
}

func TestRepository_ListMemberIDs(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"member_id"}).AddRow(int64(1)).AddRow(int64(2))
	mock.ExpectQuery("SELECT member_id FROM accounts").
		WillReturnRows(rows)

	ids, err := repo.ListMemberIDs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
}
