package treasuryrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)
	return repo, mockDB
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	actorID := int64(2)

	t.Run("Returns the singleton row", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"amount", "last_updated_by", "last_updated_at"}).
			AddRow(int64(1000), &actorID, &now)
		mock.ExpectQuery("SELECT amount, last_updated_by, last_updated_at").
			WillReturnRows(rows)

		treasury, err := repo.Get(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(1000), treasury.Amount)
		assert.Equal(t, int64(2), *treasury.LastUpdatedBy)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT amount, last_updated_by, last_updated_at").
			WillReturnError(errors.New("db error"))

		treasury, err := repo.Get(context.Background())
		assert.Error(t, err)
		assert.Nil(t, treasury)
	})
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"amount", "last_updated_by", "last_updated_at"}).
		AddRow(int64(500), nil, nil)
	mock.ExpectQuery("SELECT amount, last_updated_by, last_updated_at").
		WillReturnRows(rows)

	treasury, err := repo.GetForUpdate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(500), treasury.Amount)
	assert.Nil(t, treasury.LastUpdatedBy)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	actorID := int64(2)

	t.Run("Writes the new amount and actor", func(t *testing.T) {
		mock.ExpectExec("UPDATE treasury").
			WithArgs(int64(900), &actorID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Update(context.Background(), 900, &actorID)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE treasury").
			WithArgs(int64(900), (*int64)(nil)).
			WillReturnError(errors.New("db error"))

		err := repo.Update(context.Background(), 900, nil)
		assert.Error(t, err)
	})
}
