package accountservice

import (
	"context"
	"errors"
	"testing"

	"github.com/akarpovich/orgbank/internal/apperrors"
	"github.com/akarpovich/orgbank/internal/config"
	"github.com/akarpovich/orgbank/internal/domain"
	"github.com/akarpovich/orgbank/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockLedgerRepo) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	).AnyTimes()
	cfg := &config.Config{SharePrice: 100, CashoutRate: 100, RepPerJobPayout: 10, LevelPerRep: 100}
	service := New(accountRepo, ledgerRepo, txManager, cfg)
	defer ctrl.Finish()
	return service, accountRepo, ledgerRepo
}

func TestGetAccount(t *testing.T) {
	service, accountRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		memberID      int64
		prepareMock   func()
		expected      *Snapshot
		expectedError error
	}{
		{
			name:     "Existing account with locked shares",
			memberID: 1,
			prepareMock: func() {
				accountRepo.EXPECT().Ensure(gomock.Any(), int64(1)).Return(nil)
				accountRepo.EXPECT().GetByMemberID(gomock.Any(), int64(1)).Return(&domain.Account{
					MemberID:     1,
					Balance:      500,
					Shares:       10,
					LockedShares: 4,
					Reputation:   250,
				}, nil)
			},
			expected: &Snapshot{
				Account: &domain.Account{
					MemberID:     1,
					Balance:      500,
					Shares:       10,
					LockedShares: 4,
					Reputation:   250,
				},
				SharesAvailable: 6,
				Level:           2,
			},
		},
		{
			name:     "Storage error",
			memberID: 2,
			prepareMock: func() {
				accountRepo.EXPECT().Ensure(gomock.Any(), int64(2)).Return(nil)
				accountRepo.EXPECT().GetByMemberID(gomock.Any(), int64(2)).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			snapshot, err := service.GetAccount(context.Background(), tt.memberID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, snapshot)
			}
		})
	}
}

func TestAddBalance(t *testing.T) {
	service, accountRepo, ledgerRepo := NewMock(t)
	actorID := int64(99)

	t.Run("Credit records a wallet-bound ledger entry", func(t *testing.T) {
		accountRepo.EXPECT().Ensure(gomock.Any(), int64(1)).Return(nil)
		accountRepo.EXPECT().AddBalance(gomock.Any(), int64(1), int64(200)).Return(nil)
		accountRepo.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).Return(nil)
		ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.LedgerEntry) error {
				assert.Equal(t, int64(200), entry.Amount)
				assert.Equal(t, domain.AccountExternal, entry.FromAccount)
				assert.Equal(t, domain.Wallet(1), entry.ToAccount)
				return nil
			})
		accountRepo.EXPECT().GetByMemberID(gomock.Any(), int64(1)).Return(&domain.Account{MemberID: 1, Balance: 200}, nil)

		snapshot, err := service.AddBalance(context.Background(), 1, 200, "grant", &actorID, "ref")
		assert.NoError(t, err)
		assert.Equal(t, int64(200), snapshot.Account.Balance)
	})

	t.Run("Debit flips the ledger direction", func(t *testing.T) {
		accountRepo.EXPECT().Ensure(gomock.Any(), int64(1)).Return(nil)
		accountRepo.EXPECT().AddBalance(gomock.Any(), int64(1), int64(-50)).Return(nil)
		accountRepo.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).Return(nil)
		ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.LedgerEntry) error {
				assert.Equal(t, int64(50), entry.Amount)
				assert.Equal(t, domain.Wallet(1), entry.FromAccount)
				assert.Equal(t, domain.AccountExternal, entry.ToAccount)
				return nil
			})
		accountRepo.EXPECT().GetByMemberID(gomock.Any(), int64(1)).Return(&domain.Account{MemberID: 1, Balance: 150}, nil)

		_, err := service.AddBalance(context.Background(), 1, -50, "fine", &actorID, "ref")
		assert.NoError(t, err)
	})

	t.Run("Zero delta appends no ledger entry", func(t *testing.T) {
		accountRepo.EXPECT().Ensure(gomock.Any(), int64(1)).Return(nil)
		accountRepo.EXPECT().AddBalance(gomock.Any(), int64(1), int64(0)).Return(nil)
		accountRepo.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).Return(nil)
		accountRepo.EXPECT().GetByMemberID(gomock.Any(), int64(1)).Return(&domain.Account{MemberID: 1}, nil)

		_, err := service.AddBalance(context.Background(), 1, 0, "noop", &actorID, "ref")
		assert.NoError(t, err)
	})
}

func TestBuyShares(t *testing.T) {
	service, accountRepo, ledgerRepo := NewMock(t)

	t.Run("Successful purchase debits cost and credits shares", func(t *testing.T) {
		accountRepo.EXPECT().Ensure(gomock.Any(), int64(1)).Return(nil)
		accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.Account{MemberID: 1, Balance: 1000}, nil)
		accountRepo.EXPECT().AddBalance(gomock.Any(), int64(1), int64(-300)).Return(nil)
		accountRepo.EXPECT().AddShares(gomock.Any(), int64(1), int64(3)).Return(nil)
		accountRepo.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).Return(nil)
		ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		accountRepo.EXPECT().GetByMemberID(gomock.Any(), int64(1)).Return(&domain.Account{MemberID: 1, Balance: 700, Shares: 3}, nil)

		snapshot, cost, err := service.BuyShares(context.Background(), 1, 3, nil, "buy")
		assert.NoError(t, err)
		assert.Equal(t, int64(300), cost)
		assert.Equal(t, int64(3), snapshot.Account.Shares)
	})

	t.Run("Insufficient balance rejects purchase", func(t *testing.T) {
		accountRepo.EXPECT().Ensure(gomock.Any(), int64(1)).Return(nil)
		accountRepo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.Account{MemberID: 1, Balance: 100}, nil)

		_, _, err := service.BuyShares(context.Background(), 1, 3, nil, "buy")
		assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	})
}

func TestLevel(t *testing.T) {
	service, _, _ := NewMock(t)

	assert.Equal(t, int64(0), service.Level(0))
	assert.Equal(t, int64(0), service.Level(99))
	assert.Equal(t, int64(1), service.Level(100))
	assert.Equal(t, int64(2), service.Level(250))
}

func TestListTransactions(t *testing.T) {
	service, accountRepo, _ := NewMock(t)

	memberID := int64(1)
	accountRepo.EXPECT().ListTransactions(gomock.Any(), &memberID, []string{"payout"}, 10).Return([]domain.Transaction{
		{ID: 1, MemberID: 1, Type: "payout", Amount: 100},
	}, nil)

	txs, err := service.ListTransactions(context.Background(), &memberID, []string{"payout"}, 10)
	assert.NoError(t, err)
	assert.Len(t, txs, 1)
}
