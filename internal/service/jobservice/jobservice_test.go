package jobservice

import (
	"context"
	"testing"

	"github.com/akarpovich/orgbank/internal/apperrors"
	"github.com/akarpovich/orgbank/internal/config"
	"github.com/akarpovich/orgbank/internal/domain"
	"github.com/akarpovich/orgbank/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockJobRepo, *MockTreasuryRepo, *MockAccountRepo, *MockLedgerRepo) {
	ctrl := gomock.NewController(t)
	jobRepo := NewMockJobRepo(ctrl)
	treasuryRepo := NewMockTreasuryRepo(ctrl)
	accountRepo := NewMockAccountRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	).AnyTimes()
	cfg := &config.Config{SharePrice: 100, CashoutRate: 100, RepPerJobPayout: 10, LevelPerRep: 100, StrictTreasury: true}
	service := New(jobRepo, treasuryRepo, accountRepo, ledgerRepo, txManager, cfg)
	defer ctrl.Finish()
	return service, jobRepo, treasuryRepo, accountRepo, ledgerRepo
}

func TestCreate(t *testing.T) {
	service, jobRepo, treasuryRepo, _, ledgerRepo := NewMock(t)

	t.Run("Reserves against available treasury", func(t *testing.T) {
		treasuryRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.Treasury{Amount: 1000}, nil)
		jobRepo.EXPECT().ReservedEscrow(gomock.Any()).Return(int64(400), nil)
		jobRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job *domain.Job) error {
				job.ID = 5
				assert.Equal(t, domain.JobOpen, job.Status)
				assert.Equal(t, domain.EscrowReserved, job.EscrowStatus)
				assert.Equal(t, int64(600), job.EscrowAmount)
				return nil
			})
		ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.LedgerEntry) error {
				assert.Equal(t, domain.LedgerEscrowReserved, entry.EntryType)
				assert.Equal(t, domain.AccountTreasuryAvailable, entry.FromAccount)
				assert.Equal(t, domain.JobEscrow(5), entry.ToAccount)
				return nil
			})

		job, err := service.Create(context.Background(), CreateParams{Title: "fix roof", Reward: 600, CreatedBy: 1})
		assert.NoError(t, err)
		assert.Equal(t, int64(5), job.ID)
	})

	t.Run("Rejects when reward exceeds uncommitted treasury", func(t *testing.T) {
		treasuryRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.Treasury{Amount: 1000}, nil)
		jobRepo.EXPECT().ReservedEscrow(gomock.Any()).Return(int64(500), nil)

		_, err := service.Create(context.Background(), CreateParams{Title: "fix roof", Reward: 600, CreatedBy: 1})
		assert.ErrorIs(t, err, apperrors.ErrInsufficientTreasury)
	})
}

func TestClaim(t *testing.T) {
	service, jobRepo, _, _, _ := NewMock(t)
	claimant := int64(2)

	t.Run("First claim wins", func(t *testing.T) {
		jobRepo.EXPECT().Claim(gomock.Any(), int64(5), claimant).Return(true, nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Job{ID: 5, Status: domain.JobClaimed, ClaimedBy: &claimant}, nil)

		job, err := service.Claim(context.Background(), 5, claimant)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobClaimed, job.Status)
	})

	t.Run("Lost race reports claim lost", func(t *testing.T) {
		other := int64(3)
		jobRepo.EXPECT().Claim(gomock.Any(), int64(5), claimant).Return(false, nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Job{ID: 5, Status: domain.JobClaimed, ClaimedBy: &other}, nil)

		_, err := service.Claim(context.Background(), 5, claimant)
		assert.ErrorIs(t, err, apperrors.ErrClaimLost)
	})

	t.Run("Missing job reports not found", func(t *testing.T) {
		jobRepo.EXPECT().Claim(gomock.Any(), int64(9), claimant).Return(false, nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)

		_, err := service.Claim(context.Background(), 9, claimant)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Cancelled job reports invalid transition", func(t *testing.T) {
		jobRepo.EXPECT().Claim(gomock.Any(), int64(5), claimant).Return(false, nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Job{ID: 5, Status: domain.JobCancelled}, nil)

		_, err := service.Claim(context.Background(), 5, claimant)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
	})
}

func TestConfirmPayout(t *testing.T) {
	claimant := int64(2)

	t.Run("Single recipient defaults to claimant", func(t *testing.T) {
		service, jobRepo, treasuryRepo, accountRepo, ledgerRepo := NewMock(t)

		jobRepo.EXPECT().GetForUpdate(gomock.Any(), int64(5)).Return(&domain.Job{
			ID: 5, Title: "fix roof", Status: domain.JobCompleted, EscrowAmount: 600, ClaimedBy: &claimant,
		}, nil)
		treasuryRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.Treasury{Amount: 1000}, nil)
		treasuryRepo.EXPECT().Update(gomock.Any(), int64(400), gomock.Any()).Return(nil)
		accountRepo.EXPECT().Ensure(gomock.Any(), claimant).Return(nil)
		accountRepo.EXPECT().AddBalance(gomock.Any(), claimant, int64(600)).Return(nil)
		accountRepo.EXPECT().AddReputation(gomock.Any(), claimant, int64(10)).Return(nil)
		accountRepo.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).Return(nil)
		ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.LedgerEntry) error {
				assert.Equal(t, domain.AccountTreasury, entry.FromAccount)
				assert.Equal(t, domain.Wallet(claimant), entry.ToAccount)
				return nil
			})
		jobRepo.EXPECT().MarkPaid(gomock.Any(), int64(5)).Return(true, nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Job{ID: 5, Status: domain.JobPaid}, nil)

		result, err := service.ConfirmPayout(context.Background(), 5, nil, 9)
		assert.NoError(t, err)
		assert.Len(t, result.Payouts, 1)
		assert.Equal(t, int64(600), result.Payouts[0].Amount)
		assert.Equal(t, int64(10), result.Payouts[0].Rep)
	})

	t.Run("Split payouts sum to the reward exactly", func(t *testing.T) {
		service, jobRepo, treasuryRepo, accountRepo, ledgerRepo := NewMock(t)
		recipients := []int64{2, 3, 4}

		jobRepo.EXPECT().GetForUpdate(gomock.Any(), int64(5)).Return(&domain.Job{
			ID: 5, Title: "fix roof", Status: domain.JobCompleted, EscrowAmount: 100, ClaimedBy: &claimant,
		}, nil)
		treasuryRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.Treasury{Amount: 1000}, nil)
		treasuryRepo.EXPECT().Update(gomock.Any(), int64(900), gomock.Any()).Return(nil)
		for _, id := range recipients {
			accountRepo.EXPECT().Ensure(gomock.Any(), id).Return(nil)
			accountRepo.EXPECT().AddBalance(gomock.Any(), id, gomock.Any()).Return(nil)
			accountRepo.EXPECT().AddReputation(gomock.Any(), id, int64(10)).Return(nil)
			accountRepo.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).Return(nil)
			ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		}
		jobRepo.EXPECT().MarkPaid(gomock.Any(), int64(5)).Return(true, nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Job{ID: 5, Status: domain.JobPaid}, nil)

		result, err := service.ConfirmPayout(context.Background(), 5, recipients, 9)
		assert.NoError(t, err)

		var total int64
		for _, p := range result.Payouts {
			total += p.Amount
		}
		assert.Equal(t, int64(100), total)
		assert.Equal(t, int64(34), result.Payouts[0].Amount)
		assert.Equal(t, int64(33), result.Payouts[1].Amount)
		assert.Equal(t, int64(33), result.Payouts[2].Amount)
	})

	t.Run("Treasury shortfall aborts and leaves job retryable", func(t *testing.T) {
		service, jobRepo, treasuryRepo, _, _ := NewMock(t)

		jobRepo.EXPECT().GetForUpdate(gomock.Any(), int64(5)).Return(&domain.Job{
			ID: 5, Status: domain.JobCompleted, EscrowAmount: 600, ClaimedBy: &claimant,
		}, nil)
		treasuryRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.Treasury{Amount: 500}, nil)

		_, err := service.ConfirmPayout(context.Background(), 5, nil, 9)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientTreasury)
	})

	t.Run("Uncompleted job rejected", func(t *testing.T) {
		service, jobRepo, _, _, _ := NewMock(t)

		jobRepo.EXPECT().GetForUpdate(gomock.Any(), int64(5)).Return(&domain.Job{
			ID: 5, Status: domain.JobClaimed, EscrowAmount: 600, ClaimedBy: &claimant,
		}, nil)

		_, err := service.ConfirmPayout(context.Background(), 5, nil, 9)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
	})
}

func TestCancel(t *testing.T) {
	service, jobRepo, _, _, ledgerRepo := NewMock(t)

	t.Run("Cancel releases the reservation", func(t *testing.T) {
		jobRepo.EXPECT().GetForUpdate(gomock.Any(), int64(5)).Return(&domain.Job{ID: 5, Status: domain.JobOpen, EscrowAmount: 600}, nil)
		jobRepo.EXPECT().Cancel(gomock.Any(), int64(5)).Return(true, nil)
		ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.LedgerEntry) error {
				assert.Equal(t, domain.LedgerEscrowReleased, entry.EntryType)
				assert.Equal(t, domain.JobEscrow(5), entry.FromAccount)
				assert.Equal(t, domain.AccountTreasuryAvailable, entry.ToAccount)
				return nil
			})
		jobRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Job{ID: 5, Status: domain.JobCancelled}, nil)

		job, err := service.Cancel(context.Background(), 5, 9)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobCancelled, job.Status)
	})

	t.Run("Paid job cannot be cancelled", func(t *testing.T) {
		jobRepo.EXPECT().GetForUpdate(gomock.Any(), int64(5)).Return(&domain.Job{ID: 5, Status: domain.JobPaid, EscrowAmount: 600}, nil)
		jobRepo.EXPECT().Cancel(gomock.Any(), int64(5)).Return(false, nil)

		_, err := service.Cancel(context.Background(), 5, 9)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
	})
}

func TestReopen(t *testing.T) {
	service, jobRepo, treasuryRepo, _, ledgerRepo := NewMock(t)

	t.Run("Reopen re-reserves with fresh availability check", func(t *testing.T) {
		jobRepo.EXPECT().GetForUpdate(gomock.Any(), int64(5)).Return(&domain.Job{ID: 5, Status: domain.JobCancelled, EscrowAmount: 600}, nil)
		treasuryRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.Treasury{Amount: 1000}, nil)
		jobRepo.EXPECT().ReservedEscrow(gomock.Any()).Return(int64(0), nil)
		jobRepo.EXPECT().Reopen(gomock.Any(), int64(5)).Return(true, nil)
		ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Job{ID: 5, Status: domain.JobOpen}, nil)

		job, err := service.Reopen(context.Background(), 5, 9)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobOpen, job.Status)
	})

	t.Run("Reopen blocked when pool cannot cover the reward again", func(t *testing.T) {
		jobRepo.EXPECT().GetForUpdate(gomock.Any(), int64(5)).Return(&domain.Job{ID: 5, Status: domain.JobCancelled, EscrowAmount: 600}, nil)
		treasuryRepo.EXPECT().GetForUpdate(gomock.Any()).Return(&domain.Treasury{Amount: 1000}, nil)
		jobRepo.EXPECT().ReservedEscrow(gomock.Any()).Return(int64(500), nil)

		_, err := service.Reopen(context.Background(), 5, 9)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientTreasury)
	})
}

func TestSplitReward(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		n        int
		expected []int64
	}{
		{"Even split", 90, 3, []int64{30, 30, 30}},
		{"Remainder goes to the front", 100, 3, []int64{34, 33, 33}},
		{"One recipient takes all", 77, 1, []int64{77}},
		{"More recipients than units", 2, 3, []int64{1, 1, 0}},
		{"No recipients", 50, 0, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits := SplitReward(tt.total, tt.n)
			assert.Equal(t, tt.expected, splits)

			var sum int64
			for _, s := range splits {
				sum += s
			}
			if tt.n > 0 {
				assert.Equal(t, tt.total, sum)
			}
		})
	}
}
