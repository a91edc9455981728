package reconcileservice

//go:generate mockgen -source=reconcileservice.go -destination=mock_repo.go -package=reconcileservice

import (
	"context"

	"github.com/akarpovich/orgbank/internal/domain"
	"github.com/akarpovich/orgbank/internal/pg"
	"go.uber.org/zap"
)

type AccountRepo interface {
	Ensure(ctx context.Context, memberID int64) error
	GetForUpdate(ctx context.Context, memberID int64) (*domain.Account, error)
	SetLockedShares(ctx context.Context, memberID int64, lockedShares int64) error
	ListMemberIDs(ctx context.Context) ([]int64, error)
}

type CashoutRepo interface {
	SumActiveShares(ctx context.Context, requesterID int64) (int64, error)
	ListActiveIDs(ctx context.Context, requesterID *int64) ([]int64, error)
	ForceRejectActive(ctx context.Context, requesterID *int64, handledBy *int64) ([]int64, error)
}

type Service struct {
	accountRepo AccountRepo
	cashoutRepo CashoutRepo
	txManager   pg.TXManager
}

func New(accountRepo AccountRepo, cashoutRepo CashoutRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo: accountRepo,
		cashoutRepo: cashoutRepo,
		txManager:   txManager,
	}
}

type AccountResult struct {
	MemberID       int64
	TotalShares    int64
	ExpectedLocked int64
	LockedBefore   int64
	LockedAfter    int64
	Changed        bool
}

type Report struct {
	DryRun           bool
	ForceClearActive bool
	Accounts         []AccountResult
	RequestsRejected []int64
}

// ReconcileEscrow rebuilds locked-share counts from the active cash-out
// requests. Expected locks are clamped to [0, holding]. With
// forceClearActive every active request in scope is rejected first and
// expectations drop to zero; with dryRun nothing is written, only reported.
func (s *Service) ReconcileEscrow(ctx context.Context, memberID *int64, dryRun, forceClearActive bool, actorID *int64) (*Report, error) {
	report := &Report{DryRun: dryRun, ForceClearActive: forceClearActive}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if forceClearActive {
			if dryRun {
				ids, err := s.cashoutRepo.ListActiveIDs(ctx, memberID)
				if err != nil {
					return err
				}
				report.RequestsRejected = ids
			} else {
				ids, err := s.cashoutRepo.ForceRejectActive(ctx, memberID, actorID)
				if err != nil {
					return err
				}
				report.RequestsRejected = ids
			}
		}

		var members []int64
		if memberID != nil {
			members = []int64{*memberID}
		} else {
			var err error
			members, err = s.accountRepo.ListMemberIDs(ctx)
			if err != nil {
				return err
			}
		}

		for _, id := range members {
			if err := s.accountRepo.Ensure(ctx, id); err != nil {
				return err
			}
			account, err := s.accountRepo.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}

			var expected int64
			if !forceClearActive {
				expected, err = s.cashoutRepo.SumActiveShares(ctx, id)
				if err != nil {
					return err
				}
			}

			after := expected
			if after > account.Shares {
				after = account.Shares
			}
			if after < 0 {
				after = 0
			}

			changed := account.LockedShares != after
			if changed && !dryRun {
				if err := s.accountRepo.SetLockedShares(ctx, id, after); err != nil {
					return err
				}
			}

			report.Accounts = append(report.Accounts, AccountResult{
				MemberID:       id,
				TotalShares:    account.Shares,
				ExpectedLocked: expected,
				LockedBefore:   account.LockedShares,
				LockedAfter:    after,
				Changed:        changed,
			})
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to reconcile escrow", zap.Error(err))
		return nil, err
	}
	return report, nil
}
