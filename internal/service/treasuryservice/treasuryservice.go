package treasuryservice

//go:generate mockgen -source=treasuryservice.go -destination=mock_repo.go -package=treasuryservice

import (
	"context"
	"fmt"

	"github.com/akarpovich/orgbank/internal/apperrors"
	"github.com/akarpovich/orgbank/internal/domain"
	"github.com/akarpovich/orgbank/internal/pg"
	"go.uber.org/zap"
)

type TreasuryRepo interface {
	Get(ctx context.Context) (*domain.Treasury, error)
	GetForUpdate(ctx context.Context) (*domain.Treasury, error)
	Update(ctx context.Context, amount int64, actorID *int64) error
}

type JobRepo interface {
	ReservedEscrow(ctx context.Context) (int64, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
	List(ctx context.Context, limit int) ([]domain.LedgerEntry, error)
	LatestBaseline(ctx context.Context) (amount int64, entryID int64, found bool, err error)
	TreasuryFlowsSince(ctx context.Context, afterID int64) (credits int64, debits int64, err error)
}

type Service struct {
	treasuryRepo TreasuryRepo
	jobRepo      JobRepo
	ledgerRepo   LedgerRepo
	txManager    pg.TXManager
}

func New(treasuryRepo TreasuryRepo, jobRepo JobRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		treasuryRepo: treasuryRepo,
		jobRepo:      jobRepo,
		ledgerRepo:   ledgerRepo,
		txManager:    txManager,
	}
}

// Snapshot is the treasury view for the command layer: the nominal amount,
// the sum reserved by live job escrow, and what is left to commit.
type Snapshot struct {
	Treasury  *domain.Treasury
	Reserved  int64
	Available int64
}

// DriftReport compares the stored treasury amount with the amount derived by
// replaying the ledger from the last manual baseline.
type DriftReport struct {
	Amount          int64
	Baseline        int64
	BaselineEntryID int64
	Credits         int64
	Debits          int64
	Derived         int64
	Drift           int64
}

func (s *Service) Get(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		treasury, err := s.treasuryRepo.Get(ctx)
		if err != nil {
			return err
		}
		reserved, err := s.jobRepo.ReservedEscrow(ctx)
		if err != nil {
			return err
		}
		snap = Snapshot{
			Treasury:  treasury,
			Reserved:  reserved,
			Available: treasury.Amount - reserved,
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to get treasury", zap.Error(err))
		return nil, err
	}
	return &snap, nil
}

// Set overwrites the treasury with a manually reconciled amount. The ledger
// entry it appends is a rebasing baseline, not a value flow.
func (s *Service) Set(ctx context.Context, amount int64, actorID int64) (*domain.Treasury, error) {
	if amount < 0 {
		return nil, apperrors.ErrNegativeTreasury
	}

	var treasury *domain.Treasury
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		before, err := s.treasuryRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if err := s.treasuryRepo.Update(ctx, amount, &actorID); err != nil {
			return err
		}
		if err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			EntryType:     domain.LedgerTreasurySet,
			Amount:        amount,
			FromAccount:   domain.AccountExternal,
			ToAccount:     domain.AccountTreasury,
			ReferenceType: "treasury",
			ActorID:       &actorID,
			Notes:         fmt.Sprintf("manual set: before=%d after=%d", before.Amount, amount),
		}); err != nil {
			return err
		}
		treasury, err = s.treasuryRepo.Get(ctx)
		return err
	})
	if err != nil {
		zap.L().Error("failed to set treasury", zap.Error(err))
		return nil, err
	}
	return treasury, nil
}

// Adjust applies a delta, refusing to let the treasury go negative.
func (s *Service) Adjust(ctx context.Context, delta int64, actorID int64) (int64, error) {
	var newAmount int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		before, err := s.treasuryRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		newAmount = before.Amount + delta
		if newAmount < 0 {
			return apperrors.ErrNegativeTreasury
		}
		if err := s.treasuryRepo.Update(ctx, newAmount, &actorID); err != nil {
			return err
		}
		entry := &domain.LedgerEntry{
			EntryType:     domain.LedgerTreasuryAdjust,
			Amount:        delta,
			FromAccount:   domain.AccountExternal,
			ToAccount:     domain.AccountTreasury,
			ReferenceType: "treasury",
			ActorID:       &actorID,
			Notes:         fmt.Sprintf("adjust: before=%d after=%d", before.Amount, newAmount),
		}
		if delta < 0 {
			entry.Amount = -delta
			entry.FromAccount = domain.AccountTreasury
			entry.ToAccount = domain.AccountExternal
		}
		return s.ledgerRepo.Append(ctx, entry)
	})
	if err != nil {
		if err != apperrors.ErrNegativeTreasury {
			zap.L().Error("failed to adjust treasury", zap.Error(err))
		}
		return 0, err
	}
	return newAmount, nil
}

func (s *Service) ReservedEscrow(ctx context.Context) (int64, error) {
	reserved, err := s.jobRepo.ReservedEscrow(ctx)
	if err != nil {
		zap.L().Error("failed to get reserved escrow", zap.Error(err))
		return 0, err
	}
	return reserved, nil
}

// LedgerReconcile reports drift between the stored treasury amount and the
// ledger-derived amount. Non-zero drift is surfaced, never corrected here.
func (s *Service) LedgerReconcile(ctx context.Context) (*DriftReport, error) {
	var report DriftReport
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		treasury, err := s.treasuryRepo.Get(ctx)
		if err != nil {
			return err
		}
		baseline, baselineID, _, err := s.ledgerRepo.LatestBaseline(ctx)
		if err != nil {
			return err
		}
		credits, debits, err := s.ledgerRepo.TreasuryFlowsSince(ctx, baselineID)
		if err != nil {
			return err
		}
		derived := baseline + credits - debits
		report = DriftReport{
			Amount:          treasury.Amount,
			Baseline:        baseline,
			BaselineEntryID: baselineID,
			Credits:         credits,
			Debits:          debits,
			Derived:         derived,
			Drift:           treasury.Amount - derived,
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to reconcile ledger", zap.Error(err))
		return nil, err
	}
	return &report, nil
}

func (s *Service) ListLedger(ctx context.Context, limit int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.List(ctx, limit)
	if err != nil {
		zap.L().Error("failed to list ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
