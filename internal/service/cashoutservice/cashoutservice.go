package cashoutservice

//go:generate mockgen -source=cashoutservice.go -destination=mock_repo.go -package=cashoutservice

import (
	"context"
	"fmt"

	"github.com/akarpovich/orgbank/internal/apperrors"
	"github.com/akarpovich/orgbank/internal/config"
	"github.com/akarpovich/orgbank/internal/domain"
	"github.com/akarpovich/orgbank/internal/pg"
	"go.uber.org/zap"
)

type CashoutRepo interface {
	Create(ctx context.Context, req *domain.CashoutRequest) error
	GetByID(ctx context.Context, requestID int64) (*domain.CashoutRequest, error)
	GetForUpdate(ctx context.Context, requestID int64) (*domain.CashoutRequest, error)
	UpdateStatus(ctx context.Context, requestID int64, from []domain.CashoutStatus, to domain.CashoutStatus, handledBy *int64, note *string) (bool, error)
	SetThreadRef(ctx context.Context, requestID int64, threadRef string) error
	List(ctx context.Context, statuses []domain.CashoutStatus, limit int) ([]domain.CashoutRequest, error)
	Count(ctx context.Context, statuses []domain.CashoutStatus) (int64, error)
}

type AccountRepo interface {
	Ensure(ctx context.Context, memberID int64) error
	GetForUpdate(ctx context.Context, memberID int64) (*domain.Account, error)
	AddShares(ctx context.Context, memberID int64, delta int64) error
	AddLockedShares(ctx context.Context, memberID int64, delta int64) error
	AddTransaction(ctx context.Context, tx *domain.Transaction) error
}

type TreasuryRepo interface {
	GetForUpdate(ctx context.Context) (*domain.Treasury, error)
	Update(ctx context.Context, amount int64, actorID *int64) error
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
}

type Service struct {
	cashoutRepo  CashoutRepo
	accountRepo  AccountRepo
	treasuryRepo TreasuryRepo
	ledgerRepo   LedgerRepo
	txManager    pg.TXManager
	cfg          *config.Config
}

func New(cashoutRepo CashoutRepo, accountRepo AccountRepo, treasuryRepo TreasuryRepo, ledgerRepo LedgerRepo, txManager pg.TXManager, cfg *config.Config) *Service {
	return &Service{
		cashoutRepo:  cashoutRepo,
		accountRepo:  accountRepo,
		treasuryRepo: treasuryRepo,
		ledgerRepo:   ledgerRepo,
		txManager:    txManager,
		cfg:          cfg,
	}
}

type PaidResult struct {
	Request         *domain.CashoutRequest
	Payout          int64
	TreasuryDebited bool
}

// EstimatedPayout is the provisional value of a request at the fixed
// per-share rate. It is informational until the request is paid.
func (s *Service) EstimatedPayout(shares int64) int64 {
	return shares * s.cfg.CashoutRate
}

// Request locks the member's shares behind a new pending cash-out request.
func (s *Service) Request(ctx context.Context, requesterID int64, shares int64, channelRef, messageRef string) (*domain.CashoutRequest, error) {
	req := &domain.CashoutRequest{
		RequesterID: requesterID,
		Shares:      shares,
		Status:      domain.CashoutPending,
		ChannelRef:  channelRef,
		MessageRef:  messageRef,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.accountRepo.Ensure(ctx, requesterID); err != nil {
			return err
		}
		account, err := s.accountRepo.GetForUpdate(ctx, requesterID)
		if err != nil {
			return err
		}
		if account.SharesAvailable() < shares {
			return apperrors.ErrInsufficientFunds
		}
		if err := s.accountRepo.AddLockedShares(ctx, requesterID, shares); err != nil {
			return err
		}
		if err := s.cashoutRepo.Create(ctx, req); err != nil {
			return err
		}
		return s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			EntryType:     domain.LedgerEscrowReserved,
			Amount:        shares,
			FromAccount:   domain.SharesLabel(requesterID),
			ToAccount:     domain.Escrow(req.ID),
			ReferenceType: "cashout",
			ReferenceID:   req.ID,
			ActorID:       &requesterID,
			Notes:         fmt.Sprintf("locked %d shares for cash-out", shares),
		})
	})
	if err != nil {
		if err != apperrors.ErrInsufficientFunds {
			zap.L().Error("failed to create cashout request", zap.Error(err))
		}
		return nil, err
	}
	return req, nil
}

func (s *Service) Get(ctx context.Context, requestID int64) (*domain.CashoutRequest, error) {
	req, err := s.cashoutRepo.GetByID(ctx, requestID)
	if err != nil {
		zap.L().Error("failed to get cashout request", zap.Error(err))
		return nil, err
	}
	if req == nil {
		return nil, apperrors.ErrNotFound
	}
	return req, nil
}

// Approve moves a pending request forward and records the estimated payout.
// No treasury value moves yet.
func (s *Service) Approve(ctx context.Context, requestID int64, actorID int64, note *string) (*domain.CashoutRequest, error) {
	var req *domain.CashoutRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.cashoutRepo.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if current == nil {
			return apperrors.ErrNotFound
		}
		if !current.Status.CanTransitionTo(domain.CashoutApproved) {
			return apperrors.ErrInvalidStateTransition
		}
		ok, err := s.cashoutRepo.UpdateStatus(ctx, requestID, []domain.CashoutStatus{domain.CashoutPending}, domain.CashoutApproved, &actorID, note)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrInvalidStateTransition
		}
		if err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			EntryType:     domain.LedgerCashoutApproved,
			Amount:        s.EstimatedPayout(current.Shares),
			FromAccount:   domain.Escrow(requestID),
			ToAccount:     domain.Wallet(current.RequesterID),
			ReferenceType: "cashout",
			ReferenceID:   requestID,
			ActorID:       &actorID,
			Notes:         fmt.Sprintf("estimated payout for %d shares", current.Shares),
		}); err != nil {
			return err
		}
		req, err = s.cashoutRepo.GetByID(ctx, requestID)
		return err
	})
	if err != nil {
		if err != apperrors.ErrNotFound && err != apperrors.ErrInvalidStateTransition {
			zap.L().Error("failed to approve cashout request", zap.Error(err))
		}
		return nil, err
	}
	return req, nil
}

// Reject releases the lock. The unlock is clamped to the currently locked
// amount so a previously reconciled account cannot go negative.
func (s *Service) Reject(ctx context.Context, requestID int64, actorID int64, note *string) (*domain.CashoutRequest, error) {
	var req *domain.CashoutRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.cashoutRepo.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if current == nil {
			return apperrors.ErrNotFound
		}
		if !current.Status.CanTransitionTo(domain.CashoutRejected) {
			return apperrors.ErrInvalidStateTransition
		}
		ok, err := s.cashoutRepo.UpdateStatus(ctx, requestID,
			[]domain.CashoutStatus{domain.CashoutPending, domain.CashoutApproved},
			domain.CashoutRejected, &actorID, note)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrInvalidStateTransition
		}
		if err := s.accountRepo.Ensure(ctx, current.RequesterID); err != nil {
			return err
		}
		account, err := s.accountRepo.GetForUpdate(ctx, current.RequesterID)
		if err != nil {
			return err
		}
		unlock := current.Shares
		if account.LockedShares < unlock {
			unlock = account.LockedShares
		}
		if err := s.accountRepo.AddLockedShares(ctx, current.RequesterID, -unlock); err != nil {
			return err
		}
		if err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			EntryType:     domain.LedgerEscrowReleased,
			Amount:        unlock,
			FromAccount:   domain.Escrow(requestID),
			ToAccount:     domain.SharesLabel(current.RequesterID),
			ReferenceType: "cashout",
			ReferenceID:   requestID,
			ActorID:       &actorID,
			Notes:         "cash-out rejected",
		}); err != nil {
			return err
		}
		req, err = s.cashoutRepo.GetByID(ctx, requestID)
		return err
	})
	if err != nil {
		if err != apperrors.ErrNotFound && err != apperrors.ErrInvalidStateTransition {
			zap.L().Error("failed to reject cashout request", zap.Error(err))
		}
		return nil, err
	}
	return req, nil
}

// MarkPaid finalizes an approved request: shares leave the holding, the lock
// is released, and the payout is debited from the treasury when the strict
// policy is on. With the policy off, payment happens out of band and only the
// bookkeeping applies.
func (s *Service) MarkPaid(ctx context.Context, requestID int64, payout int64, actorID int64, note *string) (*PaidResult, error) {
	var result PaidResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.cashoutRepo.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if current == nil {
			return apperrors.ErrNotFound
		}
		if current.Status != domain.CashoutApproved {
			return apperrors.ErrInvalidStateTransition
		}

		account, err := s.accountRepo.GetForUpdate(ctx, current.RequesterID)
		if err != nil {
			return err
		}
		if account == nil {
			return apperrors.ErrNotFound
		}
		// Re-checks against drift since approval.
		if account.LockedShares < current.Shares {
			return apperrors.ErrInsufficientFunds
		}
		if account.Shares < current.Shares {
			return apperrors.ErrInsufficientFunds
		}

		payoutFrom := domain.AccountExternal
		if s.cfg.StrictTreasury {
			treasury, err := s.treasuryRepo.GetForUpdate(ctx)
			if err != nil {
				return err
			}
			if treasury.Amount < payout {
				return apperrors.ErrInsufficientTreasury
			}
			if err := s.treasuryRepo.Update(ctx, treasury.Amount-payout, &actorID); err != nil {
				return err
			}
			payoutFrom = domain.AccountTreasury
			result.TreasuryDebited = true
		}

		if err := s.accountRepo.AddLockedShares(ctx, current.RequesterID, -current.Shares); err != nil {
			return err
		}
		if err := s.accountRepo.AddShares(ctx, current.RequesterID, -current.Shares); err != nil {
			return err
		}
		if err := s.accountRepo.AddTransaction(ctx, &domain.Transaction{
			MemberID:    current.RequesterID,
			Type:        "cashout",
			SharesDelta: -current.Shares,
			ActorID:     &actorID,
			Reference:   fmt.Sprintf("cashout:%d", requestID),
		}); err != nil {
			return err
		}

		ok, err := s.cashoutRepo.UpdateStatus(ctx, requestID, []domain.CashoutStatus{domain.CashoutApproved}, domain.CashoutPaid, &actorID, note)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrInvalidStateTransition
		}

		entries := []*domain.LedgerEntry{
			{
				EntryType:   domain.LedgerEscrowReleased,
				Amount:      current.Shares,
				FromAccount: domain.Escrow(requestID),
				ToAccount:   domain.SharesLabel(current.RequesterID),
				Notes:       "lock released on payout",
			},
			{
				EntryType:   domain.LedgerSharesSold,
				Amount:      current.Shares,
				FromAccount: domain.SharesLabel(current.RequesterID),
				ToAccount:   domain.AccountOrgPool,
				Notes:       fmt.Sprintf("sold %d shares", current.Shares),
			},
			{
				EntryType:   domain.LedgerCashoutPaid,
				Amount:      payout,
				FromAccount: payoutFrom,
				ToAccount:   domain.Wallet(current.RequesterID),
				Notes:       fmt.Sprintf("cash-out payout of %d", payout),
			},
		}
		for _, entry := range entries {
			entry.ReferenceType = "cashout"
			entry.ReferenceID = requestID
			entry.ActorID = &actorID
			if err := s.ledgerRepo.Append(ctx, entry); err != nil {
				return err
			}
		}

		result.Payout = payout
		result.Request, err = s.cashoutRepo.GetByID(ctx, requestID)
		return err
	})
	if err != nil {
		if err != apperrors.ErrNotFound && err != apperrors.ErrInvalidStateTransition &&
			err != apperrors.ErrInsufficientFunds && err != apperrors.ErrInsufficientTreasury {
			zap.L().Error("failed to mark cashout paid", zap.Error(err))
		}
		return nil, err
	}
	return &result, nil
}

func (s *Service) SetThreadRef(ctx context.Context, requestID int64, threadRef string) error {
	err := s.cashoutRepo.SetThreadRef(ctx, requestID, threadRef)
	if err != nil {
		zap.L().Error("failed to set cashout thread ref", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context, statuses []domain.CashoutStatus, limit int) ([]domain.CashoutRequest, int64, error) {
	if len(statuses) == 0 {
		statuses = []domain.CashoutStatus{domain.CashoutPending}
	}
	reqs, err := s.cashoutRepo.List(ctx, statuses, limit)
	if err != nil {
		zap.L().Error("failed to list cashout requests", zap.Error(err))
		return nil, 0, err
	}
	count, err := s.cashoutRepo.Count(ctx, statuses)
	if err != nil {
		zap.L().Error("failed to count cashout requests", zap.Error(err))
		return nil, 0, err
	}
	return reqs, count, nil
}
