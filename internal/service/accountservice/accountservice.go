package accountservice

//go:generate mockgen -source=accountservice.go -destination=mock_repo.go -package=accountservice

import (
	"context"
	"fmt"

	"github.com/akarpovich/orgbank/internal/apperrors"
	"github.com/akarpovich/orgbank/internal/config"
	"github.com/akarpovich/orgbank/internal/domain"
	"github.com/akarpovich/orgbank/internal/pg"
	"go.uber.org/zap"
)

type AccountRepo interface {
	Ensure(ctx context.Context, memberID int64) error
	GetByMemberID(ctx context.Context, memberID int64) (*domain.Account, error)
	GetForUpdate(ctx context.Context, memberID int64) (*domain.Account, error)
	AddBalance(ctx context.Context, memberID int64, delta int64) error
	AddShares(ctx context.Context, memberID int64, delta int64) error
	AddReputation(ctx context.Context, memberID int64, delta int64) error
	AddTransaction(ctx context.Context, tx *domain.Transaction) error
	ListTransactions(ctx context.Context, memberID *int64, types []string, limit int) ([]domain.Transaction, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
}

type Service struct {
	accountRepo AccountRepo
	ledgerRepo  LedgerRepo
	txManager   pg.TXManager
	cfg         *config.Config
}

func New(accountRepo AccountRepo, ledgerRepo LedgerRepo, txManager pg.TXManager, cfg *config.Config) *Service {
	return &Service{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		txManager:   txManager,
		cfg:         cfg,
	}
}

// Snapshot is the account view handed to the command layer.
type Snapshot struct {
	Account         *domain.Account
	SharesAvailable int64
	Level           int64
}

func (s *Service) GetAccount(ctx context.Context, memberID int64) (*Snapshot, error) {
	var account *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.accountRepo.Ensure(ctx, memberID); err != nil {
			return err
		}
		var err error
		account, err = s.accountRepo.GetByMemberID(ctx, memberID)
		return err
	})
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, apperrors.ErrNotFound
	}
	return s.snapshot(account), nil
}

func (s *Service) snapshot(account *domain.Account) *Snapshot {
	return &Snapshot{
		Account:         account,
		SharesAvailable: account.SharesAvailable(),
		Level:           s.Level(account.Reputation),
	}
}

// Level derives the member's level from reputation.
func (s *Service) Level(reputation int64) int64 {
	if s.cfg.LevelPerRep <= 0 {
		return 0
	}
	return reputation / s.cfg.LevelPerRep
}

// AddBalance credits or debits a wallet and records both the history row and
// the ledger entry in one transaction.
func (s *Service) AddBalance(ctx context.Context, memberID int64, delta int64, txType string, actorID *int64, reference string) (*Snapshot, error) {
	var account *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.accountRepo.Ensure(ctx, memberID); err != nil {
			return err
		}
		if err := s.accountRepo.AddBalance(ctx, memberID, delta); err != nil {
			return err
		}
		if err := s.accountRepo.AddTransaction(ctx, &domain.Transaction{
			MemberID:  memberID,
			Type:      txType,
			Amount:    delta,
			ActorID:   actorID,
			Reference: reference,
		}); err != nil {
			return err
		}
		if delta != 0 {
			entry := &domain.LedgerEntry{
				EntryType:     txType,
				Amount:        delta,
				FromAccount:   domain.AccountExternal,
				ToAccount:     domain.Wallet(memberID),
				ReferenceType: "account",
				ReferenceID:   memberID,
				ActorID:       actorID,
				Notes:         reference,
			}
			if delta < 0 {
				entry.Amount = -delta
				entry.FromAccount = domain.Wallet(memberID)
				entry.ToAccount = domain.AccountExternal
			}
			if err := s.ledgerRepo.Append(ctx, entry); err != nil {
				return err
			}
		}
		var err error
		account, err = s.accountRepo.GetByMemberID(ctx, memberID)
		return err
	})
	if err != nil {
		zap.L().Error("failed to add balance", zap.Error(err))
		return nil, err
	}
	return s.snapshot(account), nil
}

// BuyShares converts wallet credits into shares at the configured price. The
// debit and the share credit apply together or not at all.
func (s *Service) BuyShares(ctx context.Context, memberID int64, sharesDelta int64, actorID *int64, reference string) (*Snapshot, int64, error) {
	cost := sharesDelta * s.cfg.SharePrice

	var account *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.accountRepo.Ensure(ctx, memberID); err != nil {
			return err
		}
		locked, err := s.accountRepo.GetForUpdate(ctx, memberID)
		if err != nil {
			return err
		}
		if locked.Balance < cost {
			return apperrors.ErrInsufficientFunds
		}
		if err := s.accountRepo.AddBalance(ctx, memberID, -cost); err != nil {
			return err
		}
		if err := s.accountRepo.AddShares(ctx, memberID, sharesDelta); err != nil {
			return err
		}
		if err := s.accountRepo.AddTransaction(ctx, &domain.Transaction{
			MemberID:    memberID,
			Type:        "buy_shares",
			Amount:      -cost,
			SharesDelta: sharesDelta,
			ActorID:     actorID,
			Reference:   reference,
		}); err != nil {
			return err
		}
		if err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			EntryType:     domain.LedgerSharesBought,
			Amount:        cost,
			FromAccount:   domain.Wallet(memberID),
			ToAccount:     domain.SharesLabel(memberID),
			ReferenceType: "account",
			ReferenceID:   memberID,
			ActorID:       actorID,
			Notes:         fmt.Sprintf("bought %d shares", sharesDelta),
		}); err != nil {
			return err
		}
		account, err = s.accountRepo.GetByMemberID(ctx, memberID)
		return err
	})
	if err != nil {
		if err != apperrors.ErrInsufficientFunds {
			zap.L().Error("failed to buy shares", zap.Error(err))
		}
		return nil, 0, err
	}
	return s.snapshot(account), cost, nil
}

func (s *Service) AddReputation(ctx context.Context, memberID int64, delta int64, actorID *int64, reference string) (*Snapshot, error) {
	var account *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.accountRepo.Ensure(ctx, memberID); err != nil {
			return err
		}
		if err := s.accountRepo.AddReputation(ctx, memberID, delta); err != nil {
			return err
		}
		if err := s.accountRepo.AddTransaction(ctx, &domain.Transaction{
			MemberID:  memberID,
			Type:      "rep",
			RepDelta:  delta,
			ActorID:   actorID,
			Reference: reference,
		}); err != nil {
			return err
		}
		var err error
		account, err = s.accountRepo.GetByMemberID(ctx, memberID)
		return err
	})
	if err != nil {
		zap.L().Error("failed to add reputation", zap.Error(err))
		return nil, err
	}
	return s.snapshot(account), nil
}

func (s *Service) ListTransactions(ctx context.Context, memberID *int64, types []string, limit int) ([]domain.Transaction, error) {
	txs, err := s.accountRepo.ListTransactions(ctx, memberID, types, limit)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}
