package jobservice

//go:generate mockgen -source=jobservice.go -destination=mock_repo.go -package=jobservice

import (
	"context"
	"fmt"

	"github.com/akarpovich/orgbank/internal/apperrors"
	"github.com/akarpovich/orgbank/internal/config"
	"github.com/akarpovich/orgbank/internal/domain"
	"github.com/akarpovich/orgbank/internal/pg"
	"go.uber.org/zap"
)

type JobRepo interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, jobID int64) (*domain.Job, error)
	GetForUpdate(ctx context.Context, jobID int64) (*domain.Job, error)
	Claim(ctx context.Context, jobID int64, claimantID int64) (bool, error)
	Complete(ctx context.Context, jobID int64) (bool, error)
	MarkPaid(ctx context.Context, jobID int64) (bool, error)
	Cancel(ctx context.Context, jobID int64) (bool, error)
	Reopen(ctx context.Context, jobID int64) (bool, error)
	SetThreadRef(ctx context.Context, jobID int64, threadRef string) error
	ReservedEscrow(ctx context.Context) (int64, error)
}

type TreasuryRepo interface {
	GetForUpdate(ctx context.Context) (*domain.Treasury, error)
	Update(ctx context.Context, amount int64, actorID *int64) error
}

type AccountRepo interface {
	Ensure(ctx context.Context, memberID int64) error
	AddBalance(ctx context.Context, memberID int64, delta int64) error
	AddReputation(ctx context.Context, memberID int64, delta int64) error
	AddTransaction(ctx context.Context, tx *domain.Transaction) error
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
}

type Service struct {
	jobRepo      JobRepo
	treasuryRepo TreasuryRepo
	accountRepo  AccountRepo
	ledgerRepo   LedgerRepo
	txManager    pg.TXManager
	cfg          *config.Config
}

func New(jobRepo JobRepo, treasuryRepo TreasuryRepo, accountRepo AccountRepo, ledgerRepo LedgerRepo, txManager pg.TXManager, cfg *config.Config) *Service {
	return &Service{
		jobRepo:      jobRepo,
		treasuryRepo: treasuryRepo,
		accountRepo:  accountRepo,
		ledgerRepo:   ledgerRepo,
		txManager:    txManager,
		cfg:          cfg,
	}
}

type CreateParams struct {
	Title       string
	Description string
	Reward      int64
	CreatedBy   int64
	Category    *string
	ChannelRef  string
	MessageRef  string
}

type RecipientPayout struct {
	MemberID int64
	Amount   int64
	Rep      int64
}

type PayoutResult struct {
	Job     *domain.Job
	Payouts []RecipientPayout
}

// Create posts a job and reserves its reward against the available treasury.
// The capacity check and the insert run in the same transaction, so two
// concurrent creations cannot over-commit the pool.
func (s *Service) Create(ctx context.Context, params CreateParams) (*domain.Job, error) {
	job := &domain.Job{
		Title:        params.Title,
		Description:  params.Description,
		Reward:       params.Reward,
		EscrowAmount: params.Reward,
		EscrowStatus: domain.EscrowReserved,
		Status:       domain.JobOpen,
		CreatedBy:    params.CreatedBy,
		Category:     params.Category,
		ChannelRef:   params.ChannelRef,
		MessageRef:   params.MessageRef,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		treasury, err := s.treasuryRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		reserved, err := s.jobRepo.ReservedEscrow(ctx)
		if err != nil {
			return err
		}
		if params.Reward > treasury.Amount-reserved {
			return apperrors.ErrInsufficientTreasury
		}
		if err := s.jobRepo.Create(ctx, job); err != nil {
			return err
		}
		return s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			EntryType:     domain.LedgerEscrowReserved,
			Amount:        job.EscrowAmount,
			FromAccount:   domain.AccountTreasuryAvailable,
			ToAccount:     domain.JobEscrow(job.ID),
			ReferenceType: "job",
			ReferenceID:   job.ID,
			ActorID:       &params.CreatedBy,
			Notes:         fmt.Sprintf("reserved for job %q", params.Title),
		})
	})
	if err != nil {
		if err != apperrors.ErrInsufficientTreasury {
			zap.L().Error("failed to create job", zap.Error(err))
		}
		return nil, err
	}
	return job, nil
}

func (s *Service) Get(ctx context.Context, jobID int64) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		zap.L().Error("failed to get job", zap.Error(err))
		return nil, err
	}
	if job == nil {
		return nil, apperrors.ErrNotFound
	}
	return job, nil
}

// Claim accepts an open job for the claimant. Losing the race is a normal,
// reported outcome.
func (s *Service) Claim(ctx context.Context, jobID int64, claimantID int64) (*domain.Job, error) {
	var job *domain.Job
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.jobRepo.Claim(ctx, jobID, claimantID)
		if err != nil {
			return err
		}
		job, err = s.jobRepo.GetByID(ctx, jobID)
		if err != nil {
			return err
		}
		if job == nil {
			return apperrors.ErrNotFound
		}
		if !ok {
			if job.Status == domain.JobClaimed {
				return apperrors.ErrClaimLost
			}
			return apperrors.ErrInvalidStateTransition
		}
		return nil
	})
	if err != nil {
		if err != apperrors.ErrNotFound && err != apperrors.ErrClaimLost && err != apperrors.ErrInvalidStateTransition {
			zap.L().Error("failed to claim job", zap.Error(err))
		}
		return nil, err
	}
	return job, nil
}

func (s *Service) Complete(ctx context.Context, jobID int64) (*domain.Job, error) {
	var job *domain.Job
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.jobRepo.Complete(ctx, jobID)
		if err != nil {
			return err
		}
		job, err = s.jobRepo.GetByID(ctx, jobID)
		if err != nil {
			return err
		}
		if job == nil {
			return apperrors.ErrNotFound
		}
		if !ok {
			return apperrors.ErrInvalidStateTransition
		}
		return nil
	})
	if err != nil {
		if err != apperrors.ErrNotFound && err != apperrors.ErrInvalidStateTransition {
			zap.L().Error("failed to complete job", zap.Error(err))
		}
		return nil, err
	}
	return job, nil
}

// ConfirmPayout pays a completed job from the treasury. With no explicit
// recipients the claimant is paid; for group jobs the reward is split across
// the listed recipients with the floor-division remainder going to the first
// of them, so the splits always sum to the reward exactly. A shortfall in the
// actual treasury aborts the whole payout and leaves the job completed and
// retryable.
func (s *Service) ConfirmPayout(ctx context.Context, jobID int64, recipients []int64, actorID int64) (*PayoutResult, error) {
	var result PayoutResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		job, err := s.jobRepo.GetForUpdate(ctx, jobID)
		if err != nil {
			return err
		}
		if job == nil {
			return apperrors.ErrNotFound
		}
		if job.Status != domain.JobCompleted {
			return apperrors.ErrInvalidStateTransition
		}
		if len(recipients) == 0 {
			if job.ClaimedBy == nil {
				return apperrors.ErrInvalidStateTransition
			}
			recipients = []int64{*job.ClaimedBy}
		}

		treasury, err := s.treasuryRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if treasury.Amount < job.EscrowAmount {
			return apperrors.ErrInsufficientTreasury
		}
		if err := s.treasuryRepo.Update(ctx, treasury.Amount-job.EscrowAmount, &actorID); err != nil {
			return err
		}

		splits := SplitReward(job.EscrowAmount, len(recipients))
		for i, memberID := range recipients {
			if err := s.accountRepo.Ensure(ctx, memberID); err != nil {
				return err
			}
			if err := s.accountRepo.AddBalance(ctx, memberID, splits[i]); err != nil {
				return err
			}
			rep := s.cfg.RepPerJobPayout
			if rep > 0 {
				if err := s.accountRepo.AddReputation(ctx, memberID, rep); err != nil {
					return err
				}
			}
			if err := s.accountRepo.AddTransaction(ctx, &domain.Transaction{
				MemberID:  memberID,
				Type:      "payout",
				Amount:    splits[i],
				RepDelta:  rep,
				ActorID:   &actorID,
				Reference: fmt.Sprintf("job:%d", job.ID),
			}); err != nil {
				return err
			}
			if err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
				EntryType:     domain.LedgerEscrowReleased,
				Amount:        splits[i],
				FromAccount:   domain.AccountTreasury,
				ToAccount:     domain.Wallet(memberID),
				ReferenceType: "job",
				ReferenceID:   job.ID,
				ActorID:       &actorID,
				Notes:         fmt.Sprintf("payout for job %q", job.Title),
			}); err != nil {
				return err
			}
			result.Payouts = append(result.Payouts, RecipientPayout{MemberID: memberID, Amount: splits[i], Rep: rep})
		}

		ok, err := s.jobRepo.MarkPaid(ctx, jobID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrInvalidStateTransition
		}
		result.Job, err = s.jobRepo.GetByID(ctx, jobID)
		return err
	})
	if err != nil {
		if err != apperrors.ErrNotFound && err != apperrors.ErrInvalidStateTransition && err != apperrors.ErrInsufficientTreasury {
			zap.L().Error("failed to pay out job", zap.Error(err))
		}
		return nil, err
	}
	return &result, nil
}

// Cancel releases the reservation back to the available pool. The nominal
// treasury amount was never debited by the reservation, so this is not a
// credit.
func (s *Service) Cancel(ctx context.Context, jobID int64, actorID int64) (*domain.Job, error) {
	var job *domain.Job
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.jobRepo.GetForUpdate(ctx, jobID)
		if err != nil {
			return err
		}
		if current == nil {
			return apperrors.ErrNotFound
		}
		ok, err := s.jobRepo.Cancel(ctx, jobID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrInvalidStateTransition
		}
		if err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			EntryType:     domain.LedgerEscrowReleased,
			Amount:        current.EscrowAmount,
			FromAccount:   domain.JobEscrow(jobID),
			ToAccount:     domain.AccountTreasuryAvailable,
			ReferenceType: "job",
			ReferenceID:   jobID,
			ActorID:       &actorID,
			Notes:         "job cancelled",
		}); err != nil {
			return err
		}
		job, err = s.jobRepo.GetByID(ctx, jobID)
		return err
	})
	if err != nil {
		if err != apperrors.ErrNotFound && err != apperrors.ErrInvalidStateTransition {
			zap.L().Error("failed to cancel job", zap.Error(err))
		}
		return nil, err
	}
	return job, nil
}

// Reopen puts a cancelled job back on the board. The reward is reserved
// again, so the same availability check as creation applies.
func (s *Service) Reopen(ctx context.Context, jobID int64, actorID int64) (*domain.Job, error) {
	var job *domain.Job
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.jobRepo.GetForUpdate(ctx, jobID)
		if err != nil {
			return err
		}
		if current == nil {
			return apperrors.ErrNotFound
		}
		if current.Status != domain.JobCancelled {
			return apperrors.ErrInvalidStateTransition
		}
		treasury, err := s.treasuryRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		reserved, err := s.jobRepo.ReservedEscrow(ctx)
		if err != nil {
			return err
		}
		if current.EscrowAmount > treasury.Amount-reserved {
			return apperrors.ErrInsufficientTreasury
		}
		ok, err := s.jobRepo.Reopen(ctx, jobID)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrInvalidStateTransition
		}
		if err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			EntryType:     domain.LedgerEscrowReserved,
			Amount:        current.EscrowAmount,
			FromAccount:   domain.AccountTreasuryAvailable,
			ToAccount:     domain.JobEscrow(jobID),
			ReferenceType: "job",
			ReferenceID:   jobID,
			ActorID:       &actorID,
			Notes:         "job reopened",
		}); err != nil {
			return err
		}
		job, err = s.jobRepo.GetByID(ctx, jobID)
		return err
	})
	if err != nil {
		if err != apperrors.ErrNotFound && err != apperrors.ErrInvalidStateTransition && err != apperrors.ErrInsufficientTreasury {
			zap.L().Error("failed to reopen job", zap.Error(err))
		}
		return nil, err
	}
	return job, nil
}

func (s *Service) SetThreadRef(ctx context.Context, jobID int64, threadRef string) error {
	err := s.jobRepo.SetThreadRef(ctx, jobID, threadRef)
	if err != nil {
		zap.L().Error("failed to set job thread ref", zap.Error(err))
		return err
	}
	return nil
}

// SplitReward divides total across n recipients with floor division, handing
// the remainder out one unit at a time from the front. The parts always sum
// to total.
func SplitReward(total int64, n int) []int64 {
	splits := make([]int64, n)
	if n == 0 {
		return splits
	}
	base := total / int64(n)
	rem := total - base*int64(n)
	for i := range splits {
		splits[i] = base
		if int64(i) < rem {
			splits[i]++
		}
	}
	return splits
}
