package service

import (
	"github.com/akarpovich/orgbank/internal/config"
	"github.com/akarpovich/orgbank/internal/pg"
	"github.com/akarpovich/orgbank/internal/repo"
	accountservice "github.com/akarpovich/orgbank/internal/service/accountservice"
	cashoutservice "github.com/akarpovich/orgbank/internal/service/cashoutservice"
	jobservice "github.com/akarpovich/orgbank/internal/service/jobservice"
	reconcileservice "github.com/akarpovich/orgbank/internal/service/reconcileservice"
	treasuryservice "github.com/akarpovich/orgbank/internal/service/treasuryservice"
)

type Services struct {
	AccountService   *accountservice.Service
	TreasuryService  *treasuryservice.Service
	JobService       *jobservice.Service
	CashoutService   *cashoutservice.Service
	ReconcileService *reconcileservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	return &Services{
		AccountService:   accountservice.New(repo.AccountRepo, repo.LedgerRepo, txManager, cfg),
		TreasuryService:  treasuryservice.New(repo.TreasuryRepo, repo.JobRepo, repo.LedgerRepo, txManager),
		JobService:       jobservice.New(repo.JobRepo, repo.TreasuryRepo, repo.AccountRepo, repo.LedgerRepo, txManager, cfg),
		CashoutService:   cashoutservice.New(repo.CashoutRepo, repo.AccountRepo, repo.TreasuryRepo, repo.LedgerRepo, txManager, cfg),
		ReconcileService: reconcileservice.New(repo.AccountRepo, repo.CashoutRepo, txManager),
	}
}
