package repo

import (
	"github.com/akarpovich/orgbank/internal/pg"
	accountrepo "github.com/akarpovich/orgbank/internal/repo/account-repo"
	cashoutrepo "github.com/akarpovich/orgbank/internal/repo/cashout-repo"
	jobrepo "github.com/akarpovich/orgbank/internal/repo/job-repo"
	ledgerrepo "github.com/akarpovich/orgbank/internal/repo/ledger-repo"
	treasuryrepo "github.com/akarpovich/orgbank/internal/repo/treasury-repo"
)

type Repositories struct {
	AccountRepo  *accountrepo.Repository
	TreasuryRepo *treasuryrepo.Repository
	JobRepo      *jobrepo.Repository
	CashoutRepo  *cashoutrepo.Repository
	LedgerRepo   *ledgerrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AccountRepo:  accountrepo.New(conn),
		TreasuryRepo: treasuryrepo.New(conn),
		JobRepo:      jobrepo.New(conn),
		CashoutRepo:  cashoutrepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
	}
}
