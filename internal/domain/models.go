package domain

import "time"

type Account struct {
	MemberID     int64     `db:"member_id"`
	Balance      int64     `db:"balance"`
	Shares       int64     `db:"shares"`
	LockedShares int64     `db:"locked_shares"`
	Reputation   int64     `db:"reputation"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// SharesAvailable is the portion of the holding not locked by in-flight
// cash-out requests.
func (a *Account) SharesAvailable() int64 {
	avail := a.Shares - a.LockedShares
	if avail < 0 {
		return 0
	}
	return avail
}

type Treasury struct {
	Amount        int64      `db:"amount"`
	LastUpdatedBy *int64     `db:"last_updated_by"`
	LastUpdatedAt *time.Time `db:"last_updated_at"`
}

type Job struct {
	ID           int64        `db:"id"`
	Title        string       `db:"title"`
	Description  string       `db:"description"`
	Reward       int64        `db:"reward"`
	EscrowAmount int64        `db:"escrow_amount"`
	EscrowStatus EscrowStatus `db:"escrow_status"`
	Status       JobStatus    `db:"status"`
	CreatedBy    int64        `db:"created_by"`
	ClaimedBy    *int64       `db:"claimed_by"`
	Category     *string      `db:"category"`
	ChannelRef   string       `db:"channel_ref"`
	MessageRef   string       `db:"message_ref"`
	ThreadRef    *string      `db:"thread_ref"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

type CashoutRequest struct {
	ID          int64         `db:"id"`
	RequesterID int64         `db:"requester_id"`
	Shares      int64         `db:"shares"`
	Status      CashoutStatus `db:"status"`
	HandledBy   *int64        `db:"handled_by"`
	HandledNote *string       `db:"handled_note"`
	ChannelRef  string        `db:"channel_ref"`
	MessageRef  string        `db:"message_ref"`
	ThreadRef   *string       `db:"thread_ref"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

// Transaction is an append-only per-account history row. Rows are never
// mutated after insert.
type Transaction struct {
	ID          int64     `db:"id"`
	MemberID    int64     `db:"member_id"`
	Type        string    `db:"type"`
	Amount      int64     `db:"amount"`
	SharesDelta int64     `db:"shares_delta"`
	RepDelta    int64     `db:"rep_delta"`
	ActorID     *int64    `db:"actor_id"`
	Reference   string    `db:"reference"`
	CreatedAt   time.Time `db:"created_at"`
}

// LedgerEntry is an append-only double-entry-flavored audit row. Account
// labels are free-form: treasury, treasury_available, wallet:<id>,
// shares:<id>, job_escrow:<id>, escrow:<id>, external.
type LedgerEntry struct {
	ID            int64     `db:"id"`
	EntryType     string    `db:"entry_type"`
	Amount        int64     `db:"amount"`
	FromAccount   string    `db:"from_account"`
	ToAccount     string    `db:"to_account"`
	ReferenceType string    `db:"reference_type"`
	ReferenceID   int64     `db:"reference_id"`
	ActorID       *int64    `db:"actor_id"`
	Notes         string    `db:"notes"`
	CreatedAt     time.Time `db:"created_at"`
}

const (
	LedgerEscrowReserved  = "escrow_reserved"
	LedgerEscrowReleased  = "escrow_released"
	LedgerCashoutApproved = "cashout_approved"
	LedgerCashoutPaid     = "cashout_paid"
	LedgerSharesBought    = "shares_bought"
	LedgerSharesSold      = "shares_sold"
	LedgerTreasurySet     = "treasury_set"
	LedgerTreasuryAdjust  = "treasury_adjust"
)

// Well-known ledger account labels. Per-entity labels are built with the
// Wallet/Shares/JobEscrow/Escrow helpers.
const (
	AccountTreasury          = "treasury"
	AccountTreasuryAvailable = "treasury_available"
	AccountExternal          = "external"
	AccountOrgPool           = "org_pool"
)
