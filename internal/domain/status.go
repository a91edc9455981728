package domain

import "fmt"

type JobStatus string

const (
	JobOpen      JobStatus = "open"
	JobClaimed   JobStatus = "claimed"
	JobCompleted JobStatus = "completed"
	JobPaid      JobStatus = "paid"
	JobCancelled JobStatus = "cancelled"
)

type EscrowStatus string

const (
	EscrowReserved EscrowStatus = "reserved"
	EscrowReleased EscrowStatus = "released"
)

type CashoutStatus string

const (
	CashoutPending  CashoutStatus = "pending"
	CashoutApproved CashoutStatus = "approved"
	CashoutRejected CashoutStatus = "rejected"
	CashoutPaid     CashoutStatus = "paid"
)

// jobTransitions is the full transition table for jobs. Reopen is the one
// administrative backward edge.
var jobTransitions = map[JobStatus][]JobStatus{
	JobOpen:      {JobClaimed, JobCancelled},
	JobClaimed:   {JobCompleted, JobCancelled},
	JobCompleted: {JobPaid, JobCancelled},
	JobCancelled: {JobOpen},
	JobPaid:      {},
}

var cashoutTransitions = map[CashoutStatus][]CashoutStatus{
	CashoutPending:  {CashoutApproved, CashoutRejected},
	CashoutApproved: {CashoutPaid, CashoutRejected},
	CashoutRejected: {},
	CashoutPaid:     {},
}

func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no ordinary transition leaves the state. A
// cancelled job is terminal for the workflow even though an admin reopen
// exists.
func (s JobStatus) Terminal() bool {
	return s == JobPaid || s == JobCancelled
}

func (s CashoutStatus) CanTransitionTo(next CashoutStatus) bool {
	for _, allowed := range cashoutTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s CashoutStatus) Terminal() bool {
	return s == CashoutRejected || s == CashoutPaid
}

func Wallet(memberID int64) string {
	return fmt.Sprintf("wallet:%d", memberID)
}

func SharesLabel(memberID int64) string {
	return fmt.Sprintf("shares:%d", memberID)
}

func JobEscrow(jobID int64) string {
	return fmt.Sprintf("job_escrow:%d", jobID)
}

func Escrow(requestID int64) string {
	return fmt.Sprintf("escrow:%d", requestID)
}
