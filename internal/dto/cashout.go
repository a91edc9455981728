package dto

import "time"

type CreateCashoutRequestDTO struct {
	RequesterID int64  `json:"requester_id"`
	Shares      int64  `json:"shares"`
	ChannelRef  string `json:"channel_ref,omitempty"`
	MessageRef  string `json:"message_ref,omitempty"`
}

type HandleCashoutRequestDTO struct {
	ActorID int64   `json:"actor_id"`
	Note    *string `json:"note,omitempty"`
}

type PayCashoutRequestDTO struct {
	ActorID int64   `json:"actor_id"`
	Payout  *int64  `json:"payout,omitempty"`
	Note    *string `json:"note,omitempty"`
}

type CashoutResponseDTO struct {
	ID              int64     `json:"id"`
	RequesterID     int64     `json:"requester_id"`
	Shares          int64     `json:"shares"`
	EstimatedPayout int64     `json:"estimated_payout"`
	Status          string    `json:"status"`
	HandledBy       *int64    `json:"handled_by,omitempty"`
	HandledNote     *string   `json:"handled_note,omitempty"`
	ChannelRef      string    `json:"channel_ref,omitempty"`
	MessageRef      string    `json:"message_ref,omitempty"`
	ThreadRef       *string   `json:"thread_ref,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PayCashoutResponseDTO struct {
	Request         CashoutResponseDTO `json:"request"`
	Payout          int64              `json:"payout"`
	TreasuryDebited bool               `json:"treasury_debited"`
}

type CashoutListResponseDTO struct {
	Requests []CashoutResponseDTO `json:"requests"`
	Total    int64                `json:"total"`
}

type ReconcileEscrowRequestDTO struct {
	MemberID         *int64 `json:"member_id,omitempty"`
	DryRun           bool   `json:"dry_run"`
	ForceClearActive bool   `json:"force_clear_active"`
	ActorID          int64  `json:"actor_id"`
}

type ReconcileAccountDTO struct {
	MemberID       int64 `json:"member_id"`
	TotalShares    int64 `json:"total_shares"`
	ExpectedLocked int64 `json:"expected_locked"`
	LockedBefore   int64 `json:"locked_before"`
	LockedAfter    int64 `json:"locked_after"`
	Changed        bool  `json:"changed"`
}

type ReconcileReportDTO struct {
	DryRun           bool                  `json:"dry_run"`
	ForceClearActive bool                  `json:"force_clear_active"`
	Accounts         []ReconcileAccountDTO `json:"accounts"`
	RequestsRejected []int64               `json:"requests_rejected,omitempty"`
}
