package dto

import "time"

type CreateJobRequestDTO struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Reward      int64   `json:"reward"`
	CreatedBy   int64   `json:"created_by"`
	Category    *string `json:"category,omitempty"`
	ChannelRef  string  `json:"channel_ref,omitempty"`
	MessageRef  string  `json:"message_ref,omitempty"`
}

type ClaimJobRequestDTO struct {
	ClaimantID int64 `json:"claimant_id"`
}

type PayoutJobRequestDTO struct {
	Recipients []int64 `json:"recipients,omitempty"`
	ActorID    int64   `json:"actor_id"`
}

type JobActorRequestDTO struct {
	ActorID int64 `json:"actor_id"`
}

type JobResponseDTO struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Reward       int64     `json:"reward"`
	EscrowAmount int64     `json:"escrow_amount"`
	EscrowStatus string    `json:"escrow_status"`
	Status       string    `json:"status"`
	CreatedBy    int64     `json:"created_by"`
	ClaimedBy    *int64    `json:"claimed_by,omitempty"`
	Category     *string   `json:"category,omitempty"`
	ChannelRef   string    `json:"channel_ref,omitempty"`
	MessageRef   string    `json:"message_ref,omitempty"`
	ThreadRef    *string   `json:"thread_ref,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RecipientPayoutDTO struct {
	MemberID int64 `json:"member_id"`
	Amount   int64 `json:"amount"`
	Rep      int64 `json:"rep"`
}

type PayoutJobResponseDTO struct {
	Job     JobResponseDTO       `json:"job"`
	Payouts []RecipientPayoutDTO `json:"payouts"`
}
