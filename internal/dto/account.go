package dto

import "time"

type AccountResponseDTO struct {
	MemberID        int64     `json:"member_id"`
	Balance         int64     `json:"balance"`
	Shares          int64     `json:"shares"`
	LockedShares    int64     `json:"locked_shares"`
	SharesAvailable int64     `json:"shares_available"`
	Reputation      int64     `json:"reputation"`
	Level           int64     `json:"level"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AddBalanceRequestDTO struct {
	Delta     int64  `json:"delta"`
	Type      string `json:"type"`
	ActorID   *int64 `json:"actor_id,omitempty"`
	Reference string `json:"reference,omitempty"`
}

type BuySharesRequestDTO struct {
	Shares    int64  `json:"shares"`
	ActorID   *int64 `json:"actor_id,omitempty"`
	Reference string `json:"reference,omitempty"`
}

type BuySharesResponseDTO struct {
	Account AccountResponseDTO `json:"account"`
	Cost    int64              `json:"cost"`
}

type AddReputationRequestDTO struct {
	Delta     int64  `json:"delta"`
	ActorID   *int64 `json:"actor_id,omitempty"`
	Reference string `json:"reference,omitempty"`
}

type TransactionResponseDTO struct {
	ID          int64     `json:"id"`
	MemberID    int64     `json:"member_id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	SharesDelta int64     `json:"shares_delta"`
	RepDelta    int64     `json:"rep_delta"`
	ActorID     *int64    `json:"actor_id,omitempty"`
	Reference   string    `json:"reference,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
