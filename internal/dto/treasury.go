package dto

import "time"

type TreasuryResponseDTO struct {
	Amount        int64      `json:"amount"`
	Reserved      int64      `json:"reserved"`
	Available     int64      `json:"available"`
	LastUpdatedBy *int64     `json:"last_updated_by,omitempty"`
	LastUpdatedAt *time.Time `json:"last_updated_at,omitempty"`
}

type TreasurySetRequestDTO struct {
	Amount  int64 `json:"amount"`
	ActorID int64 `json:"actor_id"`
}

type TreasuryAdjustRequestDTO struct {
	Delta   int64 `json:"delta"`
	ActorID int64 `json:"actor_id"`
}

type TreasuryAdjustResponseDTO struct {
	Amount int64 `json:"amount"`
}

type DriftReportResponseDTO struct {
	Amount          int64 `json:"amount"`
	Baseline        int64 `json:"baseline"`
	BaselineEntryID int64 `json:"baseline_entry_id"`
	Credits         int64 `json:"credits"`
	Debits          int64 `json:"debits"`
	Derived         int64 `json:"derived"`
	Drift           int64 `json:"drift"`
}

type LedgerEntryResponseDTO struct {
	ID            int64     `json:"id"`
	EntryType     string    `json:"entry_type"`
	Amount        int64     `json:"amount"`
	FromAccount   string    `json:"from_account"`
	ToAccount     string    `json:"to_account"`
	ReferenceType string    `json:"reference_type,omitempty"`
	ReferenceID   int64     `json:"reference_id,omitempty"`
	ActorID       *int64    `json:"actor_id,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
