package treasury

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/akarpovich/orgbank/internal/apperrors"
	"github.com/akarpovich/orgbank/internal/domain"
	"github.com/akarpovich/orgbank/internal/dto"
	treasuryservice "github.com/akarpovich/orgbank/internal/service/treasuryservice"
	"github.com/akarpovich/orgbank/pkg/utils"
)

type Service interface {
	Get(ctx context.Context) (*treasuryservice.Snapshot, error)
	Set(ctx context.Context, amount int64, actorID int64) (*domain.Treasury, error)
	Adjust(ctx context.Context, delta int64, actorID int64) (int64, error)
	LedgerReconcile(ctx context.Context) (*treasuryservice.DriftReport, error)
	ListLedger(ctx context.Context, limit int) ([]domain.LedgerEntry, error)
}

type TreasuryHandler struct {
	treasuryService Service
}

func New(treasuryService Service) *TreasuryHandler {
	return &TreasuryHandler{
		treasuryService: treasuryService,
	}
}

// Get godoc
//
//	@Summary		Get treasury snapshot
//	@Description	Retrieve the nominal treasury amount, the sum reserved by live job escrow, and the remaining available capacity.
//	@Tags			Treasury
//	@Produce		json
//	@Success		200	{object}	dto.TreasuryResponseDTO	"Treasury snapshot"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/treasury [get]
func (h *TreasuryHandler) Get(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.treasuryService.Get(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TreasuryResponseDTO{
		Amount:        snapshot.Treasury.Amount,
		Reserved:      snapshot.Reserved,
		Available:     snapshot.Available,
		LastUpdatedBy: snapshot.Treasury.LastUpdatedBy,
		LastUpdatedAt: snapshot.Treasury.LastUpdatedAt,
	})
}

// Set godoc
//
//	@Summary		Set treasury amount
//	@Description	Overwrite the treasury with a manually reconciled amount. Negative amounts are rejected.
//	@Tags			Treasury
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TreasurySetRequestDTO	true	"New treasury amount"
//	@Success		200		{object}	dto.TreasuryResponseDTO		"Updated treasury"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		409		{object}	utils.Response				"Negative amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/treasury [put]
func (h *TreasuryHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req dto.TreasurySetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	treasury, err := h.treasuryService.Set(r.Context(), req.Amount, req.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNegativeTreasury):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TreasuryResponseDTO{
		Amount:        treasury.Amount,
		LastUpdatedBy: treasury.LastUpdatedBy,
		LastUpdatedAt: treasury.LastUpdatedAt,
	})
}

// Adjust godoc
//
//	@Summary		Adjust treasury by a delta
//	@Description	Apply a signed delta to the treasury amount. An adjustment that would take the treasury below zero is rejected.
//	@Tags			Treasury
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TreasuryAdjustRequestDTO	true	"Delta payload"
//	@Success		200		{object}	dto.TreasuryAdjustResponseDTO	"New treasury amount"
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		409		{object}	utils.Response					"Would go negative"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/treasury/adjust [post]
func (h *TreasuryHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req dto.TreasuryAdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := h.treasuryService.Adjust(r.Context(), req.Delta, req.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNegativeTreasury):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TreasuryAdjustResponseDTO{Amount: amount})
}

// Reconcile godoc
//
//	@Summary		Reconcile treasury against the ledger
//	@Description	Replay ledger flows from the latest manual baseline and report any drift between the stored and derived amounts. Nothing is corrected.
//	@Tags			Treasury
//	@Produce		json
//	@Success		200	{object}	dto.DriftReportResponseDTO	"Drift report"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/treasury/reconcile [post]
func (h *TreasuryHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	report, err := h.treasuryService.LedgerReconcile(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DriftReportResponseDTO{
		Amount:          report.Amount,
		Baseline:        report.Baseline,
		BaselineEntryID: report.BaselineEntryID,
		Credits:         report.Credits,
		Debits:          report.Debits,
		Derived:         report.Derived,
		Drift:           report.Drift,
	})
}

// ListLedger godoc
//
//	@Summary		List ledger entries
//	@Description	List append-only ledger entries, newest first.
//	@Tags			Treasury
//	@Produce		json
//	@Param			limit	query		int								false	"Row limit"
//	@Success		200		{array}		dto.LedgerEntryResponseDTO		"Ledger entries"
//	@Failure		400		{object}	utils.Response					"Invalid query"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/ledger [get]
func (h *TreasuryHandler) ListLedger(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.treasuryService.ListLedger(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.LedgerEntryResponseDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.LedgerEntryResponseDTO{
			ID:            entry.ID,
			EntryType:     entry.EntryType,
			Amount:        entry.Amount,
			FromAccount:   entry.FromAccount,
			ToAccount:     entry.ToAccount,
			ReferenceType: entry.ReferenceType,
			ReferenceID:   entry.ReferenceID,
			ActorID:       entry.ActorID,
			Notes:         entry.Notes,
			CreatedAt:     entry.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
