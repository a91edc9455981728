package reconcile

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akarpovich/orgbank/internal/dto"
	reconcileservice "github.com/akarpovich/orgbank/internal/service/reconcileservice"
	"github.com/akarpovich/orgbank/pkg/utils"
)

type Service interface {
	ReconcileEscrow(ctx context.Context, memberID *int64, dryRun, forceClearActive bool, actorID *int64) (*reconcileservice.Report, error)
}

type ReconcileHandler struct {
	reconcileService Service
}

func New(reconcileService Service) *ReconcileHandler {
	return &ReconcileHandler{
		reconcileService: reconcileService,
	}
}

// ReconcileEscrow godoc
//
//	@Summary		Reconcile locked shares against active cash-outs
//	@Description	Rebuild locked-share counts from the active cash-out requests, clamped to each holding. With force_clear_active every active request in scope is rejected first; with dry_run nothing is written.
//	@Tags			Reconcile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ReconcileEscrowRequestDTO	true	"Reconcile options"
//	@Success		200		{object}	dto.ReconcileReportDTO			"Reconciliation report"
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/reconcile/escrow [post]
func (h *ReconcileHandler) ReconcileEscrow(w http.ResponseWriter, r *http.Request) {
	var req dto.ReconcileEscrowRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.reconcileService.ReconcileEscrow(r.Context(), req.MemberID, req.DryRun, req.ForceClearActive, &req.ActorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.ReconcileReportDTO{
		DryRun:           report.DryRun,
		ForceClearActive: report.ForceClearActive,
		RequestsRejected: report.RequestsRejected,
		Accounts:         make([]dto.ReconcileAccountDTO, len(report.Accounts)),
	}
	for i, acc := range report.Accounts {
		response.Accounts[i] = dto.ReconcileAccountDTO{
			MemberID:       acc.MemberID,
			TotalShares:    acc.TotalShares,
			ExpectedLocked: acc.ExpectedLocked,
			LockedBefore:   acc.LockedBefore,
			LockedAfter:    acc.LockedAfter,
			Changed:        acc.Changed,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
