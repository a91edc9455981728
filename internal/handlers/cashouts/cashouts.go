package cashouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/akarpovich/orgbank/internal/apperrors"
	"github.com/akarpovich/orgbank/internal/domain"
	"github.com/akarpovich/orgbank/internal/dto"
	cashoutservice "github.com/akarpovich/orgbank/internal/service/cashoutservice"
	"github.com/akarpovich/orgbank/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	EstimatedPayout(shares int64) int64
	Request(ctx context.Context, requesterID int64, shares int64, channelRef, messageRef string) (*domain.CashoutRequest, error)
	Get(ctx context.Context, requestID int64) (*domain.CashoutRequest, error)
	Approve(ctx context.Context, requestID int64, actorID int64, note *string) (*domain.CashoutRequest, error)
	Reject(ctx context.Context, requestID int64, actorID int64, note *string) (*domain.CashoutRequest, error)
	MarkPaid(ctx context.Context, requestID int64, payout int64, actorID int64, note *string) (*cashoutservice.PaidResult, error)
	List(ctx context.Context, statuses []domain.CashoutStatus, limit int) ([]domain.CashoutRequest, int64, error)
}

type CashoutHandler struct {
	cashoutService Service
}

func New(cashoutService Service) *CashoutHandler {
	return &CashoutHandler{
		cashoutService: cashoutService,
	}
}

// Create godoc
//
//	@Summary		Request a cash-out
//	@Description	Lock the requester's shares behind a new pending cash-out request. Fails when the unlocked holding cannot cover the request.
//	@Tags			Cashouts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCashoutRequestDTO	true	"Cash-out payload"
//	@Success		201		{object}	dto.CashoutResponseDTO		"Created request"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		402		{object}	utils.Response				"Insufficient unlocked shares"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/cashouts [post]
func (h *CashoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCashoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Shares <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "shares must be positive")
		return
	}

	created, err := h.cashoutService.Request(r.Context(), req.RequesterID, req.Shares, req.ChannelRef, req.MessageRef)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, h.toCashoutDTO(created))
}

// Get godoc
//
//	@Summary		Get a cash-out request
//	@Description	Retrieve a cash-out request by id with its estimated payout.
//	@Tags			Cashouts
//	@Produce		json
//	@Param			requestID	path		int						true	"Request ID"
//	@Success		200			{object}	dto.CashoutResponseDTO	"Request"
//	@Failure		400			{object}	utils.Response			"Invalid request id"
//	@Failure		404			{object}	utils.Response			"Request not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/cashouts/{requestID} [get]
func (h *CashoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.ParseInt(chi.URLParam(r, "requestID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	request, err := h.cashoutService.Get(r.Context(), requestID)
	if err != nil {
		respondCashoutError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toCashoutDTO(request))
}

// List godoc
//
//	@Summary		List cash-out requests
//	@Description	List cash-out requests filtered by status, newest first. Defaults to pending.
//	@Tags			Cashouts
//	@Produce		json
//	@Param			status	query		string							false	"Status filter, repeatable"
//	@Param			limit	query		int								false	"Row limit"
//	@Success		200		{object}	dto.CashoutListResponseDTO		"Requests and total count"
//	@Failure		400		{object}	utils.Response					"Invalid query"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/cashouts [get]
func (h *CashoutHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	var statuses []domain.CashoutStatus
	for _, raw := range r.URL.Query()["status"] {
		statuses = append(statuses, domain.CashoutStatus(raw))
	}

	requests, total, err := h.cashoutService.List(r.Context(), statuses, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.CashoutListResponseDTO{
		Requests: make([]dto.CashoutResponseDTO, len(requests)),
		Total:    total,
	}
	for i := range requests {
		response.Requests[i] = h.toCashoutDTO(&requests[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Approve godoc
//
//	@Summary		Approve a pending cash-out
//	@Description	Move a pending request to approved. No treasury value moves until the request is paid.
//	@Tags			Cashouts
//	@Accept			json
//	@Produce		json
//	@Param			requestID	path		int							true	"Request ID"
//	@Param			request		body		dto.HandleCashoutRequestDTO	true	"Handling payload"
//	@Success		200			{object}	dto.CashoutResponseDTO		"Approved request"
//	@Failure		400			{object}	utils.Response				"Invalid request"
//	@Failure		404			{object}	utils.Response				"Request not found"
//	@Failure		409			{object}	utils.Response				"Request not pending"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/cashouts/{requestID}/approve [post]
func (h *CashoutHandler) Approve(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.ParseInt(chi.URLParam(r, "requestID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.HandleCashoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.cashoutService.Approve(r.Context(), requestID, req.ActorID, req.Note)
	if err != nil {
		respondCashoutError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toCashoutDTO(request))
}

// Reject godoc
//
//	@Summary		Reject a cash-out
//	@Description	Reject a pending or approved request and release the share lock. The unlock is clamped to the currently locked amount.
//	@Tags			Cashouts
//	@Accept			json
//	@Produce		json
//	@Param			requestID	path		int							true	"Request ID"
//	@Param			request		body		dto.HandleCashoutRequestDTO	true	"Handling payload"
//	@Success		200			{object}	dto.CashoutResponseDTO		"Rejected request"
//	@Failure		400			{object}	utils.Response				"Invalid request"
//	@Failure		404			{object}	utils.Response				"Request not found"
//	@Failure		409			{object}	utils.Response				"Request already terminal"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/cashouts/{requestID}/reject [post]
func (h *CashoutHandler) Reject(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.ParseInt(chi.URLParam(r, "requestID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.HandleCashoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.cashoutService.Reject(r.Context(), requestID, req.ActorID, req.Note)
	if err != nil {
		respondCashoutError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toCashoutDTO(request))
}

// Pay godoc
//
//	@Summary		Mark an approved cash-out paid
//	@Description	Finalize an approved request: shares leave the holding, the lock is released, and with the strict policy on the payout is debited from the treasury. The payout defaults to the estimate when not given.
//	@Tags			Cashouts
//	@Accept			json
//	@Produce		json
//	@Param			requestID	path		int							true	"Request ID"
//	@Param			request		body		dto.PayCashoutRequestDTO	true	"Payment payload"
//	@Success		200			{object}	dto.PayCashoutResponseDTO	"Payment result"
//	@Failure		400			{object}	utils.Response				"Invalid request"
//	@Failure		402			{object}	utils.Response				"Insufficient shares or treasury"
//	@Failure		404			{object}	utils.Response				"Request not found"
//	@Failure		409			{object}	utils.Response				"Request not approved"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/cashouts/{requestID}/pay [post]
func (h *CashoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.ParseInt(chi.URLParam(r, "requestID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.PayCashoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payout := int64(0)
	if req.Payout != nil {
		if *req.Payout < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "payout must not be negative")
			return
		}
		payout = *req.Payout
	} else {
		current, err := h.cashoutService.Get(r.Context(), requestID)
		if err != nil {
			respondCashoutError(w, err)
			return
		}
		payout = h.cashoutService.EstimatedPayout(current.Shares)
	}

	result, err := h.cashoutService.MarkPaid(r.Context(), requestID, payout, req.ActorID, req.Note)
	if err != nil {
		respondCashoutError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayCashoutResponseDTO{
		Request:         h.toCashoutDTO(result.Request),
		Payout:          result.Payout,
		TreasuryDebited: result.TreasuryDebited,
	})
}

func respondCashoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrInvalidStateTransition):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrInsufficientFunds), errors.Is(err, apperrors.ErrInsufficientTreasury):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *CashoutHandler) toCashoutDTO(req *domain.CashoutRequest) dto.CashoutResponseDTO {
	return dto.CashoutResponseDTO{
		ID:              req.ID,
		RequesterID:     req.RequesterID,
		Shares:          req.Shares,
		EstimatedPayout: h.cashoutService.EstimatedPayout(req.Shares),
		Status:          string(req.Status),
		HandledBy:       req.HandledBy,
		HandledNote:     req.HandledNote,
		ChannelRef:      req.ChannelRef,
		MessageRef:      req.MessageRef,
		ThreadRef:       req.ThreadRef,
		CreatedAt:       req.CreatedAt,
		UpdatedAt:       req.UpdatedAt,
	}
}
