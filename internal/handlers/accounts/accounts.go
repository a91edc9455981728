package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/akarpovich/orgbank/internal/apperrors"
	"github.com/akarpovich/orgbank/internal/domain"
	"github.com/akarpovich/orgbank/internal/dto"
	accountservice "github.com/akarpovich/orgbank/internal/service/accountservice"
	"github.com/akarpovich/orgbank/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	GetAccount(ctx context.Context, memberID int64) (*accountservice.Snapshot, error)
	AddBalance(ctx context.Context, memberID int64, delta int64, txType string, actorID *int64, reference string) (*accountservice.Snapshot, error)
	BuyShares(ctx context.Context, memberID int64, sharesDelta int64, actorID *int64, reference string) (*accountservice.Snapshot, int64, error)
	AddReputation(ctx context.Context, memberID int64, delta int64, actorID *int64, reference string) (*accountservice.Snapshot, error)
	ListTransactions(ctx context.Context, memberID *int64, types []string, limit int) ([]domain.Transaction, error)
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// GetAccount godoc
//
//	@Summary		Get member account
//	@Description	Retrieve balance, share holding, locked shares, reputation and derived level for a member. The account is created on first read.
//	@Tags			Accounts
//	@Produce		json
//	@Param			memberID	path		int						true	"Member ID"
//	@Success		200			{object}	dto.AccountResponseDTO	"Account snapshot"
//	@Failure		400			{object}	utils.Response			"Invalid member id"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{memberID} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.ParseInt(chi.URLParam(r, "memberID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	snapshot, err := h.accountService.GetAccount(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(snapshot))
}

// AddBalance godoc
//
//	@Summary		Credit or debit a member wallet
//	@Description	Apply a signed balance delta to the member wallet and record the matching history and ledger rows.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			memberID	path		int							true	"Member ID"
//	@Param			request		body		dto.AddBalanceRequestDTO	true	"Balance change payload"
//	@Success		200			{object}	dto.AccountResponseDTO		"Updated account snapshot"
//	@Failure		400			{object}	utils.Response				"Invalid request"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/accounts/{memberID}/balance [post]
func (h *AccountHandler) AddBalance(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.ParseInt(chi.URLParam(r, "memberID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	var req dto.AddBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Type == "" {
		req.Type = "adjust"
	}

	snapshot, err := h.accountService.AddBalance(r.Context(), memberID, req.Delta, req.Type, req.ActorID, req.Reference)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(snapshot))
}

// BuyShares godoc
//
//	@Summary		Buy shares with wallet credits
//	@Description	Convert wallet credits into shares at the configured price. Fails when the wallet cannot cover the cost.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			memberID	path		int							true	"Member ID"
//	@Param			request		body		dto.BuySharesRequestDTO		true	"Share purchase payload"
//	@Success		200			{object}	dto.BuySharesResponseDTO	"Purchase result"
//	@Failure		400			{object}	utils.Response				"Invalid request"
//	@Failure		402			{object}	utils.Response				"Insufficient balance"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/accounts/{memberID}/shares/buy [post]
func (h *AccountHandler) BuyShares(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.ParseInt(chi.URLParam(r, "memberID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	var req dto.BuySharesRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Shares <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "shares must be positive")
		return
	}

	snapshot, cost, err := h.accountService.BuyShares(r.Context(), memberID, req.Shares, req.ActorID, req.Reference)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BuySharesResponseDTO{
		Account: toAccountDTO(snapshot),
		Cost:    cost,
	})
}

// AddReputation godoc
//
//	@Summary		Grant or revoke reputation
//	@Description	Apply a signed reputation delta to the member and record the history row.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			memberID	path		int							true	"Member ID"
//	@Param			request		body		dto.AddReputationRequestDTO	true	"Reputation change payload"
//	@Success		200			{object}	dto.AccountResponseDTO		"Updated account snapshot"
//	@Failure		400			{object}	utils.Response				"Invalid request"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/accounts/{memberID}/reputation [post]
func (h *AccountHandler) AddReputation(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.ParseInt(chi.URLParam(r, "memberID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	var req dto.AddReputationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snapshot, err := h.accountService.AddReputation(r.Context(), memberID, req.Delta, req.ActorID, req.Reference)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(snapshot))
}

// ListTransactions godoc
//
//	@Summary		List transaction history
//	@Description	List append-only transaction rows, optionally filtered by member and type, newest first.
//	@Tags			Accounts
//	@Produce		json
//	@Param			member_id	query		int								false	"Filter by member"
//	@Param			type		query		string							false	"Filter by transaction type, repeatable"
//	@Param			limit		query		int								false	"Row limit"
//	@Success		200			{array}		dto.TransactionResponseDTO		"Transactions"
//	@Failure		400			{object}	utils.Response					"Invalid query"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/transactions [get]
func (h *AccountHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var memberID *int64
	if raw := r.URL.Query().Get("member_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
			return
		}
		memberID = &id
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	types := r.URL.Query()["type"]

	txs, err := h.accountService.ListTransactions(r.Context(), memberID, types, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txs))
	for i, tx := range txs {
		response[i] = dto.TransactionResponseDTO{
			ID:          tx.ID,
			MemberID:    tx.MemberID,
			Type:        tx.Type,
			Amount:      tx.Amount,
			SharesDelta: tx.SharesDelta,
			RepDelta:    tx.RepDelta,
			ActorID:     tx.ActorID,
			Reference:   tx.Reference,
			CreatedAt:   tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toAccountDTO(snapshot *accountservice.Snapshot) dto.AccountResponseDTO {
	return dto.AccountResponseDTO{
		MemberID:        snapshot.Account.MemberID,
		Balance:         snapshot.Account.Balance,
		Shares:          snapshot.Account.Shares,
		LockedShares:    snapshot.Account.LockedShares,
		SharesAvailable: snapshot.SharesAvailable,
		Reputation:      snapshot.Account.Reputation,
		Level:           snapshot.Level,
		CreatedAt:       snapshot.Account.CreatedAt,
		UpdatedAt:       snapshot.Account.UpdatedAt,
	}
}
