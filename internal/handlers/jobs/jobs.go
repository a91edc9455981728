package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/akarpovich/orgbank/internal/apperrors"
	"github.com/akarpovich/orgbank/internal/domain"
	"github.com/akarpovich/orgbank/internal/dto"
	jobservice "github.com/akarpovich/orgbank/internal/service/jobservice"
	"github.com/akarpovich/orgbank/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Create(ctx context.Context, params jobservice.CreateParams) (*domain.Job, error)
	Get(ctx context.Context, jobID int64) (*domain.Job, error)
	Claim(ctx context.Context, jobID int64, claimantID int64) (*domain.Job, error)
	Complete(ctx context.Context, jobID int64) (*domain.Job, error)
	ConfirmPayout(ctx context.Context, jobID int64, recipients []int64, actorID int64) (*jobservice.PayoutResult, error)
	Cancel(ctx context.Context, jobID int64, actorID int64) (*domain.Job, error)
	Reopen(ctx context.Context, jobID int64, actorID int64) (*domain.Job, error)
}

type JobHandler struct {
	jobService Service
}

func New(jobService Service) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// Create godoc
//
//	@Summary		Post a new job
//	@Description	Create an open job and reserve its reward against the available treasury. Creation fails when the uncommitted treasury cannot cover the reward.
//	@Tags			Jobs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateJobRequestDTO	true	"Job payload"
//	@Success		201		{object}	dto.JobResponseDTO		"Created job"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		402		{object}	utils.Response			"Insufficient treasury"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/jobs [post]
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateJobRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Reward <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "title and positive reward are required")
		return
	}

	job, err := h.jobService.Create(r.Context(), jobservice.CreateParams{
		Title:       req.Title,
		Description: req.Description,
		Reward:      req.Reward,
		CreatedBy:   req.CreatedBy,
		Category:    req.Category,
		ChannelRef:  req.ChannelRef,
		MessageRef:  req.MessageRef,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientTreasury):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toJobDTO(job))
}

// Get godoc
//
//	@Summary		Get a job
//	@Description	Retrieve a job by id, including its escrow state.
//	@Tags			Jobs
//	@Produce		json
//	@Param			jobID	path		int					true	"Job ID"
//	@Success		200		{object}	dto.JobResponseDTO	"Job"
//	@Failure		400		{object}	utils.Response		"Invalid job id"
//	@Failure		404		{object}	utils.Response		"Job not found"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/jobs/{jobID} [get]
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(chi.URLParam(r, "jobID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := h.jobService.Get(r.Context(), jobID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toJobDTO(job))
}

// Claim godoc
//
//	@Summary		Claim an open job
//	@Description	Accept an open job for the claimant. Exactly one of several concurrent claimants wins; the rest are told the claim was lost.
//	@Tags			Jobs
//	@Accept			json
//	@Produce		json
//	@Param			jobID	path		int						true	"Job ID"
//	@Param			request	body		dto.ClaimJobRequestDTO	true	"Claimant"
//	@Success		200		{object}	dto.JobResponseDTO		"Claimed job"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		404		{object}	utils.Response			"Job not found"
//	@Failure		409		{object}	utils.Response			"Claim lost or job not open"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/jobs/{jobID}/claim [post]
func (h *JobHandler) Claim(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(chi.URLParam(r, "jobID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var req dto.ClaimJobRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	job, err := h.jobService.Claim(r.Context(), jobID, req.ClaimantID)
	if err != nil {
		respondJobError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toJobDTO(job))
}

// Complete godoc
//
//	@Summary		Mark a claimed job completed
//	@Description	Move a claimed job to completed, making it eligible for payout.
//	@Tags			Jobs
//	@Produce		json
//	@Param			jobID	path		int					true	"Job ID"
//	@Success		200		{object}	dto.JobResponseDTO	"Completed job"
//	@Failure		400		{object}	utils.Response		"Invalid job id"
//	@Failure		404		{object}	utils.Response		"Job not found"
//	@Failure		409		{object}	utils.Response		"Job not claimed"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/jobs/{jobID}/complete [post]
func (h *JobHandler) Complete(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(chi.URLParam(r, "jobID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := h.jobService.Complete(r.Context(), jobID)
	if err != nil {
		respondJobError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toJobDTO(job))
}

// Payout godoc
//
//	@Summary		Pay out a completed job
//	@Description	Debit the treasury and credit the recipients' wallets. With no explicit recipients the claimant is paid; otherwise the reward is split exactly across the listed recipients.
//	@Tags			Jobs
//	@Accept			json
//	@Produce		json
//	@Param			jobID	path		int							true	"Job ID"
//	@Param			request	body		dto.PayoutJobRequestDTO		true	"Payout payload"
//	@Success		200		{object}	dto.PayoutJobResponseDTO	"Payout result"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		402		{object}	utils.Response				"Insufficient treasury"
//	@Failure		404		{object}	utils.Response				"Job not found"
//	@Failure		409		{object}	utils.Response				"Job not completed"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/jobs/{jobID}/payout [post]
func (h *JobHandler) Payout(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(chi.URLParam(r, "jobID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var req dto.PayoutJobRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.jobService.ConfirmPayout(r.Context(), jobID, req.Recipients, req.ActorID)
	if err != nil {
		respondJobError(w, err)
		return
	}

	payouts := make([]dto.RecipientPayoutDTO, len(result.Payouts))
	for i, p := range result.Payouts {
		payouts[i] = dto.RecipientPayoutDTO{
			MemberID: p.MemberID,
			Amount:   p.Amount,
			Rep:      p.Rep,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayoutJobResponseDTO{
		Job:     toJobDTO(result.Job),
		Payouts: payouts,
	})
}

// Cancel godoc
//
//	@Summary		Cancel a job
//	@Description	Cancel a non-terminal job and release its escrow reservation back to the available pool.
//	@Tags			Jobs
//	@Accept			json
//	@Produce		json
//	@Param			jobID	path		int						true	"Job ID"
//	@Param			request	body		dto.JobActorRequestDTO	true	"Acting member"
//	@Success		200		{object}	dto.JobResponseDTO		"Cancelled job"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		404		{object}	utils.Response			"Job not found"
//	@Failure		409		{object}	utils.Response			"Job already terminal"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/jobs/{jobID}/cancel [post]
func (h *JobHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(chi.URLParam(r, "jobID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var req dto.JobActorRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	job, err := h.jobService.Cancel(r.Context(), jobID, req.ActorID)
	if err != nil {
		respondJobError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toJobDTO(job))
}

// Reopen godoc
//
//	@Summary		Reopen a cancelled job
//	@Description	Put a cancelled job back on the board, reserving its reward again against the available treasury.
//	@Tags			Jobs
//	@Accept			json
//	@Produce		json
//	@Param			jobID	path		int						true	"Job ID"
//	@Param			request	body		dto.JobActorRequestDTO	true	"Acting member"
//	@Success		200		{object}	dto.JobResponseDTO		"Reopened job"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		402		{object}	utils.Response			"Insufficient treasury"
//	@Failure		404		{object}	utils.Response			"Job not found"
//	@Failure		409		{object}	utils.Response			"Job not cancelled"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/jobs/{jobID}/reopen [post]
func (h *JobHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(chi.URLParam(r, "jobID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var req dto.JobActorRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	job, err := h.jobService.Reopen(r.Context(), jobID, req.ActorID)
	if err != nil {
		respondJobError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toJobDTO(job))
}

func respondJobError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrClaimLost), errors.Is(err, apperrors.ErrInvalidStateTransition):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrInsufficientTreasury):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toJobDTO(job *domain.Job) dto.JobResponseDTO {
	return dto.JobResponseDTO{
		ID:           job.ID,
		Title:        job.Title,
		Description:  job.Description,
		Reward:       job.Reward,
		EscrowAmount: job.EscrowAmount,
		EscrowStatus: string(job.EscrowStatus),
		Status:       string(job.Status),
		CreatedBy:    job.CreatedBy,
		ClaimedBy:    job.ClaimedBy,
		Category:     job.Category,
		ChannelRef:   job.ChannelRef,
		MessageRef:   job.MessageRef,
		ThreadRef:    job.ThreadRef,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}
}
