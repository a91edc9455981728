package handlers

import (
	"net/http"

	_ "github.com/akarpovich/orgbank/docs"
	accounthandlers "github.com/akarpovich/orgbank/internal/handlers/accounts"
	cashouthandlers "github.com/akarpovich/orgbank/internal/handlers/cashouts"
	jobhandlers "github.com/akarpovich/orgbank/internal/handlers/jobs"
	reconcilehandlers "github.com/akarpovich/orgbank/internal/handlers/reconcile"
	treasuryhandlers "github.com/akarpovich/orgbank/internal/handlers/treasury"
	"github.com/akarpovich/orgbank/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AccountHandler interface {
	GetAccount(w http.ResponseWriter, r *http.Request)
	AddBalance(w http.ResponseWriter, r *http.Request)
	BuyShares(w http.ResponseWriter, r *http.Request)
	AddReputation(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
}

type TreasuryHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Set(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
	ListLedger(w http.ResponseWriter, r *http.Request)
}

type JobHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Payout(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Reopen(w http.ResponseWriter, r *http.Request)
}

type CashoutHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
}

type ReconcileHandler interface {
	ReconcileEscrow(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountHandler   AccountHandler
	TreasuryHandler  TreasuryHandler
	JobHandler       JobHandler
	CashoutHandler   CashoutHandler
	ReconcileHandler ReconcileHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AccountHandler:   accounthandlers.New(s.AccountService),
		TreasuryHandler:  treasuryhandlers.New(s.TreasuryService),
		JobHandler:       jobhandlers.New(s.JobService),
		CashoutHandler:   cashouthandlers.New(s.CashoutService),
		ReconcileHandler: reconcilehandlers.New(s.ReconcileService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/accounts/{memberID}", func(r chi.Router) {
			r.Get("/", h.AccountHandler.GetAccount)
			r.Post("/balance", h.AccountHandler.AddBalance)
			r.Post("/shares/buy", h.AccountHandler.BuyShares)
			r.Post("/reputation", h.AccountHandler.AddReputation)
		})
		r.Get("/transactions", h.AccountHandler.ListTransactions)

		r.Route("/treasury", func(r chi.Router) {
			r.Get("/", h.TreasuryHandler.Get)
			r.Put("/", h.TreasuryHandler.Set)
			r.Post("/adjust", h.TreasuryHandler.Adjust)
			r.Post("/reconcile", h.TreasuryHandler.Reconcile)
		})
		r.Get("/ledger", h.TreasuryHandler.ListLedger)

		r.Route("/jobs", func(r chi.Router) {
			r.Post("/", h.JobHandler.Create)
			r.Route("/{jobID}", func(r chi.Router) {
				r.Get("/", h.JobHandler.Get)
				r.Post("/claim", h.JobHandler.Claim)
				r.Post("/complete", h.JobHandler.Complete)
				r.Post("/payout", h.JobHandler.Payout)
				r.Post("/cancel", h.JobHandler.Cancel)
				r.Post("/reopen", h.JobHandler.Reopen)
			})
		})

		r.Route("/cashouts", func(r chi.Router) {
			r.Post("/", h.CashoutHandler.Create)
			r.Get("/", h.CashoutHandler.List)
			r.Route("/{requestID}", func(r chi.Router) {
				r.Get("/", h.CashoutHandler.Get)
				r.Post("/approve", h.CashoutHandler.Approve)
				r.Post("/reject", h.CashoutHandler.Reject)
				r.Post("/pay", h.CashoutHandler.Pay)
			})
		})

		r.Post("/reconcile/escrow", h.ReconcileHandler.ReconcileEscrow)
	})

	return r
}
