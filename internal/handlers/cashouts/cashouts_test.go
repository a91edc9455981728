package cashouts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/akarpovich/orgbank/internal/apperrors"
	"github.com/akarpovich/orgbank/internal/domain"
	"github.com/akarpovich/orgbank/internal/dto"
	cashoutservice "github.com/akarpovich/orgbank/internal/service/cashoutservice"
)

func NewMock(t *testing.T) (*CashoutHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withRequestID(r *http.Request, requestID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("requestID", requestID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful request locks the shares",
			body: `{"requester_id":1,"shares":5,"channel_ref":"chan-1","message_ref":"msg-1"}`,
			prepareMock: func() {
				service.EXPECT().
					Request(gomock.Any(), int64(1), int64(5), "chan-1", "msg-1").
					Return(&domain.CashoutRequest{ID: 3, RequesterID: 1, Shares: 5, Status: domain.CashoutPending}, nil)
				service.EXPECT().EstimatedPayout(int64(5)).Return(int64(500))
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"shares":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Non-positive shares",
			body:          `{"requester_id":1,"shares":0}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "shares must be positive",
		},
		{
			name: "Unlocked holding too small",
			body: `{"requester_id":1,"shares":5}`,
			prepareMock: func() {
				service.EXPECT().
					Request(gomock.Any(), int64(1), int64(5), "", "").
					Return(nil, apperrors.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Internal server error",
			body: `{"requester_id":1,"shares":5}`,
			prepareMock: func() {
				service.EXPECT().
					Request(gomock.Any(), int64(1), int64(5), "", "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/cashouts", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestApproveHandler(t *testing.T) {
	handler, service := NewMock(t)
	actorID := int64(2)

	t.Run("Pending request is approved", func(t *testing.T) {
		service.EXPECT().
			Approve(gomock.Any(), int64(3), int64(2), gomock.Nil()).
			Return(&domain.CashoutRequest{ID: 3, RequesterID: 1, Shares: 5, Status: domain.CashoutApproved, HandledBy: &actorID}, nil)
		service.EXPECT().EstimatedPayout(int64(5)).Return(int64(500))

		r := httptest.NewRequest(http.MethodPost, "/api/cashouts/3/approve", bytes.NewBufferString(`{"actor_id":2}`))
		r = withRequestID(r, "3")
		w := httptest.NewRecorder()

		handler.Approve(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body dto.CashoutResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, string(domain.CashoutApproved), body.Status)
		assert.Equal(t, int64(500), body.EstimatedPayout)
	})

	t.Run("Paid request cannot be approved", func(t *testing.T) {
		service.EXPECT().
			Approve(gomock.Any(), int64(3), int64(2), gomock.Nil()).
			Return(nil, apperrors.ErrInvalidStateTransition)

		r := httptest.NewRequest(http.MethodPost, "/api/cashouts/3/approve", bytes.NewBufferString(`{"actor_id":2}`))
		r = withRequestID(r, "3")
		w := httptest.NewRecorder()

		handler.Approve(w, r)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Missing request", func(t *testing.T) {
		service.EXPECT().
			Approve(gomock.Any(), int64(99), int64(2), gomock.Nil()).
			Return(nil, apperrors.ErrNotFound)

		r := httptest.NewRequest(http.MethodPost, "/api/cashouts/99/approve", bytes.NewBufferString(`{"actor_id":2}`))
		r = withRequestID(r, "99")
		w := httptest.NewRecorder()

		handler.Approve(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPayHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Explicit payout overrides the estimate", func(t *testing.T) {
		service.EXPECT().
			MarkPaid(gomock.Any(), int64(3), int64(450), int64(2), gomock.Nil()).
			Return(&cashoutservice.PaidResult{
				Request:         &domain.CashoutRequest{ID: 3, RequesterID: 1, Shares: 5, Status: domain.CashoutPaid},
				Payout:          450,
				TreasuryDebited: true,
			}, nil)
		service.EXPECT().EstimatedPayout(int64(5)).Return(int64(500))

		r := httptest.NewRequest(http.MethodPost, "/api/cashouts/3/pay", bytes.NewBufferString(`{"actor_id":2,"payout":450}`))
		r = withRequestID(r, "3")
		w := httptest.NewRecorder()

		handler.Pay(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body dto.PayCashoutResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, int64(450), body.Payout)
		assert.True(t, body.TreasuryDebited)
	})

	t.Run("Missing payout defaults to the estimate", func(t *testing.T) {
		service.EXPECT().
			Get(gomock.Any(), int64(3)).
			Return(&domain.CashoutRequest{ID: 3, RequesterID: 1, Shares: 5, Status: domain.CashoutApproved}, nil)
		service.EXPECT().EstimatedPayout(int64(5)).Return(int64(500)).Times(2)
		service.EXPECT().
			MarkPaid(gomock.Any(), int64(3), int64(500), int64(2), gomock.Nil()).
			Return(&cashoutservice.PaidResult{
				Request:         &domain.CashoutRequest{ID: 3, RequesterID: 1, Shares: 5, Status: domain.CashoutPaid},
				Payout:          500,
				TreasuryDebited: true,
			}, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/cashouts/3/pay", bytes.NewBufferString(`{"actor_id":2}`))
		r = withRequestID(r, "3")
		w := httptest.NewRecorder()

		handler.Pay(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body dto.PayCashoutResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, int64(500), body.Payout)
	})

	t.Run("Negative payout is rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/cashouts/3/pay", bytes.NewBufferString(`{"actor_id":2,"payout":-1}`))
		r = withRequestID(r, "3")
		w := httptest.NewRecorder()

		handler.Pay(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "payout must not be negative")
	})

	t.Run("Treasury cannot cover the payout", func(t *testing.T) {
		service.EXPECT().
			MarkPaid(gomock.Any(), int64(3), int64(450), int64(2), gomock.Nil()).
			Return(nil, apperrors.ErrInsufficientTreasury)

		r := httptest.NewRequest(http.MethodPost, "/api/cashouts/3/pay", bytes.NewBufferString(`{"actor_id":2,"payout":450}`))
		r = withRequestID(r, "3")
		w := httptest.NewRecorder()

		handler.Pay(w, r)
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("Only approved requests can be paid", func(t *testing.T) {
		service.EXPECT().
			MarkPaid(gomock.Any(), int64(3), int64(450), int64(2), gomock.Nil()).
			Return(nil, apperrors.ErrInvalidStateTransition)

		r := httptest.NewRequest(http.MethodPost, "/api/cashouts/3/pay", bytes.NewBufferString(`{"actor_id":2,"payout":450}`))
		r = withRequestID(r, "3")
		w := httptest.NewRecorder()

		handler.Pay(w, r)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Status filter and limit pass through", func(t *testing.T) {
		service.EXPECT().
			List(gomock.Any(), []domain.CashoutStatus{domain.CashoutPending}, 10).
			Return([]domain.CashoutRequest{{ID: 3, RequesterID: 1, Shares: 5, Status: domain.CashoutPending}}, int64(1), nil)
		service.EXPECT().EstimatedPayout(int64(5)).Return(int64(500))

		r := httptest.NewRequest(http.MethodGet, "/api/cashouts?status=pending&limit=10", nil)
		w := httptest.NewRecorder()

		handler.List(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body dto.CashoutListResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, int64(1), body.Total)
		assert.Len(t, body.Requests, 1)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/cashouts?limit=abc", nil)
		w := httptest.NewRecorder()

		handler.List(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
