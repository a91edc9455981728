package accounts

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
	accountservice "github.com/akarpovich/orgbank/internal/service/accountservice"
)

func NewMock(t *testing.T) (*AccountHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withMemberID(r *http.Request, memberID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("memberID", memberID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetAccountHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		memberID     string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.AccountResponseDTO
	}{
		{
			name:     "Successful retrieval",
			memberID: "1",
			prepareMock: func() {
				service.EXPECT().
					GetAccount(gomock.Any(), int64(1)).
					Return(&accountservice.Snapshot{
						Account:         &domain.Account{MemberID: 1, Balance: 500, Shares: 10, LockedShares: 4, Reputation: 250},
						SharesAvailable: 6,
						Level:           2,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.AccountResponseDTO{
				MemberID:        1,
				Balance:         500,
				Shares:          10,
				LockedShares:    4,
				SharesAvailable: 6,
				Reputation:      250,
				Level:           2,
			},
		},
		{
			name:         "Invalid member id",
			memberID:     "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Internal server error",
			memberID: "1",
			prepareMock: func() {
				service.EXPECT().
					GetAccount(gomock.Any(), int64(1)).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/accounts/"+tt.memberID, nil)
			r = withMemberID(r, tt.memberID)
			w := httptest.NewRecorder()

			handler.GetAccount(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.AccountResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody.Balance, body.Balance)
				assert.Equal(t, tt.expectedBody.SharesAvailable, body.SharesAvailable)
				assert.Equal(t, tt.expectedBody.Level, body.Level)
			}
		})
	}
}

func TestAddBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Signed delta is applied", func(t *testing.T) {
		service.EXPECT().
			AddBalance(gomock.Any(), int64(1), int64(-50), "adjust", gomock.Nil(), "manual correction").
			Return(&accountservice.Snapshot{Account: &domain.Account{MemberID: 1, Balance: 450}}, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/accounts/1/balance", bytes.NewBufferString(`{"delta":-50,"reference":"manual correction"}`))
		r = withMemberID(r, "1")
		w := httptest.NewRecorder()

		handler.AddBalance(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid request body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/accounts/1/balance", bytes.NewBufferString(`{"delta":`))
		r = withMemberID(r, "1")
		w := httptest.NewRecorder()

		handler.AddBalance(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBuySharesHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful purchase",
			body: `{"shares":3}`,
			prepareMock: func() {
				service.EXPECT().
					BuyShares(gomock.Any(), int64(1), int64(3), gomock.Nil(), "").
					Return(&accountservice.Snapshot{Account: &domain.Account{MemberID: 1, Balance: 200, Shares: 3}}, int64(300), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Non-positive shares",
			body:         `{"shares":0}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Wallet cannot cover the cost",
			body: `{"shares":3}`,
			prepareMock: func() {
				service.EXPECT().
					BuyShares(gomock.Any(), int64(1), int64(3), gomock.Nil(), "").
					Return(nil, int64(0), apperrors.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/accounts/1/shares/buy", bytes.NewBufferString(tt.body))
			r = withMemberID(r, "1")
			w := httptest.NewRecorder()

			handler.BuyShares(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Member and type filters pass through", func(t *testing.T) {
		memberID := int64(1)
		service.EXPECT().
			ListTransactions(gomock.Any(), &memberID, []string{"payout"}, 10).
			Return([]domain.Transaction{{ID: 7, MemberID: 1, Type: "payout", Amount: 600}}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/transactions?member_id=1&type=payout&limit=10", nil)
		w := httptest.NewRecorder()

		handler.ListTransactions(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body []dto.TransactionResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 1)
		assert.Equal(t, "payout", body[0].Type)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/transactions?limit=-1", nil)
		w := httptest.NewRecorder()

		handler.ListTransactions(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
