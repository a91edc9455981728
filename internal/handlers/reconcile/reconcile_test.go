package reconcile

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/akarpovich/orgbank/internal/dto"
	reconcileservice "github.com/akarpovich/orgbank/internal/service/reconcileservice"
)

func NewMock(t *testing.T) (*ReconcileHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestReconcileEscrowHandler(t *testing.T) {
	handler, service := NewMock(t)
	memberID := int64(1)
	actorID := int64(9)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.ReconcileReportDTO
	}{
		{
			name: "Rebuilds the lock for one member",
			body: `{"member_id":1,"actor_id":9}`,
			prepareMock: func() {
				service.EXPECT().
					ReconcileEscrow(gomock.Any(), &memberID, false, false, &actorID).
					Return(&reconcileservice.Report{
						Accounts: []reconcileservice.AccountResult{
							{MemberID: 1, TotalShares: 10, ExpectedLocked: 4, LockedBefore: 7, LockedAfter: 4, Changed: true},
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.ReconcileReportDTO{
				Accounts: []dto.ReconcileAccountDTO{
					{MemberID: 1, TotalShares: 10, ExpectedLocked: 4, LockedBefore: 7, LockedAfter: 4, Changed: true},
				},
			},
		},
		{
			name: "Dry run with force clear reports rejected requests",
			body: `{"member_id":1,"actor_id":9,"dry_run":true,"force_clear_active":true}`,
			prepareMock: func() {
				service.EXPECT().
					ReconcileEscrow(gomock.Any(), &memberID, true, true, &actorID).
					Return(&reconcileservice.Report{
						DryRun:           true,
						ForceClearActive: true,
						RequestsRejected: []int64{3, 4},
						Accounts: []reconcileservice.AccountResult{
							{MemberID: 1, TotalShares: 10, ExpectedLocked: 0, LockedBefore: 7, LockedAfter: 0, Changed: true},
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.ReconcileReportDTO{
				DryRun:           true,
				ForceClearActive: true,
				RequestsRejected: []int64{3, 4},
				Accounts: []dto.ReconcileAccountDTO{
					{MemberID: 1, TotalShares: 10, ExpectedLocked: 0, LockedBefore: 7, LockedAfter: 0, Changed: true},
				},
			},
		},
		{
			name:         "Invalid request body",
			body:         `{"member_id":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"member_id":1,"actor_id":9}`,
			prepareMock: func() {
				service.EXPECT().
					ReconcileEscrow(gomock.Any(), &memberID, false, false, &actorID).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/reconcile/escrow", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.ReconcileEscrow(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.ReconcileReportDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody.DryRun, body.DryRun)
				assert.Equal(t, tt.expectedBody.RequestsRejected, body.RequestsRejected)
				assert.Equal(t, tt.expectedBody.Accounts, body.Accounts)
			}
		})
	}
}
