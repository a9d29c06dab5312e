package balance

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/avolkhin/luckydraw/internal/domain"
	"github.com/avolkhin/luckydraw/internal/dto"
	"github.com/avolkhin/luckydraw/internal/pg"
	"github.com/avolkhin/luckydraw/internal/service/ledgerservice"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, "USDT")
	defer ctrl.Finish()
	return handler, service
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name          string
		query         string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.BalanceResponseDTO
	}{
		{
			name:  "Successful retrieval",
			query: "?user_id=100",
			prepareMock: func() {
				service.EXPECT().
					GetAccount(gomock.Any(), int64(100), "USDT").
					Return(&domain.Account{
						RealBalance:   decimal.NewFromFloat(500.50),
						BonusBalance:  decimal.NewFromInt(20),
						LockedBalance: decimal.Zero,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{
				Real:         "500.50",
				Bonus:        "20.00",
				Locked:       "0.00",
				Total:        "520.50",
				Available:    "520.50",
				Withdrawable: "500.50",
			},
		},
		{
			name:          "Missing user id",
			query:         "",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid user id",
		},
		{
			name:  "Internal server error",
			query: "?user_id=100",
			prepareMock: func() {
				service.EXPECT().
					GetAccount(gomock.Any(), int64(100), "USDT").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/balance"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful deposit",
			body: `{"user_id":100,"amount":"50.00","reference_id":"dep-1"}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), ledgerservice.Request{
						UserID:      100,
						Currency:    "USDT",
						Amount:      decimal.RequireFromString("50.00"),
						ReferenceID: "dep-1",
					}).
					Return(&domain.LedgerEntry{
						Type:         domain.EntryDeposit,
						Bucket:       domain.BucketReal,
						Amount:       decimal.RequireFromString("50.00"),
						BalanceAfter: decimal.RequireFromString("50.00"),
						ReferenceID:  "dep-1",
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"user_id":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Invalid amount",
			body:          `{"user_id":100,"amount":"abc"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid amount",
		},
		{
			name: "Non-positive amount rejected by the service",
			body: `{"user_id":100,"amount":"0"}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), gomock.Any()).
					Return(nil, ledgerservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "amount must be positive",
		},
		{
			name: "Internal server error",
			body: `{"user_id":100,"amount":"50.00"}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/balance/deposit", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Deposit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)
	amount := decimal.RequireFromString("25.50")

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful withdrawal",
			body: `{"user_id":100,"amount":"25.50","reference_id":"wd-1"}`,
			prepareMock: func() {
				service.EXPECT().
					WithdrawFunds(gomock.Any(), ledgerservice.Request{
						UserID:      100,
						Currency:    "USDT",
						Amount:      amount,
						ReferenceID: "wd-1",
					}).
					Return(&domain.LedgerEntry{
						Type:   domain.EntryWithdraw,
						Bucket: domain.BucketLocked,
						Amount: amount,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"user_id":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Insufficient balance",
			body: `{"user_id":100,"amount":"25.50"}`,
			prepareMock: func() {
				service.EXPECT().
					WithdrawFunds(gomock.Any(), gomock.Any()).
					Return(nil, ledgerservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient balance",
		},
		{
			name: "Concurrent update",
			body: `{"user_id":100,"amount":"25.50"}`,
			prepareMock: func() {
				service.EXPECT().
					WithdrawFunds(gomock.Any(), gomock.Any()).
					Return(nil, pg.ErrConcurrentUpdate)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "concurrent update",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/balance/withdraw", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Withdraw(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:  "Successful retrieval",
			query: "?user_id=100",
			prepareMock: func() {
				service.EXPECT().
					GetHistory(gomock.Any(), int64(100), "USDT").
					Return([]domain.LedgerEntry{
						{Type: domain.EntryBet, Amount: decimal.NewFromInt(50)},
						{Type: domain.EntryDeposit, Amount: decimal.NewFromInt(100)},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:         "Invalid user id",
			query:        "?user_id=abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Internal server error",
			query: "?user_id=100",
			prepareMock: func() {
				service.EXPECT().
					GetHistory(gomock.Any(), int64(100), "USDT").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/balance/history"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.GetHistory(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.LedgerEntryResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}
