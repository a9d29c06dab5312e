package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/avolkhin/luckydraw/internal/domain"
	"github.com/avolkhin/luckydraw/internal/dto"
	"github.com/avolkhin/luckydraw/internal/pg"
	"github.com/avolkhin/luckydraw/internal/service/ledgerservice"
	"github.com/avolkhin/luckydraw/pkg/utils"
)

type Service interface {
	GetAccount(ctx context.Context, userID int64, currency string) (*domain.Account, error)
	GetHistory(ctx context.Context, userID int64, currency string) ([]domain.LedgerEntry, error)
	Deposit(ctx context.Context, req ledgerservice.Request) (*domain.LedgerEntry, error)
	WithdrawFunds(ctx context.Context, req ledgerservice.Request) (*domain.LedgerEntry, error)
}

type BalanceHandler struct {
	ledgerService Service
	currency      string
}

func New(ledgerService Service, currency string) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
		currency:      currency,
	}
}

// GetBalance godoc
//
//	@Summary		Get user balance
//	@Description	Retrieve the real, bonus and locked buckets plus derived totals for a user.
//	@Tags			Balance
//	@Produce		json
//	@Param			user_id	query		int	true	"User ID"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	account, err := h.ledgerService.GetAccount(r.Context(), userID, h.currency)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Real:         account.RealBalance.StringFixed(2),
		Bonus:        account.BonusBalance.StringFixed(2),
		Locked:       account.LockedBalance.StringFixed(2),
		Total:        account.Total().StringFixed(2),
		Available:    account.Available().StringFixed(2),
		Withdrawable: account.Withdrawable().StringFixed(2),
	})
}

// Deposit godoc
//
//	@Summary		Deposit funds
//	@Description	Add funds to the real bucket. A reference id makes the call idempotent.
//	@Tags			Balance
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit payload"
//	@Success		200		{object}	dto.LedgerEntryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload or amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balance/deposit [post]
func (h *BalanceHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	entry, err := h.ledgerService.Deposit(r.Context(), ledgerservice.Request{
		UserID:      req.UserID,
		Currency:    h.currency,
		Amount:      amount,
		ReferenceID: req.ReferenceID,
	})
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toEntryDTO(entry))
}

// Withdraw godoc
//
//	@Summary		Withdraw funds
//	@Description	Lock the requested amount and release it out of the system in one transaction.
//	@Tags			Balance
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal payload"
//	@Success		200		{object}	dto.LedgerEntryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload or amount"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		409		{object}	utils.Response	"Concurrent update, retry"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balance/withdraw [post]
func (h *BalanceHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	entry, err := h.ledgerService.WithdrawFunds(r.Context(), ledgerservice.Request{
		UserID:      req.UserID,
		Currency:    h.currency,
		Amount:      amount,
		ReferenceID: req.ReferenceID,
	})
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toEntryDTO(entry))
}

// GetHistory godoc
//
//	@Summary		Get ledger history
//	@Description	List the user's ledger entries, newest first.
//	@Tags			Balance
//	@Produce		json
//	@Param			user_id	query		int	true	"User ID"
//	@Success		200		{array}		dto.LedgerEntryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balance/history [get]
func (h *BalanceHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	entries, err := h.ledgerService.GetHistory(r.Context(), userID, h.currency)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.LedgerEntryResponseDTO, 0, len(entries))
	for i := range entries {
		response = append(response, toEntryDTO(&entries[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toEntryDTO(entry *domain.LedgerEntry) dto.LedgerEntryResponseDTO {
	return dto.LedgerEntryResponseDTO{
		TransactionID: entry.TransactionID,
		Type:          string(entry.Type),
		Bucket:        string(entry.Bucket),
		Amount:        entry.Amount.StringFixed(2),
		BalanceBefore: entry.BalanceBefore.StringFixed(2),
		BalanceAfter:  entry.BalanceAfter.StringFixed(2),
		ReferenceID:   entry.ReferenceID,
		CreatedAt:     entry.CreatedAt,
	}
}

func respondLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgerservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, "amount must be positive")
	case errors.Is(err, ledgerservice.ErrInsufficientBalance), errors.Is(err, ledgerservice.ErrInsufficientLocked):
		utils.RespondWithError(w, http.StatusPaymentRequired, "insufficient balance")
	case errors.Is(err, pg.ErrConcurrentUpdate):
		utils.RespondWithError(w, http.StatusConflict, "concurrent update, retry")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
