package dto

import "time"

type BalanceResponseDTO struct {
	Real         string `json:"real" example:"500.50"`
	Bonus        string `json:"bonus" example:"20.00"`
	Locked       string `json:"locked" example:"0.00"`
	Total        string `json:"total" example:"520.50"`
	Available    string `json:"available" example:"520.50"`
	Withdrawable string `json:"withdrawable" example:"500.50"`
}

type DepositRequestDTO struct {
	UserID      int64  `json:"user_id" example:"100"`
	Amount      string `json:"amount" example:"100.00"`
	ReferenceID string `json:"reference_id,omitempty" example:"dep-20260102-0001"`
}

type WithdrawRequestDTO struct {
	UserID      int64  `json:"user_id" example:"100"`
	Amount      string `json:"amount" example:"100.00"`
	ReferenceID string `json:"reference_id,omitempty" example:"wd-20260102-0001"`
}

type LedgerEntryResponseDTO struct {
	TransactionID string    `json:"transaction_id"`
	Type          string    `json:"type" example:"DEPOSIT"`
	Bucket        string    `json:"bucket" example:"real"`
	Amount        string    `json:"amount" example:"100.00"`
	BalanceBefore string    `json:"balance_before" example:"400.50"`
	BalanceAfter  string    `json:"balance_after" example:"500.50"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
