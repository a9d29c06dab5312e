package dto

import "time"

type PurchaseRequestDTO struct {
	UserID   int64 `json:"user_id" example:"100"`
	Quantity int   `json:"quantity" example:"5"`
}

type PurchaseResponseDTO struct {
	OrderNumber string    `json:"order_number" example:"LD202601021504051001A2F"`
	DrawRoundID int       `json:"draw_round_id" example:"42"`
	StartNumber int       `json:"start_number" example:"17"`
	EndNumber   int       `json:"end_number" example:"21"`
	TotalAmount string    `json:"total_amount" example:"50.00"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoundResponseDTO struct {
	ID           int        `json:"id" example:"42"`
	ProductID    int        `json:"product_id" example:"7"`
	RoundNumber  int        `json:"round_number" example:"3"`
	TotalSpots   int        `json:"total_spots" example:"110"`
	SoldSpots    int        `json:"sold_spots" example:"64"`
	PricePerSpot string     `json:"price_per_spot" example:"10.00"`
	PrizeValue   string     `json:"prize_value" example:"1000.00"`
	Status       string     `json:"status" example:"ONGOING"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	DrawnAt      *time.Time `json:"drawn_at,omitempty"`
}

type ParticipationResponseDTO struct {
	UserID      int64     `json:"user_id" example:"100"`
	Quantity    int       `json:"quantity" example:"5"`
	StartNumber int       `json:"start_number" example:"17"`
	EndNumber   int       `json:"end_number" example:"21"`
	OrderNumber string    `json:"order_number" example:"LD202601021504051001A2F"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoundDetailResponseDTO struct {
	Round          RoundResponseDTO           `json:"round"`
	Participations []ParticipationResponseDTO `json:"participations"`
	Result         *DrawResultResponseDTO     `json:"result,omitempty"`
}

type DrawResultResponseDTO struct {
	WinningNumber     int       `json:"winning_number" example:"58"`
	WinnerUserID      int64     `json:"winner_user_id" example:"100"`
	PrizeType         string    `json:"prize_type" example:"CASH"`
	PrizeValue        string    `json:"prize_value" example:"1000.00"`
	PrizeStatus       string    `json:"prize_status" example:"DISTRIBUTED"`
	TimestampSum      int64     `json:"timestamp_sum" example:"49360820064"`
	BlockDistance     int       `json:"block_distance" example:"70"`
	TargetBlockHeight int64     `json:"target_block_height" example:"68342120"`
	TargetBlockHash   string    `json:"target_block_hash"`
	HashLast6Digits   string    `json:"hash_last6_digits" example:"305817"`
	VerificationURL   string    `json:"verification_url"`
	BlockTime         time.Time `json:"block_time"`
}
