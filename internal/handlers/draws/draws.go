package draws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avolkhin/luckydraw/internal/domain"
	"github.com/avolkhin/luckydraw/internal/dto"
	"github.com/avolkhin/luckydraw/internal/pg"
	"github.com/avolkhin/luckydraw/internal/service/ledgerservice"
	"github.com/avolkhin/luckydraw/internal/service/prizeservice"
	"github.com/avolkhin/luckydraw/internal/service/roundservice"
	"github.com/avolkhin/luckydraw/pkg/utils"
)

type RoundService interface {
	GetOrCreateCurrentRound(ctx context.Context, productID int) (*domain.DrawRound, error)
	PurchaseSpots(ctx context.Context, userID int64, productID, quantity int) (*domain.Participation, error)
	GetRoundDetail(ctx context.Context, roundID int) (*domain.DrawRound, []domain.Participation, error)
	CancelRound(ctx context.Context, roundID int) error
}

type DrawService interface {
	ProcessDraw(ctx context.Context, roundID int) (*domain.DrawResult, error)
}

type PrizeService interface {
	ConvertPhysicalPrizeToCashPrize(ctx context.Context, resultID int) error
}

type ResultReader interface {
	FindByRoundID(ctx context.Context, roundID int) (*domain.DrawResult, error)
}

type DrawsHandler struct {
	roundService RoundService
	drawService  DrawService
	prizeService PrizeService
	resultReader ResultReader
}

func New(roundService RoundService, drawService DrawService, prizeService PrizeService, resultReader ResultReader) *DrawsHandler {
	return &DrawsHandler{
		roundService: roundService,
		drawService:  drawService,
		prizeService: prizeService,
		resultReader: resultReader,
	}
}

// Purchase godoc
//
//	@Summary		Buy spots in the current round
//	@Description	Allocate the next contiguous numbers in the product's ongoing round and debit the buyer atomically.
//	@Tags			Draws
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int						true	"Product ID"
//	@Param			request		body		dto.PurchaseRequestDTO	true	"Purchase payload"
//	@Success		200			{object}	dto.PurchaseResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid payload"
//	@Failure		402			{object}	utils.Response	"Insufficient balance"
//	@Failure		409			{object}	utils.Response	"Round unavailable or not enough spots"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/draws/{productID}/purchase [post]
func (h *DrawsHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	participation, err := h.roundService.PurchaseSpots(r.Context(), req.UserID, productID, req.Quantity)
	if err != nil {
		respondPurchaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		OrderNumber: participation.OrderNumber,
		DrawRoundID: participation.DrawRoundID,
		StartNumber: participation.StartNumber,
		EndNumber:   participation.EndNumber,
		TotalAmount: participation.TotalAmount.StringFixed(2),
		CreatedAt:   participation.CreatedAt,
	})
}

// GetCurrentRound godoc
//
//	@Summary		Get the ongoing round
//	@Description	Return the product's ONGOING round, creating one if none exists.
//	@Tags			Draws
//	@Produce		json
//	@Param			productID	path		int	true	"Product ID"
//	@Success		200			{object}	dto.RoundResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid product id"
//	@Failure		404			{object}	utils.Response	"Product not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/draws/{productID}/current [get]
func (h *DrawsHandler) GetCurrentRound(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	round, err := h.roundService.GetOrCreateCurrentRound(r.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, roundservice.ErrProductNotFound), errors.Is(err, roundservice.ErrNotLuckyDraw):
			utils.RespondWithError(w, http.StatusNotFound, "product not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRoundDTO(round))
}

// GetRoundDetail godoc
//
//	@Summary		Get round detail
//	@Description	Return a round with its participations and, once drawn, its result and derivation trail.
//	@Tags			Draws
//	@Produce		json
//	@Param			roundID	path		int	true	"Round ID"
//	@Success		200		{object}	dto.RoundDetailResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid round id"
//	@Failure		404		{object}	utils.Response	"Round not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/rounds/{roundID} [get]
func (h *DrawsHandler) GetRoundDetail(w http.ResponseWriter, r *http.Request) {
	roundID, err := strconv.Atoi(chi.URLParam(r, "roundID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid round id")
		return
	}

	round, participations, err := h.roundService.GetRoundDetail(r.Context(), roundID)
	if err != nil {
		if errors.Is(err, roundservice.ErrRoundUnavailable) {
			utils.RespondWithError(w, http.StatusNotFound, "round not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	detail := dto.RoundDetailResponseDTO{Round: toRoundDTO(round)}
	for i := range participations {
		p := participations[i]
		detail.Participations = append(detail.Participations, dto.ParticipationResponseDTO{
			UserID:      p.UserID,
			Quantity:    p.Quantity,
			StartNumber: p.StartNumber,
			EndNumber:   p.EndNumber,
			OrderNumber: p.OrderNumber,
			CreatedAt:   p.CreatedAt,
		})
	}
	if round.Status == domain.RoundDrawn {
		if result, err := h.resultReader.FindByRoundID(r.Context(), roundID); err == nil && result != nil {
			detail.Result = &dto.DrawResultResponseDTO{
				WinningNumber:     result.WinningNumber,
				WinnerUserID:      result.WinnerUserID,
				PrizeType:         string(result.PrizeType),
				PrizeValue:        result.PrizeValue.StringFixed(2),
				PrizeStatus:       string(result.PrizeStatus),
				TimestampSum:      result.TimestampSum,
				BlockDistance:     result.BlockDistance,
				TargetBlockHeight: result.TargetBlockHeight,
				TargetBlockHash:   result.TargetBlockHash,
				HashLast6Digits:   result.HashLast6Digits,
				VerificationURL:   result.VerificationURL,
				BlockTime:         result.BlockTime,
			}
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

// ForceProcessDraw godoc
//
//	@Summary		Force draw processing
//	@Description	Admin action driving a completed round through winner selection. Idempotent.
//	@Tags			Admin
//	@Produce		json
//	@Param			roundID	path		int	true	"Round ID"
//	@Success		200		{object}	dto.DrawResultResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid round id"
//	@Failure		409		{object}	utils.Response	"Round is not completed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/rounds/{roundID}/draw [post]
func (h *DrawsHandler) ForceProcessDraw(w http.ResponseWriter, r *http.Request) {
	roundID, err := strconv.Atoi(chi.URLParam(r, "roundID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid round id")
		return
	}

	result, err := h.drawService.ProcessDraw(r.Context(), roundID)
	if err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DrawResultResponseDTO{
		WinningNumber:     result.WinningNumber,
		WinnerUserID:      result.WinnerUserID,
		PrizeType:         string(result.PrizeType),
		PrizeValue:        result.PrizeValue.StringFixed(2),
		PrizeStatus:       string(result.PrizeStatus),
		TimestampSum:      result.TimestampSum,
		BlockDistance:     result.BlockDistance,
		TargetBlockHeight: result.TargetBlockHeight,
		TargetBlockHash:   result.TargetBlockHash,
		HashLast6Digits:   result.HashLast6Digits,
		VerificationURL:   result.VerificationURL,
		BlockTime:         result.BlockTime,
	})
}

// ConvertPrize godoc
//
//	@Summary		Convert a physical prize to cash
//	@Description	Admin action crediting the prize value to the winner instead of shipping the physical item.
//	@Tags			Admin
//	@Produce		json
//	@Param			resultID	path		int	true	"Draw result ID"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Invalid result id"
//	@Failure		404			{object}	utils.Response	"Result not found"
//	@Failure		409			{object}	utils.Response	"Prize is not a pending physical prize"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/results/{resultID}/convert [post]
func (h *DrawsHandler) ConvertPrize(w http.ResponseWriter, r *http.Request) {
	resultID, err := strconv.Atoi(chi.URLParam(r, "resultID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid result id")
		return
	}

	if err := h.prizeService.ConvertPhysicalPrizeToCashPrize(r.Context(), resultID); err != nil {
		switch {
		case errors.Is(err, prizeservice.ErrResultNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "result not found")
		case errors.Is(err, prizeservice.ErrNotPhysicalPrize), errors.Is(err, prizeservice.ErrAlreadyHandled):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "prize converted"})
}

// CancelRound godoc
//
//	@Summary		Cancel a round
//	@Description	Admin action cancelling an ongoing round and refunding every participation.
//	@Tags			Admin
//	@Produce		json
//	@Param			roundID	path		int	true	"Round ID"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid round id"
//	@Failure		409		{object}	utils.Response	"Round cannot be cancelled"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/rounds/{roundID}/cancel [post]
func (h *DrawsHandler) CancelRound(w http.ResponseWriter, r *http.Request) {
	roundID, err := strconv.Atoi(chi.URLParam(r, "roundID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid round id")
		return
	}

	if err := h.roundService.CancelRound(r.Context(), roundID); err != nil {
		if errors.Is(err, roundservice.ErrRoundUnavailable) {
			utils.RespondWithError(w, http.StatusConflict, "round cannot be cancelled")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "round cancelled"})
}

func toRoundDTO(round *domain.DrawRound) dto.RoundResponseDTO {
	return dto.RoundResponseDTO{
		ID:           round.ID,
		ProductID:    round.ProductID,
		RoundNumber:  round.RoundNumber,
		TotalSpots:   round.TotalSpots,
		SoldSpots:    round.SoldSpots,
		PricePerSpot: round.PricePerSpot.StringFixed(2),
		PrizeValue:   round.PrizeValue.StringFixed(2),
		Status:       string(round.Status),
		CompletedAt:  round.CompletedAt,
		DrawnAt:      round.DrawnAt,
	}
}

func respondPurchaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, roundservice.ErrInvalidQuantity):
		utils.RespondWithError(w, http.StatusBadRequest, "quantity must be at least 1")
	case errors.Is(err, roundservice.ErrProductNotFound), errors.Is(err, roundservice.ErrNotLuckyDraw):
		utils.RespondWithError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, ledgerservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, "insufficient balance")
	case errors.Is(err, roundservice.ErrRoundUnavailable), errors.Is(err, roundservice.ErrNotEnoughSpots):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, pg.ErrConcurrentUpdate):
		utils.RespondWithError(w, http.StatusConflict, "concurrent update, retry")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
