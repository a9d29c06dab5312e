package resultrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/avolkhin/luckydraw/internal/domain"
	"github.com/avolkhin/luckydraw/internal/pg"
)

const resultColumns = `id, draw_round_id, winning_number, winner_user_id, prize_type, prize_value, prize_status,
               timestamp_sum, block_distance, target_block_height, target_block_hash, hash_last6,
               completion_time, block_time, verification_url, distributed_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Save inserts the result for a round. The unique index on draw_round_id is
// the last line of defense against a double draw.
func (r *Repository) Save(ctx context.Context, result *domain.DrawResult) error {
	query := `
        INSERT INTO draw_results
            (draw_round_id, winning_number, winner_user_id, prize_type, prize_value, prize_status,
             timestamp_sum, block_distance, target_block_height, target_block_hash, hash_last6,
             completion_time, block_time, verification_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		result.DrawRoundID, result.WinningNumber, result.WinnerUserID, result.PrizeType, result.PrizeValue,
		result.PrizeStatus, result.TimestampSum, result.BlockDistance, result.TargetBlockHeight,
		result.TargetBlockHash, result.HashLast6Digits, result.CompletionTime, result.BlockTime,
		result.VerificationURL,
	)
	if err := row.Scan(&result.ID, &result.CreatedAt); err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("failed to save draw result", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) FindByRoundID(ctx context.Context, roundID int) (*domain.DrawResult, error) {
	query := `
        SELECT ` + resultColumns + `
        FROM draw_results
        WHERE draw_round_id = $1
    `
	row := r.db.QueryRow(ctx, query, roundID)
	result, err := scanResult(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find draw result", zap.Error(err))
		return nil, err
	}
	return result, nil
}

// FindByIDForUpdate locks the result row. Prize distribution re-checks
// PENDING under this lock before crediting.
func (r *Repository) FindByIDForUpdate(ctx context.Context, resultID int) (*domain.DrawResult, error) {
	query := `
        SELECT ` + resultColumns + `
        FROM draw_results
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, resultID)
	result, err := scanResult(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to lock draw result", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (r *Repository) UpdatePrizeStatus(ctx context.Context, resultID int, status domain.PrizeStatus, distributedAt *time.Time) error {
	query := `
        UPDATE draw_results
        SET prize_status = $1, distributed_at = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, status, distributedAt, resultID)
	if err != nil {
		zap.L().Error("failed to update prize status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdatePrizeType(ctx context.Context, resultID int, prizeType domain.PrizeType) error {
	query := `
        UPDATE draw_results
        SET prize_type = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, prizeType, resultID)
	if err != nil {
		zap.L().Error("failed to update prize type", zap.Error(err))
		return err
	}
	return nil
}

// FindPendingPayable returns pending cash and crypto prizes. Physical prizes
// stay PENDING for manual fulfillment and are excluded.
func (r *Repository) FindPendingPayable(ctx context.Context, limit uint32) ([]domain.DrawResult, error) {
	query := `
        SELECT ` + resultColumns + `
        FROM draw_results
        WHERE prize_status = 'PENDING' AND prize_type IN ('CASH', 'CRYPTO')
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("failed to find pending prizes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var results []domain.DrawResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			zap.L().Error("failed to scan draw result row", zap.Error(err))
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}

func scanResult(row pgx.Row) (*domain.DrawResult, error) {
	var result domain.DrawResult
	err := row.Scan(
		&result.ID, &result.DrawRoundID, &result.WinningNumber, &result.WinnerUserID,
		&result.PrizeType, &result.PrizeValue, &result.PrizeStatus,
		&result.TimestampSum, &result.BlockDistance, &result.TargetBlockHeight,
		&result.TargetBlockHash, &result.HashLast6Digits, &result.CompletionTime, &result.BlockTime,
		&result.VerificationURL, &result.DistributedAt, &result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
