package roundrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/avolkhin/luckydraw/internal/domain"
	"github.com/avolkhin/luckydraw/internal/pg"
)

const roundColumns = `id, product_id, round_number, total_spots, sold_spots, price_per_spot, prize_value,
               status, auto_create_next, completed_at, drawn_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindOngoingByProduct(ctx context.Context, productID int) (*domain.DrawRound, error) {
	query := `
        SELECT ` + roundColumns + `
        FROM draw_rounds
        WHERE product_id = $1 AND status = 'ONGOING'
        ORDER BY round_number DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, productID)
	round, err := scanRound(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find ongoing round", zap.Error(err))
		return nil, err
	}
	return round, nil
}

func (r *Repository) FindByID(ctx context.Context, roundID int) (*domain.DrawRound, error) {
	query := `
        SELECT ` + roundColumns + `
        FROM draw_rounds
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, roundID)
	round, err := scanRound(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find round", zap.Error(err))
		return nil, err
	}
	return round, nil
}

// FindByIDForUpdate locks the round row for the rest of the transaction.
// Spot allocation and state transitions serialize on this lock.
func (r *Repository) FindByIDForUpdate(ctx context.Context, roundID int) (*domain.DrawRound, error) {
	query := `
        SELECT ` + roundColumns + `
        FROM draw_rounds
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, roundID)
	round, err := scanRound(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to lock round", zap.Error(err))
		return nil, err
	}
	return round, nil
}

// Create inserts the next round for a product. round_number is derived from
// the current maximum inside the insert, and the unique (product_id,
// round_number) index rejects the loser of a concurrent create.
func (r *Repository) Create(ctx context.Context, round *domain.DrawRound) error {
	query := `
        INSERT INTO draw_rounds (product_id, round_number, total_spots, price_per_spot, prize_value, auto_create_next)
        VALUES ($1, (SELECT COALESCE(MAX(round_number), 0) + 1 FROM draw_rounds WHERE product_id = $1), $2, $3, $4, $5)
        RETURNING ` + roundColumns + `
	`
	row := r.db.QueryRow(ctx, query,
		round.ProductID, round.TotalSpots, round.PricePerSpot, round.PrizeValue, round.AutoCreateNext,
	)
	created, err := scanRound(row)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("failed to create round", zap.Error(err))
		}
		return err
	}
	*round = *created
	return nil
}

func (r *Repository) AdvanceSoldSpots(ctx context.Context, roundID, soldSpots int, completedAt *time.Time) error {
	query := `
        UPDATE draw_rounds
        SET sold_spots = $1,
            status = CASE WHEN $2::timestamptz IS NULL THEN status ELSE 'COMPLETED' END,
            completed_at = COALESCE($2, completed_at)
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, soldSpots, completedAt, roundID)
	if err != nil {
		zap.L().Error("failed to advance sold spots", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkDrawn(ctx context.Context, roundID int, drawnAt time.Time) error {
	query := `
        UPDATE draw_rounds
        SET status = 'DRAWN', drawn_at = $1
        WHERE id = $2 AND status = 'COMPLETED'
    `
	_, err := r.db.Exec(ctx, query, drawnAt, roundID)
	if err != nil {
		zap.L().Error("failed to mark round drawn", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Cancel(ctx context.Context, roundID int) error {
	query := `
        UPDATE draw_rounds
        SET status = 'CANCELLED'
        WHERE id = $1 AND status IN ('ONGOING', 'COMPLETED')
    `
	_, err := r.db.Exec(ctx, query, roundID)
	if err != nil {
		zap.L().Error("failed to cancel round", zap.Error(err))
		return err
	}
	return nil
}

// FindCompletedUndrawn returns rounds that filled but have no result yet.
// The draw sweep drives these to DRAWN.
func (r *Repository) FindCompletedUndrawn(ctx context.Context, limit uint32) ([]domain.DrawRound, error) {
	query := `
        SELECT ` + roundColumns + `
        FROM draw_rounds
        WHERE status = 'COMPLETED'
        ORDER BY completed_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("failed to find completed undrawn rounds", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rounds []domain.DrawRound
	for rows.Next() {
		round, err := scanRound(rows)
		if err != nil {
			zap.L().Error("failed to scan round row", zap.Error(err))
			return nil, err
		}
		rounds = append(rounds, *round)
	}
	return rounds, nil
}

func scanRound(row pgx.Row) (*domain.DrawRound, error) {
	var round domain.DrawRound
	err := row.Scan(
		&round.ID, &round.ProductID, &round.RoundNumber, &round.TotalSpots, &round.SoldSpots,
		&round.PricePerSpot, &round.PrizeValue, &round.Status, &round.AutoCreateNext,
		&round.CompletedAt, &round.DrawnAt, &round.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &round, nil
}
