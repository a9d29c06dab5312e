package participationrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/avolkhin/luckydraw/internal/domain"
	"github.com/avolkhin/luckydraw/internal/pg"
)

const participationColumns = `id, draw_round_id, user_id, quantity, start_number, end_number, total_amount, order_number, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Save(ctx context.Context, participation *domain.Participation) error {
	query := `
        INSERT INTO draw_participations
            (draw_round_id, user_id, quantity, start_number, end_number, total_amount, order_number)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		participation.DrawRoundID, participation.UserID, participation.Quantity,
		participation.StartNumber, participation.EndNumber, participation.TotalAmount, participation.OrderNumber,
	)
	if err := row.Scan(&participation.ID, &participation.CreatedAt); err != nil {
		zap.L().Error("failed to save participation", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByRound(ctx context.Context, roundID int) ([]domain.Participation, error) {
	query := `
        SELECT ` + participationColumns + `
        FROM draw_participations
        WHERE draw_round_id = $1
        ORDER BY start_number ASC
    `
	rows, err := r.db.Query(ctx, query, roundID)
	if err != nil {
		zap.L().Error("failed to list participations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var participations []domain.Participation
	for rows.Next() {
		participation, err := scanParticipation(rows)
		if err != nil {
			zap.L().Error("failed to scan participation row", zap.Error(err))
			return nil, err
		}
		participations = append(participations, *participation)
	}
	return participations, nil
}

// FindByNumber returns the participation whose allocated range contains the
// spot number. Ranges tile [1, sold_spots], so a filled round always resolves.
func (r *Repository) FindByNumber(ctx context.Context, roundID, number int) (*domain.Participation, error) {
	query := `
        SELECT ` + participationColumns + `
        FROM draw_participations
        WHERE draw_round_id = $1 AND start_number <= $2 AND end_number >= $2
    `
	row := r.db.QueryRow(ctx, query, roundID, number)
	participation, err := scanParticipation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find participation by number", zap.Error(err))
		return nil, err
	}
	return participation, nil
}

func scanParticipation(row pgx.Row) (*domain.Participation, error) {
	var participation domain.Participation
	err := row.Scan(
		&participation.ID, &participation.DrawRoundID, &participation.UserID, &participation.Quantity,
		&participation.StartNumber, &participation.EndNumber, &participation.TotalAmount,
		&participation.OrderNumber, &participation.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &participation, nil
}
