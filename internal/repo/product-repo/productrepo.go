package productrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/avolkhin/luckydraw/internal/domain"
	"github.com/avolkhin/luckydraw/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, productID int) (*domain.Product, error) {
	query := `
        SELECT id, name, sale_price, original_price, prize_type, lucky_draw, auto_create_next, created_at
        FROM products
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, productID)
	var product domain.Product
	err := row.Scan(
		&product.ID, &product.Name, &product.SalePrice, &product.OriginalPrice,
		&product.PrizeType, &product.LuckyDraw, &product.AutoCreateNext, &product.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find product", zap.Error(err))
		return nil, err
	}
	return &product, nil
}
