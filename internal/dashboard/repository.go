package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"inventaris/internal/model"
)

// Stats are the four headline numbers. TotalValue is SUM(stock * price)
// computed on the NUMERIC column, so it is exact money arithmetic, never a
// float approximation.
type Stats struct {
	TotalItems      int             `db:"total_items" json:"total_items"`
	TotalCategories int             `db:"total_categories" json:"total_categories"`
	TotalStock      int64           `db:"total_stock" json:"total_stock"`
	TotalValue      decimal.Decimal `db:"total_value" json:"total_value"`
}

type Repository interface {
	Stats(ctx context.Context) (*Stats, error)
	LatestItems(ctx context.Context, limit int) ([]model.Item, error)
	// PopularCategories ranks by descending item count; ties break on
	// category id ascending for deterministic output.
	PopularCategories(ctx context.Context, limit int) ([]model.CategoryWithCount, error)
}
