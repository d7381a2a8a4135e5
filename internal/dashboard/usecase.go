package dashboard

import (
	"context"

	"inventaris/internal/model"
)

// Summary is the dashboard payload.
type Summary struct {
	Stats             Stats                     `json:"stats"`
	LatestItems       []model.Item              `json:"latest_items"`
	PopularCategories []model.CategoryWithCount `json:"popular_categories"`
}

type UseCase interface {
	Summary(ctx context.Context) (*Summary, error)
}
