package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"inventaris/internal/dashboard"
	"inventaris/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Stats(ctx context.Context) (*dashboard.Stats, error) {
	var stats dashboard.Stats
	query := `
        SELECT
            (SELECT count(*) FROM items)                            AS total_items,
            (SELECT count(*) FROM categories)                       AS total_categories,
            (SELECT COALESCE(SUM(stock), 0) FROM items)             AS total_stock,
            (SELECT COALESCE(SUM(stock * price), 0) FROM items)     AS total_value
    `
	if err := r.DB.GetContext(ctx, &stats, query); err != nil {
		return nil, errors.Wrap(err, "dashboard stats")
	}
	return &stats, nil
}

func (r *PGRepository) LatestItems(ctx context.Context, limit int) ([]model.Item, error) {
	var items []model.Item
	query := `
        SELECT i.*, c.name AS category_name
        FROM items i
        LEFT JOIN categories c ON c.id = i.category_id
        ORDER BY i.created_at DESC
        LIMIT $1
    `
	if err := r.DB.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, errors.Wrap(err, "latest items")
	}
	return items, nil
}

func (r *PGRepository) PopularCategories(ctx context.Context, limit int) ([]model.CategoryWithCount, error) {
	var categories []model.CategoryWithCount
	query := `
        SELECT c.*, count(i.id) AS items_count
        FROM categories c
        LEFT JOIN items i ON i.category_id = c.id
        GROUP BY c.id
        ORDER BY items_count DESC, c.id ASC
        LIMIT $1
    `
	if err := r.DB.SelectContext(ctx, &categories, query, limit); err != nil {
		return nil, errors.Wrap(err, "popular categories")
	}
	return categories, nil
}
