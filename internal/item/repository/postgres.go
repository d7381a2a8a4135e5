package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"inventaris/internal/listquery"
	"inventaris/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, i *model.Item) error {
	query := `
        INSERT INTO items (id, category_id, name, description, stock, price, created_at, updated_at)
        VALUES (:id, :category_id, :name, :description, :stock, :price, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, i)
	return errors.Wrap(err, "insert item")
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Item, error) {
	var item model.Item
	query := `
        SELECT i.*, c.name AS category_name
        FROM items i
        LEFT JOIN categories c ON c.id = i.category_id
        WHERE i.id = $1
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &item, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find item")
	}
	return &item, nil
}

// FindAll runs the sanitized list query: lower-cased substring search over
// name, description and the joined category name, exact category-name
// filter, whitelisted sort, fixed-size pages. The left join keeps items
// without a category in the result and never widens it: categories.name is
// unique, so each item matches at most one category row.
func (r *PGRepository) FindAll(ctx context.Context, p listquery.Params) ([]model.Item, int, error) {
	var items []model.Item
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if p.Search != "" {
		// LIKE wildcards in the term are passed through on purpose; see listquery.LikePattern.
		conditions = append(conditions, "(LOWER(i.name) LIKE :search OR LOWER(i.description) LIKE :search OR LOWER(c.name) LIKE :search)")
		args["search"] = listquery.LikePattern(p.Search)
	}
	if p.Category != "" {
		conditions = append(conditions, "c.name = :category")
		args["category"] = p.Category
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	const fromClause = " FROM items i LEFT JOIN categories c ON c.id = i.category_id"

	// Count shares the join and WHERE with the page query.
	countQuery := "SELECT count(*)" + fromClause + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, errors.Wrap(err, "count items")
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, errors.Wrap(err, "scan item count")
		}
	}

	// Sort columns come from the whitelisted enum, never from raw input.
	var orderBy string
	switch p.SortBy {
	case listquery.SortName:
		orderBy = "i.name"
	case listquery.SortPrice:
		orderBy = "i.price"
	case listquery.SortStock:
		orderBy = "i.stock"
	case listquery.SortCategory:
		orderBy = "c.name"
	default:
		orderBy = "i.created_at"
	}
	if p.SortOrder == listquery.OrderAsc {
		orderBy += " ASC"
	} else {
		orderBy += " DESC"
	}

	query := fmt.Sprintf(
		"SELECT i.*, c.name AS category_name%s%s ORDER BY %s LIMIT %d OFFSET %d",
		fromClause, whereClause, orderBy, listquery.PerPage, p.Offset(),
	)

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "prepare item list")
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &items, args); err != nil {
		return nil, 0, errors.Wrap(err, "select items")
	}

	return items, count, nil
}

func (r *PGRepository) Update(ctx context.Context, i *model.Item) error {
	query := `
        UPDATE items
        SET category_id = :category_id,
            name = :name,
            description = :description,
            stock = :stock,
            price = :price,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, i)
	return errors.Wrap(err, "update item")
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM items WHERE id = $1", id)
	return errors.Wrap(err, "delete item")
}
