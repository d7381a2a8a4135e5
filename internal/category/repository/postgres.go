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

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, name, description, created_at, updated_at)
        VALUES (:id, :name, :description, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return errors.Wrap(err, "insert category")
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	query := `SELECT * FROM categories WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find category")
	}
	return &category, nil
}

// FindAll lists categories with their dependent-item counts, searchable over
// name and description with the same lower-cased LIKE as the item listing.
func (r *PGRepository) FindAll(ctx context.Context, p listquery.Params) ([]model.CategoryWithCount, int, error) {
	var categories []model.CategoryWithCount
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if p.Search != "" {
		conditions = append(conditions, "(LOWER(c.name) LIKE :search OR LOWER(c.description) LIKE :search)")
		args["search"] = listquery.LikePattern(p.Search)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM categories c" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, errors.Wrap(err, "count categories")
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, errors.Wrap(err, "scan category count")
		}
	}

	var orderBy string
	switch p.SortBy {
	case listquery.SortName:
		orderBy = "c.name"
	default:
		orderBy = "c.created_at"
	}
	if p.SortOrder == listquery.OrderAsc {
		orderBy += " ASC"
	} else {
		orderBy += " DESC"
	}

	query := fmt.Sprintf(`
        SELECT c.*, (SELECT count(*) FROM items i WHERE i.category_id = c.id) AS items_count
        FROM categories c%s ORDER BY %s LIMIT %d OFFSET %d`,
		whereClause, orderBy, listquery.PerPage, p.Offset(),
	)

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "prepare category list")
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &categories, args); err != nil {
		return nil, 0, errors.Wrap(err, "select categories")
	}

	return categories, count, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET name = :name,
            description = :description,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return errors.Wrap(err, "update category")
}

// DeleteIfNoItems performs the dependent check and the delete in one
// statement. A delete that raced a concurrent item insert simply affects
// zero rows instead of orphaning the item.
func (r *PGRepository) DeleteIfNoItems(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
        DELETE FROM categories
        WHERE id = $1
          AND NOT EXISTS (SELECT 1 FROM items WHERE category_id = $1)
    `, id)
	if err != nil {
		return false, errors.Wrap(err, "delete category")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "delete category rows affected")
	}
	return affected > 0, nil
}

func (r *PGRepository) IsNameUnique(ctx context.Context, name, excludeID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM categories WHERE name = $1`
	args := []interface{}{name}
	if excludeID != "" {
		query += ` AND id != $2`
		args = append(args, excludeID)
	}

	if err := r.DB.GetContext(ctx, &count, query, args...); err != nil {
		return false, errors.Wrap(err, "check category name")
	}
	return count == 0, nil
}

func (r *PGRepository) NamesInUse(ctx context.Context) ([]string, error) {
	var names []string
	query := `
        SELECT DISTINCT c.name
        FROM categories c
        JOIN items i ON i.category_id = c.id
        ORDER BY c.name
    `
	if err := r.DB.SelectContext(ctx, &names, query); err != nil {
		return nil, errors.Wrap(err, "list category names in use")
	}
	return names, nil
}

func (r *PGRepository) AllForDropdown(ctx context.Context) ([]model.CategoryOption, error) {
	var options []model.CategoryOption
	query := `SELECT id, name FROM categories ORDER BY name`
	if err := r.DB.SelectContext(ctx, &options, query); err != nil {
		return nil, errors.Wrap(err, "list category options")
	}
	return options, nil
}
