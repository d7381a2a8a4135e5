package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventaris/internal/listquery"
)

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "pgx")), mock
}

var itemColumns = []string{
	"id", "category_id", "name", "description", "stock", "price",
	"created_at", "updated_at", "category_name",
}

func itemRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(itemColumns).
		AddRow("i-1", "c-1", "Mouse Wireless", "Mouse nirkabel", 25, "150000.00", now, now, "Elektronik")
}

func countRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestFindAllSearchPredicate(t *testing.T) {
	repo, mock := newMockRepo(t)
	pattern := "%mouse%"

	// the lower-cased term must hit name, description, and the joined
	// category name, OR-combined, in both the count and the page query
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT count(*) FROM items i LEFT JOIN categories c ON c.id = i.category_id"+
			" WHERE (LOWER(i.name) LIKE $1 OR LOWER(i.description) LIKE $2 OR LOWER(c.name) LIKE $3)")).
		WithArgs(pattern, pattern, pattern).
		WillReturnRows(countRows(1))

	mock.ExpectPrepare(regexp.QuoteMeta(
		"(LOWER(i.name) LIKE $1 OR LOWER(i.description) LIKE $2 OR LOWER(c.name) LIKE $3)"+
			" ORDER BY i.created_at DESC LIMIT 10 OFFSET 0")).
		ExpectQuery().
		WithArgs(pattern, pattern, pattern).
		WillReturnRows(itemRows())

	items, count, err := repo.FindAll(context.Background(), listquery.Params{
		Search: "Mouse", SortBy: listquery.SortCreatedAt, SortOrder: listquery.OrderDesc, Page: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	require.Len(t, items, 1)
	assert.Equal(t, "Mouse Wireless", items[0].Name)
	require.NotNil(t, items[0].CategoryName)
	assert.Equal(t, "Elektronik", *items[0].CategoryName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllSearchWildcardPassthrough(t *testing.T) {
	repo, mock := newMockRepo(t)
	// % and _ keep their LIKE meaning all the way to the driver
	pattern := "%100%_%"

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*)")).
		WithArgs(pattern, pattern, pattern).
		WillReturnRows(countRows(0))
	mock.ExpectPrepare(regexp.QuoteMeta("ORDER BY")).
		ExpectQuery().
		WithArgs(pattern, pattern, pattern).
		WillReturnRows(sqlmock.NewRows(itemColumns))

	_, _, err := repo.FindAll(context.Background(), listquery.Params{
		Search: "100%_", SortBy: listquery.SortCreatedAt, SortOrder: listquery.OrderDesc, Page: 1,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllCategoryFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	// exact match on the joined category name, not on category_id
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT count(*) FROM items i LEFT JOIN categories c ON c.id = i.category_id WHERE c.name = $1")).
		WithArgs("Elektronik").
		WillReturnRows(countRows(1))

	mock.ExpectPrepare(regexp.QuoteMeta("WHERE c.name = $1 ORDER BY i.created_at DESC")).
		ExpectQuery().
		WithArgs("Elektronik").
		WillReturnRows(itemRows())

	items, count, err := repo.FindAll(context.Background(), listquery.Params{
		Category: "Elektronik", SortBy: listquery.SortCreatedAt, SortOrder: listquery.OrderDesc, Page: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllSearchAndCategoryCombined(t *testing.T) {
	repo, mock := newMockRepo(t)
	pattern := "%mouse%"

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE (LOWER(i.name) LIKE $1 OR LOWER(i.description) LIKE $2 OR LOWER(c.name) LIKE $3) AND c.name = $4")).
		WithArgs(pattern, pattern, pattern, "Elektronik").
		WillReturnRows(countRows(1))
	mock.ExpectPrepare(regexp.QuoteMeta("AND c.name = $4")).
		ExpectQuery().
		WithArgs(pattern, pattern, pattern, "Elektronik").
		WillReturnRows(itemRows())

	_, count, err := repo.FindAll(context.Background(), listquery.Params{
		Search: "Mouse", Category: "Elektronik",
		SortBy: listquery.SortCreatedAt, SortOrder: listquery.OrderDesc, Page: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllSortByCategoryOrdersJoinedName(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT count(*) FROM items i LEFT JOIN categories c ON c.id = i.category_id")).
		WillReturnRows(countRows(2))

	// category sort orders by the joined name while still selecting item columns
	mock.ExpectPrepare(regexp.QuoteMeta(
		"SELECT i.*, c.name AS category_name FROM items i LEFT JOIN categories c ON c.id = i.category_id"+
			" ORDER BY c.name ASC LIMIT 10 OFFSET 0")).
		ExpectQuery().
		WillReturnRows(itemRows())

	_, _, err := repo.FindAll(context.Background(), listquery.Params{
		SortBy: listquery.SortCategory, SortOrder: listquery.OrderAsc, Page: 1,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllPlainColumnSortAndOffset(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*)")).
		WillReturnRows(countRows(25))
	mock.ExpectPrepare(regexp.QuoteMeta("ORDER BY i.price ASC LIMIT 10 OFFSET 20")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows(itemColumns))

	_, count, err := repo.FindAll(context.Background(), listquery.Params{
		SortBy: listquery.SortPrice, SortOrder: listquery.OrderAsc, Page: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
