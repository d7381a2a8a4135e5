package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventaris/internal/apperr"
	"inventaris/internal/category/dto"
	"inventaris/internal/i18n"
	"inventaris/internal/listquery"
	"inventaris/internal/model"
	"inventaris/pkg/logger"
)

type fakeUseCase struct {
	lastParams listquery.Params
	deleteErr  error
	createErr  error
}

func (f *fakeUseCase) List(_ context.Context, p listquery.Params) ([]model.CategoryWithCount, int, error) {
	f.lastParams = p
	return []model.CategoryWithCount{
		{Category: model.Category{Name: "Elektronik"}, ItemsCount: 4},
	}, 1, nil
}

func (f *fakeUseCase) Create(_ context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &model.Category{Name: input.Name}, nil
}

func (f *fakeUseCase) Update(_ context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	return &model.Category{BaseModel: model.BaseModel{ID: input.ID}, Name: input.Name}, nil
}

func (f *fakeUseCase) Delete(_ context.Context, _ string) error {
	return f.deleteErr
}

func newTestRouter(t *testing.T, uc *fakeUseCase) http.Handler {
	t.Helper()
	require.NoError(t, i18n.Init())
	h := NewCategoryHandler(uc, logger.NewNop())
	r := chi.NewRouter()
	r.Use(i18n.Middleware)
	r.Get("/categories", h.List)
	r.Post("/categories", h.Create)
	r.Put("/categories/{id}", h.Update)
	r.Delete("/categories/{id}", h.Delete)
	return r
}

func TestListUsesNarrowSortWhitelist(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(t, uc)

	// price is a valid item sort but not a category sort
	req := httptest.NewRequest(http.MethodGet, "/categories?sort_by=price&sort_order=asc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, listquery.SortCreatedAt, uc.lastParams.SortBy)
	assert.Equal(t, listquery.OrderAsc, uc.lastParams.SortOrder)

	var body struct {
		Data []struct {
			Name       string `json:"name"`
			ItemsCount int    `json:"items_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, 4, body.Data[0].ItemsCount)
}

func TestDeleteRefusedWhileItemsExist(t *testing.T) {
	uc := &fakeUseCase{deleteErr: &apperr.Rule{
		Message: "Kategori tidak dapat dihapus karena masih memiliki barang.",
	}}
	router := newTestRouter(t, uc)

	req := httptest.NewRequest(http.MethodDelete, "/categories/c-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "masih memiliki barang")
}

func TestCreateUniquenessConflictIsFieldError(t *testing.T) {
	v := apperr.NewValidation()
	v.Add("name", "Nama kategori sudah ada.")
	uc := &fakeUseCase{createErr: v}
	router := newTestRouter(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Elektronik"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Nama kategori sudah ada.", body.Errors["name"])
}

func TestDeleteSuccess(t *testing.T) {
	router := newTestRouter(t, &fakeUseCase{})

	req := httptest.NewRequest(http.MethodDelete, "/categories/c-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kategori berhasil dihapus.")
}
