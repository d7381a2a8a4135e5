package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventaris/internal/apperr"
	"inventaris/internal/category/dto"
	"inventaris/internal/i18n"
	"inventaris/internal/listquery"
	"inventaris/internal/model"
	"inventaris/pkg/logger"
)

type fakeRepo struct {
	categories map[string]*model.Category
	itemCounts map[string]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		categories: map[string]*model.Category{},
		itemCounts: map[string]int{},
	}
}

func (r *fakeRepo) Create(_ context.Context, c *model.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeRepo) FindAll(_ context.Context, _ listquery.Params) ([]model.CategoryWithCount, int, error) {
	out := make([]model.CategoryWithCount, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, model.CategoryWithCount{Category: *c, ItemsCount: r.itemCounts[c.ID]})
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, c *model.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteIfNoItems(_ context.Context, id string) (bool, error) {
	if r.itemCounts[id] > 0 {
		return false, nil
	}
	delete(r.categories, id)
	return true, nil
}

func (r *fakeRepo) IsNameUnique(_ context.Context, name, excludeID string) (bool, error) {
	for _, c := range r.categories {
		if c.Name == name && c.ID != excludeID {
			return false, nil
		}
	}
	return true, nil
}

func (r *fakeRepo) NamesInUse(_ context.Context) ([]string, error) { return nil, nil }

func (r *fakeRepo) AllForDropdown(_ context.Context) ([]model.CategoryOption, error) {
	return nil, nil
}

func newTestUseCase(t *testing.T) (*fakeRepo, *categoryUseCase) {
	t.Helper()
	require.NoError(t, i18n.Init())
	repo := newFakeRepo()
	uc := NewCategoryUseCase(repo, nil, logger.NewNop()).(*categoryUseCase)
	return repo, uc
}

func TestCreateCategory(t *testing.T) {
	repo, uc := newTestUseCase(t)

	c, err := uc.Create(context.Background(), &dto.CreateCategoryInput{
		Name:        "Elektronik",
		Description: "Perangkat elektronik",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Elektronik", c.Name)
	require.NotNil(t, c.Description)
	assert.NotNil(t, repo.categories[c.ID])
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	_, uc := newTestUseCase(t)

	_, err := uc.Create(context.Background(), &dto.CreateCategoryInput{Name: "Elektronik"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), &dto.CreateCategoryInput{Name: "Elektronik"})
	v, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "Nama kategori sudah ada.", v.Fields["name"])
}

func TestUpdateCategoryKeepsOwnName(t *testing.T) {
	_, uc := newTestUseCase(t)

	c, err := uc.Create(context.Background(), &dto.CreateCategoryInput{Name: "Elektronik"})
	require.NoError(t, err)

	// renaming to its own current name passes the uniqueness check
	updated, err := uc.Update(context.Background(), &dto.UpdateCategoryInput{
		ID:          c.ID,
		Name:        "Elektronik",
		Description: "diperbarui",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "diperbarui", *updated.Description)
}

func TestUpdateCategoryConflictsWithOther(t *testing.T) {
	_, uc := newTestUseCase(t)

	_, err := uc.Create(context.Background(), &dto.CreateCategoryInput{Name: "Elektronik"})
	require.NoError(t, err)
	c2, err := uc.Create(context.Background(), &dto.CreateCategoryInput{Name: "Pakaian"})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), &dto.UpdateCategoryInput{ID: c2.ID, Name: "Elektronik"})
	v, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, v.Fields, "name")
}

func TestUpdateCategoryNotFound(t *testing.T) {
	_, uc := newTestUseCase(t)

	_, err := uc.Update(context.Background(), &dto.UpdateCategoryInput{ID: "missing", Name: "X"})
	_, ok := apperr.AsNotFound(err)
	assert.True(t, ok)
}

func TestDeleteCategoryWithItemsRefused(t *testing.T) {
	repo, uc := newTestUseCase(t)

	c, err := uc.Create(context.Background(), &dto.CreateCategoryInput{Name: "Elektronik"})
	require.NoError(t, err)
	repo.itemCounts[c.ID] = 3

	err = uc.Delete(context.Background(), c.ID)
	r, ok := apperr.AsRule(err)
	require.True(t, ok)
	assert.Equal(t, "Kategori tidak dapat dihapus karena masih memiliki barang.", r.Message)
	assert.NotNil(t, repo.categories[c.ID], "category must be left untouched")
}

func TestDeleteCategoryWithoutItems(t *testing.T) {
	repo, uc := newTestUseCase(t)

	c, err := uc.Create(context.Background(), &dto.CreateCategoryInput{Name: "Elektronik"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), c.ID))
	assert.Empty(t, repo.categories)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	_, uc := newTestUseCase(t)

	err := uc.Delete(context.Background(), "missing")
	_, ok := apperr.AsNotFound(err)
	assert.True(t, ok)
}

func TestCreateCategoryNameRequired(t *testing.T) {
	_, uc := newTestUseCase(t)

	_, err := uc.Create(context.Background(), &dto.CreateCategoryInput{Name: "   "})
	v, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "Nama kategori wajib diisi.", v.Fields["name"])
}
