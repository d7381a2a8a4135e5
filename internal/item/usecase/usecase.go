package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"inventaris/internal/apperr"
	"inventaris/internal/auth"
	"inventaris/internal/category"
	"inventaris/internal/i18n"
	"inventaris/internal/item"
	"inventaris/internal/item/dto"
	"inventaris/internal/listquery"
	"inventaris/internal/model"
	"inventaris/pkg/cache"
	"inventaris/pkg/logger"
)

const listCacheTTL = 5 * time.Minute

type itemUseCase struct {
	repo    item.Repository
	catRepo category.Repository
	cache   *cache.RedisClient
	logger  logger.ZapLogger
}

func NewItemUseCase(repo item.Repository, catRepo category.Repository, c *cache.RedisClient, log logger.ZapLogger) item.UseCase {
	return &itemUseCase{
		repo:    repo,
		catRepo: catRepo,
		cache:   c,
		logger:  log,
	}
}

func (uc *itemUseCase) List(ctx context.Context, p listquery.Params) (*dto.ListPage, error) {
	cacheKey := listCacheKey(p)
	if uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, cacheKey).Result(); err == nil {
			var page dto.ListPage
			if err := json.Unmarshal([]byte(val), &page); err == nil {
				return &page, nil
			}
		}
	}

	items, count, err := uc.repo.FindAll(ctx, p)
	if err != nil {
		return nil, err
	}

	names, err := uc.catRepo.NamesInUse(ctx)
	if err != nil {
		return nil, err
	}
	options, err := uc.catRepo.AllForDropdown(ctx)
	if err != nil {
		return nil, err
	}

	page := &dto.ListPage{
		Items:           items,
		Total:           count,
		CategoryNames:   names,
		CategoryOptions: options,
	}

	if uc.cache != nil {
		if data, err := json.Marshal(page); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, listCacheTTL)
		}
	}

	return page, nil
}

func (uc *itemUseCase) Get(ctx context.Context, id string) (*model.Item, error) {
	i, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, &apperr.NotFound{Entity: "item", ID: id}
	}
	return i, nil
}

func (uc *itemUseCase) Create(ctx context.Context, input *dto.CreateItemInput) (*model.Item, error) {
	if err := uc.validate(ctx, input.Name, input.Stock, input.Price); err != nil {
		return nil, err
	}

	categoryID, err := uc.resolveCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	i := &model.Item{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CategoryID:  categoryID,
		Name:        strings.TrimSpace(input.Name),
		Description: optional(input.Description),
		Stock:       input.Stock,
		Price:       input.Price,
	}

	if err := uc.repo.Create(ctx, i); err != nil {
		uc.logger.Error("failed to create item", zap.Error(err))
		return nil, err
	}
	uc.logger.Info("item created", zap.String("item_id", i.ID), zap.String("user_id", auth.GetUserID(ctx)))

	go uc.invalidateCache(context.Background())

	return i, nil
}

func (uc *itemUseCase) Update(ctx context.Context, input *dto.UpdateItemInput) (*model.Item, error) {
	i, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, &apperr.NotFound{Entity: "item", ID: input.ID}
	}

	if err := uc.validate(ctx, input.Name, input.Stock, input.Price); err != nil {
		return nil, err
	}

	// An absent or unresolvable category_id clears the association. That is
	// the intended override behavior, not an error.
	categoryID, err := uc.resolveCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	i.CategoryID = categoryID
	i.Name = strings.TrimSpace(input.Name)
	i.Description = optional(input.Description)
	i.Stock = input.Stock
	i.Price = input.Price
	i.UpdatedAt = time.Now()
	i.CategoryName = nil

	if err := uc.repo.Update(ctx, i); err != nil {
		uc.logger.Error("failed to update item", zap.Error(err))
		return nil, err
	}
	uc.logger.Info("item updated", zap.String("item_id", i.ID), zap.String("user_id", auth.GetUserID(ctx)))

	go uc.invalidateCache(context.Background())

	return i, nil
}

func (uc *itemUseCase) Delete(ctx context.Context, id string) error {
	i, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if i == nil {
		return &apperr.NotFound{Entity: "item", ID: id}
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete item", zap.Error(err))
		return err
	}
	uc.logger.Info("item deleted", zap.String("item_id", id), zap.String("user_id", auth.GetUserID(ctx)))

	go uc.invalidateCache(context.Background())

	return nil
}

func (uc *itemUseCase) validate(ctx context.Context, name string, stock int, price decimal.Decimal) error {
	v := apperr.NewValidation()

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		v.Add("name", i18n.T(ctx, "validation.item.name_required"))
	} else if utf8.RuneCountInString(trimmed) > 255 {
		v.Add("name", i18n.T(ctx, "validation.item.name_max"))
	}

	if stock < 0 {
		v.Add("stock", i18n.T(ctx, "validation.item.stock_min"))
	}

	if price.IsNegative() {
		v.Add("price", i18n.T(ctx, "validation.item.price_min"))
	} else if !price.Equal(price.Round(2)) {
		// compare values, not exponents: 10.010 is fine, 10.001 is not
		v.Add("price", i18n.T(ctx, "validation.item.price_scale"))
	}

	if v.HasErrors() {
		return v
	}
	return nil
}

// resolveCategory maps a requested category id to the stored association.
// Empty or unknown ids resolve to no category.
func (uc *itemUseCase) resolveCategory(ctx context.Context, categoryID string) (*string, error) {
	if categoryID == "" {
		return nil, nil
	}
	cat, err := uc.catRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	return &cat.ID, nil
}

func (uc *itemUseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	for _, pattern := range []string{"items:list:*", "dashboard:*"} {
		keys, err := uc.cache.Client.Keys(ctx, pattern).Result()
		if err == nil && len(keys) > 0 {
			uc.cache.Client.Del(ctx, keys...)
		}
	}
}

func listCacheKey(p listquery.Params) string {
	data, _ := json.Marshal(p)
	return fmt.Sprintf("items:list:%x", md5.Sum(data))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
