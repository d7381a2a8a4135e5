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
	"go.uber.org/zap"

	"inventaris/internal/apperr"
	"inventaris/internal/auth"
	"inventaris/internal/category"
	"inventaris/internal/category/dto"
	"inventaris/internal/i18n"
	"inventaris/internal/listquery"
	"inventaris/internal/model"
	"inventaris/pkg/cache"
	"inventaris/pkg/logger"
)

const listCacheTTL = 5 * time.Minute

type categoryUseCase struct {
	repo   category.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, c *cache.RedisClient, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		cache:  c,
		logger: log,
	}
}

type cachedList struct {
	Categories []model.CategoryWithCount `json:"categories"`
	Total      int                       `json:"total"`
}

func (uc *categoryUseCase) List(ctx context.Context, p listquery.Params) ([]model.CategoryWithCount, int, error) {
	cacheKey := listCacheKey(p)
	if uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, cacheKey).Result(); err == nil {
			var cached cachedList
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached.Categories, cached.Total, nil
			}
		}
	}

	categories, count, err := uc.repo.FindAll(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(cachedList{Categories: categories, Total: count}); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, listCacheTTL)
		}
	}

	return categories, count, nil
}

func (uc *categoryUseCase) Create(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if err := uc.validate(ctx, input.Name, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	c := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        strings.TrimSpace(input.Name),
		Description: optional(input.Description),
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		uc.logger.Error("failed to create category", zap.Error(err))
		return nil, err
	}
	uc.logger.Info("category created", zap.String("category_id", c.ID), zap.String("user_id", auth.GetUserID(ctx)))

	go uc.invalidateCache(context.Background())

	return c, nil
}

func (uc *categoryUseCase) Update(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	c, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &apperr.NotFound{Entity: "category", ID: input.ID}
	}

	// The uniqueness check excludes the record's own row so renaming a
	// category to its current name still succeeds.
	if err := uc.validate(ctx, input.Name, c.ID); err != nil {
		return nil, err
	}

	c.Name = strings.TrimSpace(input.Name)
	c.Description = optional(input.Description)
	c.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, c); err != nil {
		uc.logger.Error("failed to update category", zap.Error(err))
		return nil, err
	}
	uc.logger.Info("category updated", zap.String("category_id", c.ID), zap.String("user_id", auth.GetUserID(ctx)))

	go uc.invalidateCache(context.Background())

	return c, nil
}

func (uc *categoryUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return &apperr.NotFound{Entity: "category", ID: id}
	}

	deleted, err := uc.repo.DeleteIfNoItems(ctx, id)
	if err != nil {
		uc.logger.Error("failed to delete category", zap.Error(err))
		return err
	}
	if !deleted {
		// The conditional delete refused: items still reference the category.
		return &apperr.Rule{Message: i18n.T(ctx, "category.delete_has_items")}
	}
	uc.logger.Info("category deleted", zap.String("category_id", id), zap.String("user_id", auth.GetUserID(ctx)))

	go uc.invalidateCache(context.Background())

	return nil
}

func (uc *categoryUseCase) validate(ctx context.Context, name, excludeID string) error {
	v := apperr.NewValidation()

	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		v.Add("name", i18n.T(ctx, "validation.category.name_required"))
	case utf8.RuneCountInString(trimmed) > 255:
		v.Add("name", i18n.T(ctx, "validation.category.name_max"))
	default:
		unique, err := uc.repo.IsNameUnique(ctx, trimmed, excludeID)
		if err != nil {
			return err
		}
		if !unique {
			v.Add("name", i18n.T(ctx, "validation.category.name_unique"))
		}
	}

	if v.HasErrors() {
		return v
	}
	return nil
}

func (uc *categoryUseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	// Item list rows carry the category name, so their cache goes stale too.
	for _, pattern := range []string{"categories:list:*", "items:list:*", "dashboard:*"} {
		keys, err := uc.cache.Client.Keys(ctx, pattern).Result()
		if err == nil && len(keys) > 0 {
			uc.cache.Client.Del(ctx, keys...)
		}
	}
}

func listCacheKey(p listquery.Params) string {
	data, _ := json.Marshal(p)
	return fmt.Sprintf("categories:list:%x", md5.Sum(data))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
