package usecase

import (
	"context"
	"encoding/json"
	"time"

	"inventaris/internal/dashboard"
	"inventaris/pkg/cache"
	"inventaris/pkg/logger"
)

const (
	topN            = 5
	summaryCacheKey = "dashboard:summary"
	summaryCacheTTL = time.Minute
)

type dashboardUseCase struct {
	repo   dashboard.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewDashboardUseCase(repo dashboard.Repository, c *cache.RedisClient, log logger.ZapLogger) dashboard.UseCase {
	return &dashboardUseCase{
		repo:   repo,
		cache:  c,
		logger: log,
	}
}

func (uc *dashboardUseCase) Summary(ctx context.Context) (*dashboard.Summary, error) {
	if uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, summaryCacheKey).Result(); err == nil {
			var summary dashboard.Summary
			if err := json.Unmarshal([]byte(val), &summary); err == nil {
				return &summary, nil
			}
		}
	}

	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := uc.repo.LatestItems(ctx, topN)
	if err != nil {
		return nil, err
	}
	popular, err := uc.repo.PopularCategories(ctx, topN)
	if err != nil {
		return nil, err
	}

	summary := &dashboard.Summary{
		Stats:             *stats,
		LatestItems:       latest,
		PopularCategories: popular,
	}

	if uc.cache != nil {
		if data, err := json.Marshal(summary); err == nil {
			uc.cache.Client.Set(ctx, summaryCacheKey, data, summaryCacheTTL)
		}
	}

	return summary, nil
}
