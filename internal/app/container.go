package app

import (
	"context"
	"fmt"

	"github.com/arim/yt-utility-go/internal/config"
	"github.com/arim/yt-utility-go/internal/service/cache"
	"github.com/arim/yt-utility-go/internal/service/insight"
	"github.com/arim/yt-utility-go/internal/service/resolver"
	"github.com/arim/yt-utility-go/internal/service/scrape"
	"github.com/arim/yt-utility-go/internal/service/youtube"
	"github.com/arim/yt-utility-go/internal/web"
	"go.uber.org/zap"
)

// Container bundles the assembled service graph. All heavy-weight
// initialization (Redis, the API client, the heuristic weights file) happens
// in Build so main stays focused on the HTTP lifecycle.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Handlers *web.Handlers

	cache *cache.Service
}

// Close releases held connections.
func (c *Container) Close() {
	if c == nil || c.cache == nil {
		return
	}
	if err := c.cache.Close(); err != nil {
		c.Logger.Warn("Cache close failed", zap.Error(err))
	}
}

// Build assembles the full dependency graph.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	cacheSvc, err := cache.New(cfg.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache service: %w", err)
	}
	closers = append(closers, func() {
		_ = cacheSvc.Close()
	})

	youtubeSvc, err := youtube.New(ctx, cfg.YouTube, cacheSvc, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	weights, err := insight.LoadWeights(cfg.Heuristic.WeightsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load heuristic weights: %w", err)
	}

	channelResolver := resolver.New(youtubeSvc, logger)
	scraper := scrape.New(cacheSvc, logger)
	analyzer := insight.NewChannelAnalyzer(youtubeSvc, scraper, weights, logger)
	prober := insight.NewShadowbanProber(youtubeSvc, logger)

	handlers := web.NewHandlers(youtubeSvc, channelResolver, analyzer, prober, scraper, cfg.Server, logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Handlers: handlers,
		cache:    cacheSvc,
	}, nil
}
