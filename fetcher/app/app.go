package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"lolladder/fetcher/data"
	"lolladder/fetcher/repositories"
	"lolladder/fetcher/requests"
	profileservice "lolladder/fetcher/services/profile"
	"lolladder/pkg/config"
	"lolladder/pkg/leaderboard"
	"lolladder/pkg/logger"
	"lolladder/pkg/redis"
	"lolladder/pkg/regions"
	"lolladder/pkg/roster"
)

// App runs the whole roster once: load, fetch, render.
type App struct {
	cfg     *config.Config
	logger  *logger.NewLogger
	service *profileservice.ProfileService
	clock   leaderboard.Clock
	redis   *redis.RedisClient
}

// New wires the fetcher, the optional limiter and the optional identity cache.
func New(ctx context.Context, cfg *config.Config, log *logger.NewLogger) (*App, error) {
	subRegion, err := regions.ParseSubRegion(cfg.Riot.SubRegion)
	if err != nil {
		return nil, err
	}

	var limiter *requests.RateLimiter
	if cfg.Fetch.RateLimitEnabled {
		limiter = requests.CreateRateLimiter(cfg.Limits)
	}

	client := requests.NewClient(cfg.Riot.ApiKey, cfg.Fetch.RequestTimeout, limiter)
	fetcher, err := data.CreateMainFetcher(client, subRegion, cfg.Riot.BaseURL)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:    cfg,
		logger: log,
		clock:  leaderboard.SystemClock{},
	}

	var cache repositories.AccountCacheRepository
	if cfg.RedisEnabled() {
		a.redis = redis.NewClient(cfg.Redis)

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		if err := a.redis.Ping(pingCtx); err != nil {
			log.Warnf("Redis unreachable, running without the account cache: %v", err)
			a.redis.Close()
			a.redis = nil
		} else {
			cache = repositories.NewAccountCacheRepository(a.redis, cfg.Redis.TTL)
		}
	}

	a.service = profileservice.NewProfileService(&profileservice.ProfileServiceDeps{
		Fetcher:   fetcher,
		Cache:     cache,
		Logger:    log,
		Region:    string(subRegion),
		StepDelay: cfg.Fetch.StepDelay,
	})

	return a, nil
}

// Run loads the roster, fetches every profile and writes the leaderboards.
// Fetch failures never stop the run, only the roster and the writer can fail it.
func (a *App) Run(ctx context.Context, w io.Writer) error {
	if a.cfg.UsingPlaceholderKey {
		a.logger.Warnf("No API key found at %s, using the placeholder key. Requests will be rejected.", a.cfg.Riot.ApiKeyPath)
	}

	profiles, err := roster.Load(a.cfg.Roster, a.logger)
	if err != nil {
		return err
	}

	a.service.FetchAll(ctx, profiles)

	weeks := leaderboard.Weeks(a.cfg.Playtime, a.clock)
	if err := leaderboard.Render(w, profiles, leaderboard.DefaultBoards(weeks)...); err != nil {
		return fmt.Errorf("couldn't write the leaderboards: %w", err)
	}

	return nil
}

// UploadLog ships the run log when a bucket is configured.
func (a *App) UploadLog(ctx context.Context, now time.Time) {
	if !a.cfg.BucketEnabled() {
		return
	}

	objectKey := fmt.Sprintf("lolladder/%s.log", now.UTC().Format("2006-01-02T15-04-05"))
	if err := a.logger.UploadToS3Bucket(ctx, a.cfg.Bucket, objectKey); err != nil {
		a.logger.Errorf("Couldn't upload the run log: %v", err)
		return
	}
	a.logger.Infof("Run log uploaded to %s.", objectKey)
}

// Close releases the Redis connection.
func (a *App) Close() error {
	if a.redis == nil {
		return nil
	}
	return a.redis.Close()
}
