package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ozzus/bet-tracker/internal/application/service"
	"github.com/ozzus/bet-tracker/internal/config"
	"github.com/ozzus/bet-tracker/internal/domain/catalog"
	"github.com/ozzus/bet-tracker/internal/domain/ports"
	"github.com/ozzus/bet-tracker/internal/infrastructures/apifootball"
	afclient "github.com/ozzus/bet-tracker/internal/infrastructures/apifootball/http/client"
	"github.com/ozzus/bet-tracker/internal/infrastructures/balldontlie"
	bdlclient "github.com/ozzus/bet-tracker/internal/infrastructures/balldontlie/http/client"
	postgres "github.com/ozzus/bet-tracker/internal/infrastructures/db/postgres/repo"
	cacheredis "github.com/ozzus/bet-tracker/internal/infrastructures/db/redis"
	oddsclient "github.com/ozzus/bet-tracker/internal/infrastructures/oddsapi/http/client"
	"github.com/ozzus/bet-tracker/internal/infrastructures/providerhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App owns the dashboard service and the optional backing stores.
type App struct {
	log     *zap.Logger
	Service *service.DashboardService
	Catalog catalog.Catalog
	closers []func()
}

func New(ctx context.Context, log *zap.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	cat, err := cfg.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a := &App{log: log, Catalog: cat}
	logKeys(log, cfg)

	providers := cfg.Providers
	nba := balldontlie.NewSource(bdlclient.NewClient(
		providers.Balldontlie.BaseURL,
		providers.Balldontlie.APIKey,
		providerhttp.NewHTTPClient(providers.Balldontlie.Timeout),
	))
	soccer := apifootball.NewSource(log, afclient.NewClient(
		providers.APIFootball.BaseURL,
		providers.APIFootball.APIKey,
		providerhttp.NewHTTPClient(providers.APIFootball.Timeout),
	))
	odds := oddsclient.NewClient(
		providers.OddsAPI.BaseURL,
		providers.OddsAPI.APIKey,
		providers.OddsAPI.Regions,
		providers.OddsAPI.Bookmaker,
		providerhttp.NewHTTPClient(providers.OddsAPI.Timeout),
	)

	var cache ports.RecordCache
	if strings.TrimSpace(cfg.Redis.Addr) != "" && cfg.CacheTTL > 0 {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, func() {
			if err := redisClient.Close(); err != nil {
				log.Warn("failed to close redis client", zap.Error(err))
			}
		})
		cache = cacheredis.NewRecordCache(redisClient)
		log.Info("record cache enabled", zap.String("redis_addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.CacheTTL))
	}

	var history ports.SuggestionRepository
	if strings.TrimSpace(cfg.DB.DSN) != "" {
		repo, err := postgres.New(ctx, cfg.DB.DSN)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.closers = append(a.closers, repo.Close)
		history = repo
		log.Info("suggestion history enabled")
	}

	a.Service = service.NewDashboardService(
		log,
		cat,
		service.Sources{NBA: nba, Soccer: soccer, Odds: odds},
		cache,
		history,
		cfg.CacheTTL,
		odds.Bookmaker(),
		cfg.LastN,
	)

	return a, nil
}

// Close releases backing stores in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func logKeys(log *zap.Logger, cfg *config.Config) {
	log.Info("provider keys",
		zap.String("nba_key_loaded", yesNo(cfg.Providers.Balldontlie.APIKey)),
		zap.String("soccer_key_loaded", yesNo(cfg.Providers.APIFootball.APIKey)),
		zap.String("odds_key_loaded", yesNo(cfg.Providers.OddsAPI.APIKey)),
	)
}

func yesNo(key string) string {
	if strings.TrimSpace(key) != "" {
		return "YES"
	}
	return "NO"
}
