/*
Package cli implements the ai-finder commands.

Every command builds an App, a small dependency bundle holding the loaded
configuration, the agent catalog, the match engine, and the stores backed by
the local SQLite database. Commands that only read the catalog still go
through the App so storage failures degrade the same way everywhere.
*/
package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aifinder/ai-finder/internal/catalog"
	"github.com/aifinder/ai-finder/internal/config"
	"github.com/aifinder/ai-finder/internal/history"
	"github.com/aifinder/ai-finder/internal/match"
	"github.com/aifinder/ai-finder/internal/ratelimit"
	"github.com/aifinder/ai-finder/internal/storage"
	"github.com/aifinder/ai-finder/internal/userdata"
)

// App bundles the dependencies shared by all commands.
type App struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Engine   *match.Engine
	History  *history.Store
	Limiter  *ratelimit.Limiter
	UserData *userdata.Store

	kv     storage.Store
	logger *zap.Logger
}

// newApp loads configuration and opens the local store. A store that cannot
// be opened degrades to dropped writes rather than failing the command.
func newApp(cfgPath string) (*App, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	logger := newLogger()

	var kv storage.Store
	sqlStore := storage.NewSQLiteStore(cfg.DataDir, logger)
	if err := sqlStore.Init(); err != nil {
		logger.Warn("local store unavailable, continuing without persistence",
			zap.String("data_dir", cfg.DataDir), zap.Error(err))
	}
	kv = sqlStore

	c := catalog.Default()
	return &App{
		Config:   cfg,
		Catalog:  c,
		Engine:   match.NewEngineWithLimit(c, cfg.MaxResults),
		History:  history.NewStoreWithLimit(kv, cfg.HistoryLimit),
		Limiter:  ratelimit.New(kv),
		UserData: userdata.NewStore(kv),
		kv:       kv,
		logger:   logger,
	}, nil
}

// newLogger builds a stderr logger that stays quiet unless something is
// wrong, so command output remains clean for piping.
func newLogger() *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := zapCfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// Close releases the store and flushes the logger.
func (a *App) Close() {
	if err := a.kv.Close(); err != nil {
		a.logger.Warn("failed to close store", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// checkLimit enforces a per-action limit plus the daily cap, recording the
// request when allowed. Disabled entirely via rate_limit_enabled=false.
func (a *App) checkLimit(action ratelimit.Action) error {
	if !a.Config.RateLimitEnabled {
		return nil
	}

	for _, act := range []ratelimit.Action{action, ratelimit.ActionDaily} {
		if res := a.Limiter.Check(act); !res.Allowed {
			return fmt.Errorf("%s", res.Message)
		}
	}
	a.Limiter.Record(action)
	a.Limiter.Record(ratelimit.ActionDaily)
	return nil
}
