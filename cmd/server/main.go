package main

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"

	"ShadeShop/internal/api"
	"ShadeShop/internal/auth"
	"ShadeShop/internal/cart"
	"ShadeShop/internal/catalog"
	"ShadeShop/internal/config"
	"ShadeShop/internal/user"
	"ShadeShop/pkg/kit"
)

const service = "shop"

func main() {
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	catalogStore, users, err := buildStores(cfg, log)
	if err != nil {
		log.Fatal("store init failed", zap.Error(err))
	}

	deps := api.Deps{
		Log:      log,
		Catalog:  catalogStore,
		Users:    users,
		Throttle: auth.NewThrottle(cfg.MaxLoginAttempts),
		Tokens:   auth.NewTokenRegistry(cfg.TokenTTL()),
		Carts:    cart.NewManager(catalogStore),
	}

	h := api.NewHandler(deps, api.HTTPDeps{
		Log:              log,
		Service:          service,
		Registry:         prometheus.NewRegistry(),
		MetricsEnabled:   cfg.MetricsEnabled,
		MetricsToken:     cfg.MetricsToken,
		LoginLimitPerMin: cfg.LoginLimitPerMin,
	})

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func buildStores(cfg config.Config, log *zap.Logger) (catalog.Store, user.Registry, error) {
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using postgres stores")
		return catalog.NewPostgresStore(db), user.NewPostgresRegistry(db), nil
	}

	store, err := catalog.LoadDir(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}

	registry, userCount, err := user.LoadFile(filepath.Join(cfg.DataDir, "users.json"))
	if err != nil {
		return nil, nil, err
	}

	brandCount, productCount := store.Counts()
	log.Info("seed data loaded",
		zap.Int("brands", brandCount),
		zap.Int("products", productCount),
		zap.Int("users", userCount),
	)

	return store, registry, nil
}
