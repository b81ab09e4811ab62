package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-manager/config"
	"inventory-manager/internal/access"
	"inventory-manager/internal/hashing"
	"inventory-manager/internal/logger"
	"inventory-manager/internal/migrate"
	"inventory-manager/internal/repository"
	"inventory-manager/internal/service"
	"inventory-manager/internal/transport/httpapi"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()
	cfg := config.Load(log)
	ctx := context.Background()

	store := buildStorage(ctx, cfg, log)

	hasher := hashing.NewBcrypt(cfg.Admin.BcryptCost)
	secretHash := cfg.Admin.SecretHash
	if secretHash == "" {
		h, err := hasher.Hash(cfg.Admin.SecretPlain)
		if err != nil {
			log.Fatal("hash admin secret", zap.Error(err))
		}
		secretHash = h
	}
	gate := access.NewGate(secretHash, hasher)

	svc := service.NewInventoryService(store, gate)
	if err := svc.Initialize(ctx); err != nil {
		log.Fatal("load inventory", zap.Error(err))
	}
	log.Info("inventory loaded", zap.Int("items", len(svc.Items(ctx))))

	handler := httpapi.NewHandler(svc, gate, log)
	router := httpapi.NewRouter(handler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down inventory server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("Inventory server stopped gracefully")
}

func buildStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) service.Storage {
	switch cfg.Storage.Backend {
	case "memory":
		return repository.NewMemoryStore()
	case "file":
		return repository.NewFileStore(cfg.Storage.FilePath)
	case "redis":
		store, err := repository.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Fatal("connect redis", zap.Error(err))
		}
		return store
	case "postgres":
		db, err := repository.OpenPostgres(cfg.Storage.PostgresDSN)
		if err != nil {
			log.Fatal("connect postgres", zap.Error(err))
		}
		if err := migrate.MigrateInventoryDB(ctx, db, log, migrate.DefaultMigrateOptions()); err != nil {
			log.Fatal("migrate", zap.Error(err))
		}
		return repository.NewGormStore(db)
	case "sqlite":
		db, err := repository.OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatal("open sqlite", zap.Error(err))
		}
		if err := migrate.MigrateInventoryDB(ctx, db, log, migrate.DefaultMigrateOptions()); err != nil {
			log.Fatal("migrate", zap.Error(err))
		}
		return repository.NewGormStore(db)
	default:
		log.Fatal("unknown storage backend", zap.String("backend", cfg.Storage.Backend))
		return nil
	}
}
