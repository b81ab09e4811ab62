package main

import (
	"context"
	"os"

	"inventory-manager/config"
	"inventory-manager/internal/logger"
	"inventory-manager/internal/migrate"
	"inventory-manager/internal/repository"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
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

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Storage.Backend {
	case "postgres":
		db, err = repository.OpenPostgres(cfg.Storage.PostgresDSN)
	case "sqlite":
		db, err = repository.OpenSQLite(cfg.Storage.SQLitePath)
	default:
		log.Fatal("storage backend has no schema to migrate", zap.String("backend", cfg.Storage.Backend))
	}
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}

	ctx := context.Background()
	if err := migrate.MigrateInventoryDB(ctx, db, log, migrate.DefaultMigrateOptions()); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	log.Info("migration finished")
}
