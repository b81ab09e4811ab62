package migrate

import (
	"context"

	"inventory-manager/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateChecks  bool // non-negative quantity/price (postgres only)
	CreateIndexes bool // unique index on normalized sku
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateChecks:  true,
		CreateIndexes: true,
	}
}

// MigrateInventoryDB creates the items table and its constraints for the
// gorm backends (sqlite picks the unique index up from the model tags;
// postgres additionally gets CHECK constraints).
func MigrateInventoryDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("migrating inventory schema")

	if err := db.WithContext(ctx).AutoMigrate(&models.Item{}); err != nil {
		log.Error("AutoMigrate error", zap.Error(err))
		return err
	}

	if opt.CreateIndexes {
		if err := db.WithContext(ctx).Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS ux_items_sku ON items (sku);
`).Error; err != nil {
			log.Error("ux items sku", zap.Error(err))
			return err
		}
	}

	// sqlite cannot add table constraints after the fact
	if opt.CreateChecks && db.Dialector.Name() == "postgres" {
		if err := db.WithContext(ctx).Exec(`
ALTER TABLE items
	DROP CONSTRAINT IF EXISTS chk_items_non_negative,
	ADD CONSTRAINT chk_items_non_negative
	CHECK (quantity >= 0 AND price >= 0);
`).Error; err != nil {
			log.Error("chk items non negative", zap.Error(err))
			return err
		}
	}

	log.Info("inventory schema migrated")
	return nil
}
