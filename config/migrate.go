package config

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/srezaie/resto-board/models"
)

// RunMigrations brings the schema up to date without destroying data.
// AutoMigrate creates missing tables and adds missing columns; it
// never drops a column, table, or row. The backfills that follow give
// rows predating a column addition their documented defaults, and
// each carries a WHERE guard so re-running is a no-op and non-null
// values are never overwritten. Safe to run on every process start.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.MenuItem{}, &models.Customer{}, &models.Order{}); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	now := time.Now()
	backfills := []*gorm.DB{
		db.Model(&models.Customer{}).
			Where("created_at IS NULL").
			Update("created_at", now),
		db.Model(&models.MenuItem{}).
			Where("category IS NULL OR category = ''").
			Update("category", models.DefaultCategory),
		db.Model(&models.MenuItem{}).
			Where("is_available IS NULL").
			Update("is_available", true),
		db.Model(&models.Order{}).
			Where("created_at IS NULL").
			Update("created_at", now),
		db.Model(&models.Order{}).
			Where("status IS NULL OR status = ''").
			Update("status", models.DefaultOrderStatus),
		db.Model(&models.Order{}).
			Where("notes = ''").
			Update("notes", nil),
	}
	for _, res := range backfills {
		if res.Error != nil {
			return fmt.Errorf("column backfill failed: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			logrus.WithField("rows", res.RowsAffected).Info("Backfilled legacy rows during migration")
		}
	}

	logrus.Info("Database migration completed successfully")
	return nil
}
