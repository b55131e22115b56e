package db

import (
	"fmt"

	"cdn_manager/internal/model"

	"gorm.io/gorm"
)

// Migrate runs database migrations for all models
func Migrate(db *gorm.DB) error {
	// List of all models to migrate
	models := []interface{}{
		&model.Origin{},
		&model.CacheRule{},
		&model.PurgeEvent{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}
