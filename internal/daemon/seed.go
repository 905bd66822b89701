package daemon

import (
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/models"
)

func seed(cfg *config.Config, db *gorm.DB) {
	// Seed the settings row so the admin console always has something to load

	var count int64
	db.Model(&models.AdminSettings{}).Count(&count)
	if count == 0 {
		db.Create(
			&models.AdminSettings{
				ID:   models.AdminSettingsID,
				Name: cfg.Title,
			},
		)
	}
}
