// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/GoFolio/GoFolio/internal/config"
)

// MySQL builds the Data Source Name for the mysql driver.
func MySQL(cfg *config.Config) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
		cfg.DB.Extras,
	)

	return out
}

// Postgres builds the Data Source Name for the postgres driver.
func Postgres(cfg *config.Config) string {
	out := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
	)

	if cfg.DB.Extras != "" {
		out += " " + cfg.DB.Extras
	}

	return out
}

// SQLite returns the database file path for the sqlite driver.
func SQLite(cfg *config.Config) string {
	if cfg.DB.Path == "" {
		return "gofolio.db"
	}

	return cfg.DB.Path
}
