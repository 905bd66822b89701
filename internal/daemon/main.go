// Package daemon wires configuration, the database, and the web service
// into a runnable process.
package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	return d.webService.Start()
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if err = gdb.AutoMigrate(
		&models.BlogPost{},
		&models.Repository{},
		&models.Contact{},
		&models.AdminSettings{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	seed(cfg, gdb)

	webService, err := web.New(cfg, gdb)
	if err != nil {
		return nil, errors.Wrap(err, "failed to init web service")
	}

	log.Info().
		Str("engine", cfg.DB.Engine).
		Int("port", cfg.Webserver.Port).
		Msg("daemon initialized")

	return &Daemon{webService: webService}, nil
}
