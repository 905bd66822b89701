// Package db opens the backing store selected by configuration and owns
// the connection pool settings.
package db

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/dsn"
)

// Supported values for config db.engine.
const (
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

// defaultMaxOpenConns caps the pool when db.maxopenconns is unset.
const defaultMaxOpenConns = 10

// ErrUnknownEngine is returned when config db.engine names no supported driver.
var ErrUnknownEngine = errors.New("unknown database engine")

// Open connects to the store selected by cfg.DB.Engine and applies the pool
// limits to the underlying sql.DB. The returned handle is process-lifetime
// and safe for concurrent use; callers pass it down by injection.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector

	switch cfg.DB.Engine {
	case EngineMySQL:
		dial = mysql.Open(dsn.MySQL(cfg))
	case EnginePostgres:
		dial = postgres.Open(dsn.Postgres(cfg))
	case EngineSQLite:
		dial = sqlite.Open(dsn.SQLite(cfg))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, cfg.DB.Engine)
	}

	gdb, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to connect database")
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to access underlying sql.DB")
	}

	maxOpen := cfg.DB.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)

	return gdb, nil
}

// Close releases the connection pool. Used at process exit only; the
// request-serving path never tears the pool down.
func Close(gdb *gorm.DB) error {
	if gdb == nil {
		return nil
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to access underlying sql.DB")
	}

	return sqlDB.Close() //nolint:wrapcheck
}

// Ping verifies store connectivity and reports the server version.
func Ping(gdb *gorm.DB) (string, error) {
	if gdb == nil {
		return "", errors.New("database connection is nil")
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return "", pkgerrors.Wrap(err, "failed to access underlying sql.DB")
	}

	if err := sqlDB.Ping(); err != nil {
		return "", pkgerrors.Wrap(err, "store unreachable")
	}

	var version string

	query := "SELECT version()"
	if gdb.Dialector.Name() == EngineSQLite {
		query = "SELECT sqlite_version()"
	}

	if err := gdb.Raw(query).Scan(&version).Error; err != nil {
		return "", pkgerrors.Wrap(err, "failed to read server version")
	}

	return version, nil
}
