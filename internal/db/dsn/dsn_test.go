package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoFolio/GoFolio/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		DB: config.DB{
			Host:     "db.example.com",
			Port:     5432,
			User:     "folio",
			Password: "secret",
			Name:     "portfolio",
		},
	}
}

func TestMySQL(t *testing.T) {
	cfg := testConfig()
	cfg.DB.Port = 3306
	cfg.DB.Extras = "parseTime=True"

	assert.Equal(t,
		"folio:secret@tcp(db.example.com:3306)/portfolio?parseTime=True",
		MySQL(cfg),
	)
}

func TestPostgres(t *testing.T) {
	cfg := testConfig()

	assert.Equal(t,
		"host=db.example.com user=folio password=secret dbname=portfolio port=5432",
		Postgres(cfg),
	)

	cfg.DB.Extras = "sslmode=disable"
	assert.Equal(t,
		"host=db.example.com user=folio password=secret dbname=portfolio port=5432 sslmode=disable",
		Postgres(cfg),
	)
}

func TestSQLite(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, "gofolio.db", SQLite(cfg))

	cfg.DB.Path = "/var/lib/gofolio/data.db"
	assert.Equal(t, "/var/lib/gofolio/data.db", SQLite(cfg))
}
