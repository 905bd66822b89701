package config

// DB holds the database configuration settings.
type DB struct {
	Engine       string // mysql, postgres or sqlite
	Extras       string
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	Path         string // database file path, sqlite only
	MaxOpenConns int    // connection pool size, 0 means the default of 10
}
