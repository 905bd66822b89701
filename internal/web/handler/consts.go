package handler

const (
	// RouterRootPath is the root path of a route group.
	RouterRootPath = "/"

	// APIPath is the public API prefix.
	APIPath = "/api"

	// AdminAPIPath is the token guarded admin API prefix.
	AdminAPIPath = "/api/admin"

	// ErrNilACDMsg is used if the app, cfg or db pointer is nil.
	ErrNilACDMsg = "app, cfg or db is nil"
)
