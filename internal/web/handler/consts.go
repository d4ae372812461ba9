package handler

const (
	// RouterRootPath is the root path of a route group.
	RouterRootPath = "/"

	// RouterIDPath addresses a single row of a route group.
	RouterIDPath = "/:id"

	// APIPath is the prefix of the JSON API.
	APIPath = "/api"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
