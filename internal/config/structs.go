package config

import (
	"github.com/interior-site/interior-site/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Upload    Upload
	Admin     Admin
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
	BodyLimitMB    int    // max request body size, bounds uploads
	DistDir        string // built client assets served under /static, embedded assets if empty
}

// Upload holds the asset intake settings.
type Upload struct {
	Dir       string // directory the uploaded files are written to
	URLPrefix string // public path the directory is served under
}

// Admin holds the settings of the write guard.
type Admin struct {
	// DefaultSecret initialises the guard secret on first start only.
	DefaultSecret string

	// argon2id cost of the stored secret hash, paid by every rejected guarded request.
	HashMemoryKiB   uint32
	HashIterations  uint32
	HashParallelism uint8
}
