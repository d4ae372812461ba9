package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrEmptyUploadDir error if config upload.dir is empty.
	ErrEmptyUploadDir = errors.New("toml config upload.dir can not be empty")

	// ErrUnknownGormEngine error if config db.gormEngine is not supported.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine must be sqlite, mysql or postgres")

	// ErrEmptySQLitePath error if the sqlite engine is used without db.path.
	ErrEmptySQLitePath = errors.New("toml config db.path can not be empty for sqlite")
)
