// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// EnvConfigJSON is the environment variable holding a JSON document merged over the TOML config.
const EnvConfigJSON = "INTERIOR_SITE_CONFIG_JSON"

const (
	defaultShutDownTime  = 5
	defaultUploadPrefix  = "/uploads"
	defaultAdminSecret   = "1111"
	defaultBodyLimitMB   = 16
	defaultHashMemoryKiB = 19 * 1024
	defaultHashIter      = 2
	defaultHashThreads   = 1
	invalidErrMessage    = "invalid config"
	defaultConfigDirPath = "./etc/"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = defaultConfigDirPath
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode json config override")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the daemon can not start without
// and fills in defaults for the optional ones.
func validate(c *Config) error {
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Upload.Dir == "" {
		return errors.Wrap(ErrEmptyUploadDir, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = EngineSQLite
	case EngineSQLite, EngineMySQL, EnginePostgres:
	default:
		return errors.Wrapf(ErrUnknownGormEngine, "%s: %q", invalidErrMessage, c.DB.GormEngine)
	}

	if c.DB.GormEngine == EngineSQLite && c.DB.Path == "" {
		return errors.Wrap(ErrEmptySQLitePath, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.BodyLimitMB == 0 {
		c.Webserver.BodyLimitMB = defaultBodyLimitMB
	}

	if c.Upload.URLPrefix == "" {
		c.Upload.URLPrefix = defaultUploadPrefix
	}

	if c.Admin.DefaultSecret == "" {
		c.Admin.DefaultSecret = defaultAdminSecret
	}

	if c.Admin.HashMemoryKiB == 0 {
		c.Admin.HashMemoryKiB = defaultHashMemoryKiB
	}

	if c.Admin.HashIterations == 0 {
		c.Admin.HashIterations = defaultHashIter
	}

	if c.Admin.HashParallelism == 0 {
		c.Admin.HashParallelism = defaultHashThreads
	}

	return nil
}
