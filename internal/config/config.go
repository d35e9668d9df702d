// Package config provides the configuration shared by the GUI and the command line tool.
//
// Values are read from environment variables. Directories default to the user's app directories.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/chasinglogic/appdirs"
)

const (
	AppName     = "emuprefs"
	logFileName = "emuprefs.log"
	dbFileName  = "emuprefs.sqlite"
)

// Config is the configuration of the app.
type Config struct {
	DataDir  string `env:"EMUPREFS_DATA_DIR"`
	LogDir   string `env:"EMUPREFS_LOG_DIR"`
	LogLevel string `env:"EMUPREFS_LOG_LEVEL" envDefault:"INFO"`
	Debug    bool   `env:"EMUPREFS_DEBUG"`
}

// Load returns the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	ad := appdirs.New(AppName)
	if cfg.DataDir == "" {
		cfg.DataDir = ad.UserData()
	}
	if cfg.LogDir == "" {
		cfg.LogDir = ad.UserLog()
	}
	return cfg, nil
}

// SlogLevel returns the log level. Unknown levels fall back to INFO.
func (c Config) SlogLevel() slog.Level {
	l, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseLogLevel returns the slog level for a level name like "debug".
func ParseLogLevel(s string) (slog.Level, error) {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(s)]
	if !ok {
		return 0, fmt.Errorf("unknown log level: %s", s)
	}
	return v, nil
}

// DBPath returns the path of the database file.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, dbFileName)
}

// InitDSN creates the data directory and returns the DSN of the database.
func (c Config) InitDSN() (string, error) {
	if err := os.MkdirAll(c.DataDir, os.ModePerm); err != nil {
		return "", err
	}
	return "file:" + c.DBPath(), nil
}

// InitLogFile creates the log directory and returns the path of the log file.
func (c Config) InitLogFile() (string, error) {
	if err := os.MkdirAll(c.LogDir, os.ModePerm); err != nil {
		return "", err
	}
	return filepath.Join(c.LogDir, logFileName), nil
}

// DeleteData deletes the data and log directories of the app.
// It returns the deleted paths.
func (c Config) DeleteData() ([]string, error) {
	var deleted []string
	for _, p := range []string{c.LogDir, c.DataDir} {
		if err := os.RemoveAll(p); err != nil {
			return deleted, err
		}
		deleted = append(deleted, p)
	}
	return deleted, nil
}
