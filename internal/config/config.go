package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvMaze      = "MAZERUNNER_MAZE"
	EnvOrder     = "MAZERUNNER_ORDER"
	EnvTheme     = "MAZERUNNER_THEME"
	EnvNoColor   = "MAZERUNNER_NO_COLOR"
	EnvLogLevel  = "MAZERUNNER_LOG_LEVEL"
	EnvLogFormat = "MAZERUNNER_LOG_FORMAT"
)

// Config holds the run settings before command-line flags are applied.
type Config struct {
	Maze      string // layout file; empty runs the embedded demo maze
	Order     string // relative or fixed
	Theme     string // blocks or ascii
	NoColor   bool
	LogLevel  string
	LogFormat string
}

// Load reads the optional env files (".env" when none are named) and then
// the process environment. Variables already set win over file values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load env file: %w", err)
		}
		slog.Debug("config.envfile.missing", "err", err)
	}

	noColor, err := getEnvAsBool(EnvNoColor, false)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Maze:      getEnvWithDefault(EnvMaze, ""),
		Order:     getEnvWithDefault(EnvOrder, "relative"),
		Theme:     getEnvWithDefault(EnvTheme, "blocks"),
		NoColor:   noColor,
		LogLevel:  getEnvWithDefault(EnvLogLevel, "info"),
		LogFormat: getEnvWithDefault(EnvLogFormat, "text"),
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("config: %s must be a boolean: %w", key, err)
	}
	return b, nil
}
