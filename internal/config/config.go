// Package config resolves runtime settings from the environment and optional
// .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

const (
	EnvDB           = "SYNERCORE_DB"
	EnvHorizonWeeks = "SYNERCORE_HORIZON_WEEKS"
	EnvLogUseCases  = "SYNERCORE_LOG_USECASES"
	EnvColor        = "SYNERCORE_COLOR"
)

// ColorMode controls whether CLI output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// maxHorizonWeeks mirrors forecast.MaxHorizonWeeks without importing the
// engine into the config layer.
const maxHorizonWeeks = 52

type Config struct {
	DBPath       string
	HorizonWeeks int
	LogUseCases  bool
	Color        ColorMode
}

// DefaultConfig returns the settings used when nothing is configured.
// DBPath is left empty; Load fills it from the home directory.
func DefaultConfig() Config {
	return Config{
		HorizonWeeks: 8,
		LogUseCases:  false,
		Color:        ColorAuto,
	}
}

// Load reads configuration from the process environment, falling back to the
// given .env files for unset keys. Missing files are skipped; the process
// environment is never modified.
func Load(envFiles ...string) (Config, error) {
	fileVars := map[string]string{}
	for _, path := range envFiles {
		vars, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
		for k, v := range vars {
			if _, seen := fileVars[k]; !seen {
				fileVars[k] = v
			}
		}
	}
	return resolve(func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileVars[key]
	})
}

func resolve(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = getenv(EnvDB)
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".synercore", "synercore.db")
	}

	if v := getenv(EnvHorizonWeeks); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxHorizonWeeks {
			cfg.HorizonWeeks = n
		}
	}
	if v := getenv(EnvLogUseCases); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := getenv(EnvColor); v != "" {
		switch mode := ColorMode(strings.ToLower(strings.TrimSpace(v))); mode {
		case ColorAuto, ColorAlways, ColorNever:
			cfg.Color = mode
		}
	}

	return cfg, nil
}

// UseColor reports whether output written to fd should be styled.
func (c Config) UseColor(fd uintptr) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}
