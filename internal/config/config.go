// Package config loads mealdb settings. Precedence, highest first: explicit
// flags bound by the CLI, MEALDB_* environment variables (an optional .env in
// the working directory is read first), the config file, then defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idilsaglam/mealdb/internal/mealdb"
	"github.com/idilsaglam/mealdb/internal/render"
)

const (
	KeyBaseURL          = "api.base-url"
	KeyTimeout          = "api.timeout"
	KeyDebounce         = "search.debounce"
	KeyCloseDelay       = "modal.close-delay"
	KeyPreviewLength    = "special.preview-length"
	KeyUTCOffset        = "greeting.utc-offset"
	KeyLocation         = "greeting.location"
	KeyStorePath        = "store.path"
	KeyStoreLockTimeout = "store.lock-timeout"
	KeyDebugLogFile     = "debug.log-file"
	KeyTheme            = "ui.theme"

	envPrefix     = "MEALDB"
	configDirName = ".mealdb"
	localConfig   = ".mealdb.yaml"
)

var v *viper.Viper

// Initialize builds a fresh viper instance. configFile overrides the search
// path when non-empty and must then exist.
func Initialize(configFile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	v = viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	registerDefaults()

	path := configFile
	if path == "" {
		path = findConfigFile()
	}
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func registerDefaults() {
	v.SetDefault(KeyBaseURL, mealdb.DefaultBaseURL)
	v.SetDefault(KeyTimeout, "0s")
	v.SetDefault(KeyDebounce, "500ms")
	v.SetDefault(KeyCloseDelay, "300ms")
	v.SetDefault(KeyPreviewLength, render.DefaultPreviewLength)
	v.SetDefault(KeyUTCOffset, render.DefaultUTCOffset.String())
	v.SetDefault(KeyLocation, render.DefaultLocation)
	v.SetDefault(KeyStorePath, "")
	v.SetDefault(KeyStoreLockTimeout, "5s")
	v.SetDefault(KeyDebugLogFile, "mealdb-debug.log")
	v.SetDefault(KeyTheme, "classic")
}

// findConfigFile prefers ./.mealdb.yaml, then ~/.mealdb/config.yaml.
func findConfigFile() string {
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, configDirName, "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// BindFlag lets a CLI flag override key when the flag is set.
func BindFlag(key string, flag *pflag.Flag) error {
	if v == nil {
		return errors.New("config not initialized")
	}
	return v.BindPFlag(key, flag)
}

// ConfigFileUsed returns the file that was read, or "".
func ConfigFileUsed() string {
	if v == nil {
		return ""
	}
	return v.ConfigFileUsed()
}

func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// AllSettings returns the effective settings as a nested map.
func AllSettings() map[string]any {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
