// Package envcfg provides environment variable loading and typed lookups
package envcfg

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dperussina/code-library/pkg/errors"
	"github.com/dperussina/code-library/pkg/logger"
)

// LoadDotenv loads environment variables from a .env file. A missing file
// is logged and reported as a typed NotFound error so callers can ignore it.
func LoadDotenv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Warn("dotenv file not found", zap.String("path", path))
		return errors.Newf(errors.ErrorTypeNotFound, "dotenv file not found: %s", path)
	}

	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, errors.ErrorTypeParse, "failed to load %s", path)
	}

	logger.Info("environment variables loaded", zap.String("path", path))
	return nil
}

// String returns the environment variable's value, or def when unset.
func String(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// Int returns the environment variable parsed as int, or def when unset
// or unparseable.
func Int(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Bool returns the environment variable parsed as bool, or def when unset
// or unparseable.
func Bool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Duration returns the environment variable parsed as a time.Duration,
// or def when unset or unparseable.
func Duration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// Loader binds configuration keys to environment variables with defaults,
// backed by viper. Keys are upper-cased and prefixed on lookup, so with
// prefix "APP" the key "batch_size" reads APP_BATCH_SIZE.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with the given environment prefix.
func NewLoader(prefix string) *Loader {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()
	return &Loader{v: v}
}

// SetDefault registers a default value for a key.
func (l *Loader) SetDefault(key string, value interface{}) {
	l.v.SetDefault(key, value)
}

// GetString returns the string value for a key.
func (l *Loader) GetString(key string) string { return l.v.GetString(key) }

// GetInt returns the int value for a key.
func (l *Loader) GetInt(key string) int { return l.v.GetInt(key) }

// GetBool returns the bool value for a key.
func (l *Loader) GetBool(key string) bool { return l.v.GetBool(key) }

// GetDuration returns the duration value for a key.
func (l *Loader) GetDuration(key string) time.Duration { return l.v.GetDuration(key) }
