// Package config loads run settings from an optional env file and the
// process environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/joho/godotenv"
)

// EnvPrefix marks the environment variables read into Settings.
const EnvPrefix = "XMLDOCRINSE_"

var (
	validate      = validator.New()
	schemaDecoder = schema.NewDecoder()
)

func init() {
	schemaDecoder.IgnoreUnknownKeys(true)
}

// Settings holds the tunables of a rinse run.
type Settings struct {
	LogLevel     string `schema:"log_level" validate:"oneof=debug info warn error"`
	LogFormat    string `schema:"log_format" validate:"oneof=text json"`
	BackupSuffix string `schema:"backup_suffix" validate:"required,startswith=."`
	// CacheSize bounds the rendered type name cache. Zero disables it.
	CacheSize int  `schema:"cache_size" validate:"gte=0,lte=1048576"`
	DryRun    bool `schema:"dry_run"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	return Settings{
		LogLevel:     "info",
		LogFormat:    "text",
		BackupSuffix: ".backup",
		CacheSize:    1024,
	}
}

// Load layers envFile (if non-empty) and then environ over Defaults.
// Only XMLDOCRINSE_-prefixed keys are considered; the prefix is stripped and
// the remainder lowercased, so XMLDOCRINSE_LOG_LEVEL sets LogLevel.
func Load(envFile string, environ []string) (Settings, error) {
	values := make(map[string][]string)

	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil {
			return Settings{}, fmt.Errorf("read env file %s: %w", envFile, err)
		}
		for k, v := range fileVars {
			addValue(values, k, v)
		}
	}
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		addValue(values, k, v)
	}

	s := Defaults()
	if err := schemaDecoder.Decode(&s, values); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func addValue(values map[string][]string, key, value string) {
	if !strings.HasPrefix(key, EnvPrefix) {
		return
	}
	name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if name == "" {
		return
	}
	values[name] = []string{value}
}

// Validate checks every field against its constraints. The returned error
// wraps validator.ValidationErrors.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// Level maps LogLevel to a slog level, defaulting to info.
func (s Settings) Level() slog.Level {
	switch s.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger builds a logger writing to w in the configured format and level.
func (s Settings) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: s.Level()}
	if s.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
