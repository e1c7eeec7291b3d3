package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"club-site/internal/model"
	"club-site/internal/repository"
	"club-site/internal/sourcebuilder"
)

const envConfigPrefix = "$env:"

const (
	renderModeInline   = "inline"
	renderModeDeferred = "deferred"
)

type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type LoggerConfig struct {
	Level string
}

type RenderConfig struct {
	Mode     string
	Timezone string
}

type SourceConfig struct {
	Type         string
	FetchTimeout time.Duration
	SeedFile     string
	MaxConns     int32
}

type Config struct {
	HTTP     HTTPConfig
	Logger   LoggerConfig
	Render   RenderConfig
	Source   SourceConfig
	Supabase repository.SupabaseConfig
	Postgres repository.PostgresConfig
	Site     model.Site
}

// Переменные окружения, которые читаются без файла конфигурации.
var envBindings = map[string]string{
	"http.addr":           "HTTP_ADDR",
	"http.allowedOrigins": "HTTP_ALLOWED_ORIGINS",
	"logger.level":        "LOG_LEVEL",
	"render.mode":         "RENDER_MODE",
	"render.timezone":     "RENDER_TIMEZONE",
	"source.type":         "SOURCE_TYPE",
	"source.fetchTimeout": "SOURCE_FETCH_TIMEOUT",
	"source.seedFile":     "SEED_FILE",
	"supabase.url":        "SUPABASE_URL",
	"supabase.anonKey":    "SUPABASE_ANON_KEY",
	"postgres.dsn":        "DB_DSN",
}

// NewConfig читает конфигурацию: значения по умолчанию, необязательный YAML-файл и окружение.
// Значение вида "$env:NAME" в файле связывает ключ с переменной окружения NAME.
func NewConfig(configFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.readTimeout", "10s")
	v.SetDefault("http.shutdownTimeout", "5s")
	v.SetDefault("http.allowedOrigins", []string{"*"})
	v.SetDefault("logger.level", "INFO")
	v.SetDefault("render.mode", renderModeInline)
	v.SetDefault("render.timezone", "UTC")
	v.SetDefault("source.type", sourcebuilder.TypeSupabase)
	v.SetDefault("source.fetchTimeout", "10s")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %q: %w", configFile, err)
		}
	}

	for _, key := range v.AllKeys() {
		env := v.GetString(key)
		if strings.HasPrefix(env, envConfigPrefix) {
			name := env[len(envConfigPrefix):]
			if err := v.BindEnv(key, name); err != nil {
				return Config{}, fmt.Errorf("failed to prepare config: %w", err)
			}
			// Иначе значением ключа останется сама строка "$env:NAME".
			if _, ok := os.LookupEnv(name); !ok {
				v.Set(key, "")
			}
		}
	}

	config := Config{Site: model.DefaultSite()}
	// Списки из файла должны заменять значения по умолчанию целиком, а не поэлементно.
	defaults := config.Site
	config.Site.About, config.Site.Social = nil, nil

	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	if len(config.Site.About) == 0 {
		config.Site.About = defaults.About
	}
	if len(config.Site.Social) == 0 {
		config.Site.Social = defaults.Social
	}
	config.Postgres.MaxConns = config.Source.MaxConns

	if err := config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) validate() error {
	switch c.Render.Mode {
	case renderModeInline, renderModeDeferred:
	default:
		return fmt.Errorf("invalid render.mode %q: want %s or %s", c.Render.Mode, renderModeInline, renderModeDeferred)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// LogLevel разбирает logger.level (DEBUG, INFO, WARN, ERROR).
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logger.Level)); err != nil {
		return 0, fmt.Errorf("invalid logger.level %q: %w", c.Logger.Level, err)
	}
	return level, nil
}

// Location возвращает часовой пояс для отображения дат событий.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Render.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid render.timezone %q: %w", c.Render.Timezone, err)
	}
	return loc, nil
}

func (c Config) Deferred() bool {
	return c.Render.Mode == renderModeDeferred
}

func (c Config) SourceBuilder() sourcebuilder.Config {
	return sourcebuilder.Config{
		Type:         c.Source.Type,
		FetchTimeout: c.Source.FetchTimeout,
		Supabase:     c.Supabase,
		Postgres:     c.Postgres,
		Memory:       repository.MemoryConfig{SeedFile: c.Source.SeedFile},
	}
}
