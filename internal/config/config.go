// Package config собирает настройки сервиса из флагов, переменных окружения,
// .env и необязательного YAML-файла.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config: итоговая конфигурация сервиса.
type Config struct {
	Server struct {
		Addr            string        `mapstructure:"addr"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`

	Database struct {
		DSN     string `mapstructure:"dsn"`
		Migrate bool   `mapstructure:"migrate"`
	} `mapstructure:"database"`

	Redis struct {
		Addr     string `mapstructure:"addr"` // пусто: кэш отключён
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Cache struct {
		CalendarTTL time.Duration `mapstructure:"calendar_ttl"`
	} `mapstructure:"cache"`

	Log struct {
		Level  string `mapstructure:"level"`  // debug|info|warn|error
		Format string `mapstructure:"format"` // console|json
	} `mapstructure:"log"`

	HTTP struct {
		CORSOrigins []string `mapstructure:"cors_origins"`
	} `mapstructure:"http"`

	Pagination struct {
		PageSize int `mapstructure:"page_size"`
	} `mapstructure:"pagination"`
}

// Load читает конфигурацию. Приоритет: флаги, окружение, файл, значения по умолчанию.
// Ключ server.addr читается из SERVER_ADDR и т.п.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.migrate", true)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.calendar_ttl", time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("http.cors_origins", []string{"*"})
	v.SetDefault("pagination.page_size", 20)

	flags := pflag.NewFlagSet("maintenance-service", pflag.ContinueOnError)
	configFile := flags.String("config", os.Getenv("CONFIG_FILE"), "path to YAML config file")
	flags.String("addr", ":8080", "HTTP listen address")
	flags.String("log-level", "info", "log level")
	flags.Bool("migrate", true, "apply database migrations on start")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	for key, name := range map[string]string{
		"server.addr":      "addr",
		"log.level":        "log-level",
		"database.migrate": "migrate",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config read error: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет обязательные значения.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required (DATABASE_DSN)")
	}
	if c.Pagination.PageSize <= 0 || c.Pagination.PageSize > 100 {
		return fmt.Errorf("pagination.page_size must be in 1..100, got %d", c.Pagination.PageSize)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}
	return nil
}
