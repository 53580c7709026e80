// Package config загружает настройки бота: сначала переменные окружения, затем флаги командной строки.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

type Config struct {
	Token        string        `env:"DISCORD_BOT_TOKEN"`
	GuildID      string        `env:"GUILD_ID"`
	StateFile    string        `env:"ARENA_STATE_FILE" envDefault:"Arena.txt"`
	DatabaseDSN  string        `env:"ARENA_DB_DSN"`
	HTTPAddr     string        `env:"ARENA_HTTP_ADDR" envDefault:":8080"`
	LogLevel     string        `env:"ARENA_LOG_LEVEL" envDefault:"info"`
	SyncGlobal   bool          `env:"ARENA_SYNC_GLOBAL_COMMANDS" envDefault:"false"`
	EventTimeout time.Duration `env:"ARENA_EVENT_TIMEOUT" envDefault:"30s"`
}

// Parse читает окружение и накладывает поверх него флаги из args.
// Токен принимается только из окружения.
func Parse(fs *pflag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.GuildID, "guild-id", cfg.GuildID, "Discord server id")
	fs.StringVar(&cfg.StateFile, "state-file", cfg.StateFile, "path to the JSON state file")
	fs.StringVar(&cfg.DatabaseDSN, "db-dsn", cfg.DatabaseDSN, "Postgres DSN; the state file is ignored when set")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "status server listen address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.SyncGlobal, "sync-global", cfg.SyncGlobal, "also register slash commands globally")
	fs.DurationVar(&cfg.EventTimeout, "event-timeout", cfg.EventTimeout, "timeout for handling a single chat event")

	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Token) == "" {
		errs = append(errs, errors.New("DISCORD_BOT_TOKEN is required"))
	}
	if strings.TrimSpace(c.GuildID) == "" {
		errs = append(errs, errors.New("GUILD_ID is required"))
	}
	if c.DatabaseDSN == "" && c.StateFile == "" {
		errs = append(errs, errors.New("either state file or database DSN must be set"))
	}
	if c.EventTimeout <= 0 {
		errs = append(errs, errors.New("event timeout must be positive"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel разбирает LogLevel в slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
