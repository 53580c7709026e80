package config_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena-team-bot/internal/config"
)

func setRequired(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "token")
	t.Setenv("GUILD_ID", "42")
}

func TestParse_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Parse(pflag.NewFlagSet("test", pflag.ContinueOnError), nil)
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Token)
	assert.Equal(t, "42", cfg.GuildID)
	assert.Equal(t, "Arena.txt", cfg.StateFile)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.False(t, cfg.SyncGlobal)
	assert.Equal(t, 30*time.Second, cfg.EventTimeout)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestParse_FlagsOverrideEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("ARENA_STATE_FILE", "/data/env.json")
	t.Setenv("ARENA_LOG_LEVEL", "warn")

	cfg, err := config.Parse(pflag.NewFlagSet("test", pflag.ContinueOnError), []string{
		"--state-file", "/data/flag.json",
		"--sync-global",
		"--event-timeout", "5s",
	})
	require.NoError(t, err)

	assert.Equal(t, "/data/flag.json", cfg.StateFile)
	assert.True(t, cfg.SyncGlobal)
	assert.Equal(t, 5*time.Second, cfg.EventTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		wantErr string
	}{
		{
			name:    "Missing token",
			env:     map[string]string{"GUILD_ID": "42"},
			wantErr: "DISCORD_BOT_TOKEN is required",
		},
		{
			name:    "Missing guild",
			env:     map[string]string{"DISCORD_BOT_TOKEN": "token"},
			wantErr: "GUILD_ID is required",
		},
		{
			name:    "Bad log level",
			env:     map[string]string{"DISCORD_BOT_TOKEN": "token", "GUILD_ID": "42", "ARENA_LOG_LEVEL": "loud"},
			wantErr: `log level "loud"`,
		},
		{
			name:    "Bad env type",
			env:     map[string]string{"DISCORD_BOT_TOKEN": "token", "GUILD_ID": "42", "ARENA_SYNC_GLOBAL_COMMANDS": "maybe"},
			wantErr: "parse env",
		},
		{
			name:    "Unknown flag",
			env:     map[string]string{"DISCORD_BOT_TOKEN": "token", "GUILD_ID": "42"},
			args:    []string{"--token", "x"},
			wantErr: "unknown flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DISCORD_BOT_TOKEN", "")
			t.Setenv("GUILD_ID", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			fs.SetOutput(io.Discard)
			_, err := config.Parse(fs, tt.args)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
