package command

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pixil98/go-errors"
)

type Config struct {
	LogLevel string         `json:"log_level" env:"DUNGEON_LOG_LEVEL"`
	World    WorldConfig    `json:"world"`
	Storage  StorageConfig  `json:"storage"`
	Commands CommandsConfig `json:"commands"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if _, err := parseLogLevel(c.LogLevel); err != nil {
		el.Add(err)
	}

	el.Add(c.World.validate())
	el.Add(c.Storage.validate())
	el.Add(c.Commands.validate())

	return el.Err()
}

// applyEnv overrides file settings with DUNGEON_* environment variables.
// Unset variables leave the file value alone.
func (c *Config) applyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelWarn, nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

type CommandsConfig struct {
	AllocSize int `json:"alloc_size"`
}

func (c *CommandsConfig) validate() error {
	if c.AllocSize < 0 {
		return fmt.Errorf("alloc_size must not be negative")
	}
	return nil
}
