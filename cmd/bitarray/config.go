package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hupe1980/bitarray"
	"github.com/hupe1980/bitarray/codec"
)

const configKey = "config"

type config struct {
	logger *bitarray.Logger
	codec  codec.Codec
}

// loadConfig builds the runtime configuration from flags and environment.
func loadConfig(c *cli.Context) (*config, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String(LogLevelFlag.Name))); err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", LogLevelFlag.Name, err)
	}

	var logger *bitarray.Logger
	switch strings.ToLower(c.String(LogFormatFlag.Name)) {
	case "text":
		logger = bitarray.NewTextLogger(c.App.ErrWriter, level)
	case "json":
		logger = bitarray.NewJSONLogger(c.App.ErrWriter, level)
	default:
		return nil, fmt.Errorf("invalid --%s %q: want text or json", LogFormatFlag.Name, c.String(LogFormatFlag.Name))
	}

	cd, ok := codec.ByName(c.String(CodecFlag.Name))
	if !ok {
		return nil, fmt.Errorf("invalid --%s %q: want one of %s",
			CodecFlag.Name, c.String(CodecFlag.Name), strings.Join(codec.Names(), ", "))
	}

	return &config{
		logger: logger,
		codec:  cd,
	}, nil
}

func setup(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata[configKey] = cfg
	return nil
}

func configFrom(c *cli.Context) *config {
	if cfg, ok := c.App.Metadata[configKey].(*config); ok {
		return cfg
	}
	return &config{logger: bitarray.NoopLogger(), codec: codec.Default}
}
