package main

import (
	"github.com/urfave/cli/v2"
)

var (
	// LogLevelFlag sets the minimum slog level.
	LogLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Logging level (debug, info, warn, error)",
		Value:   "info",
		EnvVars: []string{"BITARRAY_LOG_LEVEL"},
	}
	// LogFormatFlag selects the slog handler.
	LogFormatFlag = &cli.StringFlag{
		Name:    "log-format",
		Usage:   "Log output format (text, json)",
		Value:   "text",
		EnvVars: []string{"BITARRAY_LOG_FORMAT"},
	}
	// CodecFlag selects the JSON codec for to-json and from-json.
	CodecFlag = &cli.StringFlag{
		Name:    "codec",
		Usage:   "JSON codec (json, go-json)",
		Value:   "go-json",
		EnvVars: []string{"BITARRAY_CODEC"},
	}

	offsetFlag = &cli.IntFlag{
		Name:  "offset",
		Usage: "Start position; negative counts from the end",
	}
	sizeFlag = &cli.IntFlag{
		Name:  "size",
		Usage: "Number of bits; negative stops before the end (default: to the end)",
	}
	byFlag = &cli.IntFlag{
		Name:  "by",
		Usage: "Shift amount; positive moves bits to higher indices",
		Value: 1,
	}
	circularFlag = &cli.BoolFlag{
		Name:  "circular",
		Usage: "Rotate instead of dropping bits",
	}
	fillFlag = &cli.BoolFlag{
		Name:  "fill",
		Usage: "Fill vacated positions with 1 (linear shift only)",
	}
	widthFlag = &cli.IntFlag{
		Name:     "width",
		Usage:    "Number of bits",
		Required: true,
	}
)

var appFlags = []cli.Flag{
	LogLevelFlag,
	LogFormatFlag,
	CodecFlag,
}
