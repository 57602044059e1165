package app

import (
	"errors"
	"fmt"
)

// Mode selects which conversion an App performs.
type Mode int

const (
	// ModeTree converts a debugger transcript into the C node literal.
	ModeTree Mode = iota
	// ModeTable packs a C node literal into the noise point table.
	ModeTable
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeTree:
		return "tree"
	case ModeTable:
		return "table"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Output formats of the table conversion.
const (
	FormatText   = "text"
	FormatHeader = "header"
	FormatBinary = "binary"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Mode       Mode
	InputPath  string
	OutputPath string // empty writes to the App's output writer

	// LabelsPaths override the embedded biome label document.
	LabelsPaths []string

	// Tree mode.
	Dump       bool
	FixedWidth bool

	// Table mode.
	Format    string
	TableName string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}

	switch cfg.Mode {
	case ModeTree:
	case ModeTable:
		if cfg.Format == "" {
			cfg.Format = FormatText
		}
		switch cfg.Format {
		case FormatText, FormatBinary:
		case FormatHeader:
			if cfg.TableName == "" {
				return nil, errors.New("a table name is required for the header format")
			}
		default:
			return nil, fmt.Errorf("invalid format %q: must be %q, %q or %q", cfg.Format, FormatText, FormatHeader, FormatBinary)
		}
	default:
		return nil, fmt.Errorf("unknown mode %v", cfg.Mode)
	}

	return &cfg, nil
}
