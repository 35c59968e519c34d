// Package cmdutil wires up the shared dependencies of the pathdsl
// commands: configuration from the environment, a logger and the UI.
package cmdutil

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/cli"
	"github.com/pkg/errors"

	"github.com/pathdsl/pathdsl/internal/ui"
)

// Config is read from PATHDSL_* environment variables.
type Config struct {
	LogLevel string `default:"warn" split_words:"true"`
	NoColor  bool   `split_words:"true"`
}

// Helper carries the dependencies every command needs.
type Helper struct {
	Version string
	Config  *Config
	Logger  hclog.Logger
	UI      *cli.ColoredUi
}

// NewHelper reads the environment and builds the shared Helper.
func NewHelper(version string) (*Helper, error) {
	cfg := &Config{}
	if err := envconfig.Process("PATHDSL", cfg); err != nil {
		return nil, errors.Wrap(err, "invalid environment variable")
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "pathdsl",
		Level: hclog.LevelFromString(cfg.LogLevel),
	})

	return &Helper{
		Version: version,
		Config:  cfg,
		Logger:  logger,
		UI:      ui.Default(cfg.NoColor),
	}, nil
}

// LogError logs an error and outputs it to the UI.
func (h *Helper) LogError(prefix string, err error) {
	h.Logger.Error(prefix, "error", err)

	if prefix != "" {
		prefix += ": "
	}

	h.UI.Error(fmt.Sprintf("%s %s%s", ui.ErrorPrefix, prefix, color.RedString("%v", err)))
}
