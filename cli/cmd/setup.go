package cmd

import (
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/peerlink/cli/config"
	"github.com/pithecene-io/peerlink/log"
)

// loadConfig loads the config file named by --config, or searches the
// default locations when the flag is absent. An explicit path that cannot
// be loaded is a usage error; a missing default file is not.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, cli.Exit(err.Error(), exitUsage)
		}
		return cfg, nil
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, cli.Exit(err.Error(), exitUsage)
	}
	return cfg, nil
}

// commandLogger builds the logger for a one-shot command invocation.
// Warn+ unless --verbose.
func commandLogger(c *cli.Context) *log.Logger {
	sessionID := uuid.NewString()
	if c.Bool("verbose") {
		return log.NewLogger(sessionID)
	}
	return log.NewQuietLogger(sessionID)
}
