// Package cmd provides CLI commands for the peerlink binary.
package cmd

import "github.com/urfave/cli/v2"

// Exit codes.
const (
	exitSuccess  = 0
	exitUsage    = 1
	exitTransfer = 2
)

// Shared flags across commands.
var (
	// APIURLFlag overrides the backend base URL. Also settable via
	// PEERLINK_API_URL; flags win over the environment and the config file.
	APIURLFlag = &cli.StringFlag{
		Name:  "api-url",
		Usage: "Backend base URL (overrides config and PEERLINK_API_URL)",
	}

	// ConfigFlag points at an explicit config file. Without it the default
	// locations are searched and a missing file is tolerated.
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to peerlink.yaml",
	}

	// VerboseFlag enables debug logging on one-shot commands.
	VerboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Enable debug logging",
	}
)

// CommonFlags returns the flags shared by every command.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		APIURLFlag,
		ConfigFlag,
		VerboseFlag,
	}
}
