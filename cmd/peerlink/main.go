// Package main provides the peerlink CLI entrypoint.
//
// Usage:
//
//	peerlink <command> [options]
//
// Commands:
//   - ui: interactive transfer session (upload / download / share tabs)
//   - send: one-shot upload, prints the issued identifier
//   - receive: one-shot download keyed by an identifier
//   - version: version information
//
// Exit codes:
//   - 0: success
//   - 1: usage or configuration error
//   - 2: transfer failure
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/peerlink/cli/cmd"
	"github.com/pithecene-io/peerlink/types"
)

// Commit is set via ldflags at build time.
var commit = "unknown"

func main() {
	app := &cli.App{
		Name:           "peerlink",
		Usage:          "Ephemeral file sharing over plain HTTP",
		Version:        fmt.Sprintf("%s (commit: %s)", types.Version, commit),
		ExitErrHandler: exitErrHandler,
		Commands: []*cli.Command{
			cmd.UICommand(),
			cmd.SendCommand(),
			cmd.ReceiveCommand(),
			cmd.VersionCommand(commit),
		},
	}

	if err := app.Run(os.Args); err != nil {
		// ExitErrHandler already handled the exit for cli.ExitCoder errors.
		// This branch handles unexpected errors that weren't wrapped.
		os.Exit(1)
	}
}

// exitErrHandler handles errors from the CLI, preserving exit codes from
// cli.Exit() so transfer failures and usage errors stay distinguishable.
func exitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}

	// Check for ExitCoder (from cli.Exit), handles wrapped errors
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code := exitCoder.ExitCode()
		msg := exitCoder.Error()

		// cli.Exit("", N).Error() returns "exit status N", so skip those
		if msg != "" && msg != fmt.Sprintf("exit status %d", code) {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(code)
	}

	// Unexpected error - print and exit with code 1
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
