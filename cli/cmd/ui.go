package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/peerlink/cli/tui"
	"github.com/pithecene-io/peerlink/iox"
	"github.com/pithecene-io/peerlink/log"
	"github.com/pithecene-io/peerlink/transfer"
)

// UICommand returns the ui command: the interactive transfer session.
func UICommand() *cli.Command {
	return &cli.Command{
		Name:   "ui",
		Usage:  "Open the interactive transfer session",
		Flags:  CommonFlags(),
		Action: uiAction,
	}
}

func uiAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so log entries go to a file instead of
	// stderr.
	logger, closeLog, err := tuiLogger()
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	defer closeLog()
	defer iox.DiscardErr(logger.Sync)

	client := transfer.NewClient(cfg.ResolveAPIURL(c.String("api-url")))
	defer iox.DiscardClose(client)

	return tui.Run(tui.Options{
		Client:      client,
		DownloadDir: cfg.ResolveDownloadDir(""),
		SharePhrase: cfg.Share.Phrase,
		Logger:      logger.Sugar(),
	})
}

// tuiLogger builds a file-backed logger under the user cache directory.
func tuiLogger() (*log.Logger, func(), error) {
	sessionID := uuid.NewString()
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// No cache dir: log to a discarded writer rather than corrupt the
		// alternate screen.
		devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log sink: %w", err)
		}
		return log.NewLogger(sessionID).WithOutput(devNull), func() { _ = devNull.Close() }, nil
	}

	dir := filepath.Join(cacheDir, "peerlink")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "peerlink.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewLogger(sessionID).WithOutput(f), func() { _ = f.Close() }, nil
}
