package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/peerlink/iox"
	"github.com/pithecene-io/peerlink/platform"
	"github.com/pithecene-io/peerlink/session"
	"github.com/pithecene-io/peerlink/transfer"
)

// ReceiveCommand returns the receive command: a one-shot download keyed by
// a transfer identifier.
func ReceiveCommand() *cli.Command {
	return &cli.Command{
		Name:      "receive",
		Usage:     "Download the file for an identifier",
		ArgsUsage: "<identifier>",
		Flags: append(CommonFlags(),
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Directory to save into (default: config or working dir)",
			},
		),
		Action: receiveAction,
	}
}

func receiveAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("receive requires exactly one identifier argument", exitUsage)
	}
	id := strings.TrimSpace(c.Args().First())
	if id == "" {
		return cli.Exit("identifier must not be empty", exitUsage)
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := commandLogger(c)
	defer iox.DiscardErr(logger.Sync)
	sugar := logger.Sugar()

	client := transfer.NewClient(cfg.ResolveAPIURL(c.String("api-url")))
	defer iox.DiscardClose(client)

	sugar.Infof("downloading %s from %s", id, client.BaseURL())
	payload, err := client.Download(c.Context, id)
	if err != nil {
		return cli.Exit(session.FailureMessage("download", err), exitTransfer)
	}

	dir := cfg.ResolveDownloadDir(c.String("dir"))
	path, err := platform.SaveFile(dir, payload.Filename, payload.Data)
	if err != nil {
		return cli.Exit(fmt.Sprintf("could not save file: %v", err), exitTransfer)
	}

	fmt.Printf("Saved %s (%d bytes)\n", path, len(payload.Data))
	return nil
}
