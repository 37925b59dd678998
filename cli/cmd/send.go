package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/peerlink/iox"
	"github.com/pithecene-io/peerlink/platform"
	"github.com/pithecene-io/peerlink/session"
	"github.com/pithecene-io/peerlink/transfer"
)

// SendCommand returns the send command: a one-shot upload that prints the
// issued identifier.
func SendCommand() *cli.Command {
	return &cli.Command{
		Name:      "send",
		Usage:     "Upload a file and print the issued identifier",
		ArgsUsage: "<file>",
		Flags: append(CommonFlags(),
			&cli.BoolFlag{
				Name:  "copy",
				Usage: "Copy the identifier to the clipboard",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Print only the identifier",
			},
		),
		Action: sendAction,
	}
}

func sendAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("send requires exactly one file argument", exitUsage)
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := commandLogger(c)
	defer iox.DiscardErr(logger.Sync)
	sugar := logger.Sugar()

	path := c.Args().First()
	f, err := os.Open(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("cannot open %s: %v", path, err), exitUsage)
	}
	defer iox.DiscardClose(f)

	client := transfer.NewClient(cfg.ResolveAPIURL(c.String("api-url")))
	defer iox.DiscardClose(client)

	sugar.Infof("uploading %s to %s", path, client.BaseURL())
	id, err := client.Upload(c.Context, filepath.Base(path), f)
	if err != nil {
		return cli.Exit(session.FailureMessage("upload", err), exitTransfer)
	}

	if c.Bool("quiet") {
		fmt.Println(id)
	} else {
		fmt.Printf("File uploaded. Share this identifier with your peer:\n%s\n", id)
	}

	if c.Bool("copy") || cfg.CopyOnSend {
		if err := platform.WriteClipboard(id); err != nil {
			// Best-effort: the identifier is already printed.
			sugar.Warnf("clipboard write failed: %v", err)
		} else if !c.Bool("quiet") {
			fmt.Println("Identifier copied to clipboard.")
		}
	}
	return nil
}
