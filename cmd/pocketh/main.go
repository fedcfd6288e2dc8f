package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/luxfi/pocketh/pkg/config"
	"github.com/luxfi/pocketh/pkg/encoding"
	"github.com/luxfi/pocketh/pkg/logger"
)

const Version = "0.2.0"

// errNoMatch is returned by collide when the whole space was searched without
// a hit. It maps to exit status 2.
var errNoMatch = errors.New("no matching signature found")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		if errors.Is(err, errNoMatch) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "pocketh",
		Usage:   "Pocket-sized Ethereum toolbox",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json or cbor",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := config.InitViperConfig(); err != nil {
				return ctx, err
			}
			logger.Init(config.Environment(), c.Bool("debug") || config.Debug())
			return ctx, nil
		},
		Commands: []*cli.Command{
			accountCommand(),
			mnemonicCommand(),
			fromWeiCommand(),
			toWeiCommand(),
			toHexCommand(),
			toDecCommand(),
			keccakCommand(),
			selectorCommand(),
			collideCommand(),
			{
				Name:  "version",
				Usage: "Display version information",
				Action: func(ctx context.Context, c *cli.Command) error {
					_, err := fmt.Fprintf(c.Root().Writer, "pocketh version %s\n", Version)
					return err
				},
			},
		},
	}
}

// emit writes rec to the command's output in the selected format.
func emit(c *cli.Command, rec encoding.Record) error {
	name := c.String("format")
	if name == "" {
		name = config.OutputFormat()
	}
	format, err := encoding.ParseFormat(name)
	if err != nil {
		return err
	}
	return encoding.Write(c.Root().Writer, format, rec)
}

// requireArgs fails unless exactly n positional arguments were given.
func requireArgs(c *cli.Command, n int) error {
	if c.NArg() != n {
		return fmt.Errorf("%s: expected %d argument(s), got %d", c.Name, n, c.NArg())
	}
	return nil
}
