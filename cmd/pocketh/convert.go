package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/luxfi/pocketh/pkg/selector"
	"github.com/luxfi/pocketh/pkg/units"
)

func unitFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "unit",
		Aliases: []string{"u"},
		Value:   units.Ether.Name,
		Usage:   "Denomination: wei, gwei, eth or ether",
	}
}

func fromWeiCommand() *cli.Command {
	return &cli.Command{
		Name:      "from-wei",
		Usage:     "Convert an amount of wei to a larger unit",
		ArgsUsage: "VALUE",
		Flags:     []cli.Flag{unitFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			in := c.Args().First()
			v, err := units.ParseInt(in)
			if err != nil {
				return err
			}
			unit := units.ParseUnit(c.String("unit"))
			return emit(c, conversionRecord{Input: in, Output: units.FromWei(v, unit), Unit: unit.Name})
		},
	}
}

func toWeiCommand() *cli.Command {
	return &cli.Command{
		Name:      "to-wei",
		Usage:     "Convert an amount in a larger unit to wei",
		ArgsUsage: "VALUE",
		Flags:     []cli.Flag{unitFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			in := c.Args().First()
			unit := units.ParseUnit(c.String("unit"))
			v, err := units.ToWei(in, unit)
			if err != nil {
				return err
			}
			return emit(c, conversionRecord{Input: in, Output: v.Dec(), Unit: unit.Name})
		},
	}
}

func toHexCommand() *cli.Command {
	return &cli.Command{
		Name:      "to-hex",
		Usage:     "Convert a decimal integer to hex",
		ArgsUsage: "DECIMAL",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			in := c.Args().First()
			out, err := units.ToHex(in)
			if err != nil {
				return err
			}
			return emit(c, conversionRecord{Input: in, Output: out})
		},
	}
}

func toDecCommand() *cli.Command {
	return &cli.Command{
		Name:      "to-dec",
		Usage:     "Convert a hex integer to decimal",
		ArgsUsage: "HEX",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			in := c.Args().First()
			out, err := units.ToDecimal(in)
			if err != nil {
				return err
			}
			return emit(c, conversionRecord{Input: in, Output: out})
		},
	}
}

func keccakCommand() *cli.Command {
	return &cli.Command{
		Name:      "keccak",
		Usage:     "Hash text (or hex bytes with --hex) with keccak256",
		ArgsUsage: "INPUT",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "hex",
				Usage: "Treat INPUT as 0x-prefixed hex bytes",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			in := c.Args().First()
			data := []byte(in)
			if c.Bool("hex") {
				raw := strings.TrimPrefix(strings.TrimPrefix(in, "0x"), "0X")
				var err error
				if data, err = hex.DecodeString(raw); err != nil {
					return fmt.Errorf("invalid hex input: %w", err)
				}
			}
			return emit(c, hashRecord{Input: in, Hash: "0x" + hex.EncodeToString(selector.Keccak256(data))})
		},
	}
}

func selectorCommand() *cli.Command {
	return &cli.Command{
		Name:      "selector",
		Usage:     "Print the 4-byte selector of each function signature",
		ArgsUsage: "SIGNATURE...",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() == 0 {
				return fmt.Errorf("%s: expected at least one signature", c.Name)
			}
			for _, sig := range c.Args().Slice() {
				if err := emit(c, selectorRecord{Signature: sig, Selector: selector.Of(sig).Hex()}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
