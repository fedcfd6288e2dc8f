package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/luxfi/pocketh/pkg/config"
	"github.com/luxfi/pocketh/pkg/logger"
	"github.com/luxfi/pocketh/pkg/search"
	"github.com/luxfi/pocketh/pkg/selector"
)

func collideCommand() *cli.Command {
	return &cli.Command{
		Name:  "collide",
		Usage: "Search for a function signature whose selector matches a target",
		UsageText: "pocketh collide --target 'transfer(address,uint256)' --prefix mint --args address,uint256\n" +
			"pocketh collide --selector 0xa9059cbb --prefix f --infix-len 5",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "target",
				Usage: "Signature whose selector is the target",
			},
			&cli.StringFlag{
				Name:  "selector",
				Usage: "Target selector as 8 hex digits, 0x optional",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "Function name prefix placed before the infix",
			},
			&cli.StringFlag{
				Name:  "args",
				Usage: "Comma-separated argument types, without parentheses",
			},
			&cli.IntFlag{
				Name:    "infix-len",
				Aliases: []string{"l"},
				Value:   config.DefaultInfixLength,
				Usage:   "Number of infix symbols",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Worker count (default: GOMAXPROCS)",
			},
			&cli.StringFlag{
				Name:  "alphabet",
				Value: search.DefaultSymbols,
				Usage: "Ordered infix symbols",
			},
			&cli.StringFlag{
				Name:  "tie-break",
				Value: search.LowestIndex.String(),
				Usage: "Winner policy when several infixes match: lowest or first",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Abort the search after this long (0 disables)",
			},
		},
		Action: collide,
	}
}

func collide(ctx context.Context, c *cli.Command) error {
	target, err := collideTarget(c)
	if err != nil {
		return err
	}

	cfg, err := config.LoadSearchConfig()
	if err != nil {
		return err
	}
	if c.IsSet("infix-len") {
		cfg.InfixLength = int(c.Int("infix-len"))
	}
	if c.IsSet("workers") {
		cfg.Workers = int(c.Int("workers"))
	}
	if c.IsSet("alphabet") {
		cfg.Alphabet = c.String("alphabet")
	}
	if c.IsSet("tie-break") {
		cfg.TieBreak = c.String("tie-break")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}

	alphabet, err := search.NewAlphabet(cfg.Alphabet)
	if err != nil {
		return err
	}
	tieBreak, err := search.ParseTieBreak(cfg.TieBreak)
	if err != nil {
		return err
	}
	query := search.Query{
		Target:   target,
		Prefix:   c.String("prefix"),
		Args:     c.String("args"),
		InfixLen: cfg.InfixLength,
		Alphabet: alphabet,
	}
	space, err := query.Space()
	if err != nil {
		return err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	coord := search.NewCoordinator(search.Config{Workers: cfg.Workers, TieBreak: tieBreak})
	runID := uuid.NewString()
	logger.Info("Starting selector search",
		"run", runID,
		"target", target.Hex(),
		"prefix", query.Prefix,
		"args", query.Args,
		"infix_len", query.InfixLen,
		"space", space,
		"workers", coord.Workers(),
		"tie_break", tieBreak.String(),
	)

	start := time.Now()
	out, err := coord.Search(ctx, query)
	logger.Info("Selector search finished",
		"run", runID,
		"status", out.Status.String(),
		"probes", out.Probes,
		"elapsed", time.Since(start).String(),
	)
	if err != nil {
		if errors.Is(err, search.ErrCanceled) {
			logger.Warn("Selector search interrupted", "run", runID, "probes", out.Probes)
		}
		return fmt.Errorf("search failed: %w", err)
	}

	if err := emit(c, newCollideRecord(target.Hex(), out)); err != nil {
		return err
	}
	if !out.Found() {
		return errNoMatch
	}
	return nil
}

// collideTarget resolves exactly one of --target and --selector.
func collideTarget(c *cli.Command) (selector.Selector, error) {
	given := lo.Filter([]string{"target", "selector"}, func(name string, _ int) bool {
		return c.String(name) != ""
	})
	switch len(given) {
	case 0:
		return selector.Selector{}, errors.New("one of --target or --selector is required")
	case 2:
		return selector.Selector{}, errors.New("--target and --selector are mutually exclusive")
	}
	if given[0] == "target" {
		return search.TargetFromSignature(c.String("target")), nil
	}
	return search.ParseTarget(c.String("selector"))
}
