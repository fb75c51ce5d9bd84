// ipcheck validates, canonicalizes and range-checks IP addresses from the
// command line.
//
// Usage:
//
//	ipcheck check [--strict] <address>...
//	ipcheck fmt [--mode sanitized|short|long] [--caps] <address>...
//	ipcheck in [--config ranges.yaml] [--range CIDR]... <address>...
//
// The in command tests each address against the ranges given by --range
// flags plus any listed under the "ranges" key of the YAML config file.
//
// Exit codes:
//
//	0: every address was valid (check, fmt) or matched (in)
//	1: at least one address was invalid or unmatched
//	2: bad invocation (unknown flag, unreadable config)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/netparse/ipaddr"
)

var errNegative = errors.New("negative result")

var log = logrus.New()

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	err := newApp().Run(context.Background(), args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNegative):
		return 1
	}
	if coder, ok := err.(cli.ExitCoder); ok {
		return coder.ExitCode()
	}
	log.Error(err)
	return 2
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "ipcheck",
		Usage: "validate, canonicalize and range-check IP addresses",
		Commands: []*cli.Command{
			checkCommand(),
			fmtCommand(),
			inCommand(),
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every decision",
			},
		},
		Before: func(_ context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil, nil
		},
		// run maps exit codes itself; print ExitCoder messages here instead
		// of letting the default handler call os.Exit.
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "validate addresses and CIDR ranges",
		ArgsUsage: "<address>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "report the corrected text for inexact CIDR network addresses",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return cli.Exit("check: no addresses given", 2)
			}
			mode := ipaddr.CIDRAllow
			if cmd.Bool("strict") {
				mode = ipaddr.CIDRStrict
			}
			allValid := true
			for _, arg := range args {
				res := ipaddr.Check(arg, mode)
				switch res.Validity {
				case ipaddr.Valid:
					fmt.Printf("%s: valid\n", arg)
				case ipaddr.Corrected:
					fmt.Printf("%s: corrected to %s\n", arg, res.Corrected)
				default:
					fmt.Printf("%s: invalid\n", arg)
					allValid = false
				}
				log.WithFields(logrus.Fields{
					"input":    arg,
					"validity": res.Validity,
				}).Debug("checked")
			}
			if !allValid {
				return errNegative
			}
			return nil
		},
	}
}

func fmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "render addresses in a chosen notation",
		ArgsUsage: "<address>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "mode",
				Usage: "sanitized, short or long",
				Value: "sanitized",
			},
			&cli.BoolFlag{
				Name:  "caps",
				Usage: "uppercase the output",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return cli.Exit("fmt: no addresses given", 2)
			}
			opts, err := parseOptions(cmd.String("mode"), cmd.Bool("caps"))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			allValid := true
			for _, arg := range args {
				out, err := ipaddr.Format(arg, opts)
				if err != nil {
					fmt.Printf("%s: invalid\n", arg)
					allValid = false
					continue
				}
				fmt.Println(out)
			}
			if !allValid {
				return errNegative
			}
			return nil
		},
	}
}

func inCommand() *cli.Command {
	return &cli.Command{
		Name:      "in",
		Usage:     "test addresses for membership in configured ranges",
		ArgsUsage: "<address>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file with a top-level ranges list",
			},
			&cli.StringSliceFlag{
				Name:    "range",
				Aliases: []string{"r"},
				Usage:   "CIDR range to test against, repeatable",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return cli.Exit("in: no addresses given", 2)
			}
			ranges := cmd.StringSlice("range")
			if path := cmd.String("config"); path != "" {
				loaded, err := loadRanges(path)
				if err != nil {
					return cli.Exit(err.Error(), 2)
				}
				ranges = append(ranges, loaded...)
			}
			set := ipaddr.NewSet()
			for _, r := range ranges {
				if err := set.Insert(r); err != nil {
					return cli.Exit(fmt.Sprintf("bad range %q", r), 2)
				}
			}
			if set.Len() == 0 {
				return cli.Exit("in: no ranges given", 2)
			}
			allIn := true
			for _, arg := range args {
				hits, err := set.ContainingRanges(arg)
				if err != nil {
					fmt.Printf("%s: invalid\n", arg)
					allIn = false
					continue
				}
				if len(hits) == 0 {
					fmt.Printf("%s: no match\n", arg)
					allIn = false
					continue
				}
				fmt.Printf("%s: in %v\n", arg, hits)
				log.WithFields(logrus.Fields{
					"input":  arg,
					"ranges": hits,
				}).Debug("matched")
			}
			if !allIn {
				return errNegative
			}
			return nil
		},
	}
}

// loadRanges reads the "ranges" string list from a YAML config file.
func loadRanges(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return k.Strings("ranges"), nil
}

func parseOptions(mode string, caps bool) (ipaddr.Options, error) {
	opts := ipaddr.Options{Capitalize: caps}
	switch mode {
	case "sanitized", "":
		opts.Mode = ipaddr.ModeSanitized
	case "short":
		opts.Mode = ipaddr.ModeShort
	case "long":
		opts.Mode = ipaddr.ModeLong
	default:
		return opts, fmt.Errorf("unknown mode %q", mode)
	}
	return opts, nil
}
