/*
Command styledump prints the computed styles of an HTML page.

	styledump [--user-css FILE]... [--prop NAME]... [--dot [--group PREFIX]...] [-w] URL|FILE

The page is loaded from a http(s) or file URL, or from a local path. For
every rendered node the actual values of the selected properties (all of
them if none are selected) are printed as a tree. With --dot a GraphViz
diagram of the styled tree is written instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/stylecore/dom/domdbg"
	"github.com/npillmayer/stylecore/engine"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
)

var errNoSource = errors.New("no page to load, URL or FILE expected")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:            "styledump",
		Usage:           "prints the computed CSS properties of an HTML page",
		ArgsUsage:       "URL|FILE",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "user-css", Aliases: []string{"u"}, Usage: "apply user stylesheet from `FILE` (may be repeated)"},
			&cli.StringSliceFlag{Name: "prop", Aliases: []string{"p"}, Usage: "print property `NAME` only (may be repeated)"},
			&cli.StringSliceFlag{Name: "group", Aliases: []string{"g"}, Usage: "with --dot, show property group `PREFIX` (may be repeated)"},
			&cli.BoolFlag{Name: "dot", Usage: "output a GraphViz diagram of the styled tree"},
			&cli.BoolFlag{Name: "warnings", Aliases: []string{"w"}, Usage: "report problems loading stylesheets on stderr"},
		},
		Action: run,
	}
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "styledump: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return errNoSource
	}
	var opts []engine.Option
	for _, file := range cmd.StringSlice("user-css") {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("unable to read user stylesheet: %w", err)
		}
		opts = append(opts, engine.WithUserStyleSheet(file, string(data)))
	}
	page, err := engine.Load(ctx, cmd.Args().First(), opts...)
	if err != nil {
		return err
	}
	if cmd.Bool("warnings") {
		for _, w := range multierr.Errors(page.Warnings) {
			fmt.Fprintf(os.Stderr, "warning: %v\n", w)
		}
	}
	return dump(os.Stdout, page, cmd)
}

func dump(w io.Writer, page *engine.Page, cmd *cli.Command) error {
	if cmd.Bool("dot") {
		groups := cmd.StringSlice("group")
		if len(groups) == 0 {
			groups = nil
		}
		return domdbg.ToGraphViz(page.RenderTree, w, groups)
	}
	return domdbg.Dump(page.RenderTree, w, cmd.StringSlice("prop")...)
}
