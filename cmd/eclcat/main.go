package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/equinor/ecl3"
)

func main() {
	app := &cli.Command{
		Name:  "eclcat",
		Usage: "Dump a .SMSPEC/.UNSMRY pair as columns of text",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "spec",
				Aliases:  []string{"s"},
				Usage:    "path to the .SMSPEC file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "unsmry",
				Aliases:  []string{"u"},
				Usage:    "path to the .UNSMRY file",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "describe",
				Usage: "emit the column plan as YAML front-matter before the data",
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command) error {
	_ = ctx

	specPath := c.String("spec")
	unsmryPath := c.String("unsmry")

	specFile, err := os.Open(specPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: open spec %q: %v", specPath, err), 1)
	}
	defer func() { _ = specFile.Close() }()

	spec, err := ecl3.ReadSpec(specFile)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: read spec %q: %v", specPath, err), 1)
	}

	if c.Bool("describe") {
		if err := printDescribe(os.Stdout, spec); err != nil {
			return cli.Exit(fmt.Sprintf("error: describe: %v", err), 1)
		}
	}

	unsmryFile, err := os.Open(unsmryPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: open summary %q: %v", unsmryPath, err), 1)
	}
	defer func() { _ = unsmryFile.Close() }()

	if err := catRows(os.Stdout, unsmryFile, spec); err != nil {
		return cli.Exit(fmt.Sprintf("error: read summary %q: %v", unsmryPath, err), 1)
	}

	return nil
}
