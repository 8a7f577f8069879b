package commands

import (
	"context"
	"flag"
	"fmt"
)

var CellCmd = Cell{
	command: command{
		credentials: DEFAULT_CREDENTIALS,
		tokens:      DEFAULT_WORKDIR,
		url:         "",
		worksheet:   "",
		debug:       false,
	},

	cell: "A1",
}

type Cell struct {
	command
	cell string
}

func (cmd *Cell) Name() string {
	return "cell"
}

func (cmd *Cell) Description() string {
	return "Displays the value of a single worksheet cell"
}

func (cmd *Cell) Usage() string {
	return "--credentials <file> --url <url> --worksheet <name> --cell <reference>"
}

func (cmd *Cell) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] cell [options] --url <URL> --worksheet <name> --cell <reference>\n", APP)
	fmt.Println()
	fmt.Println("  Displays the raw value of a single worksheet cell")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s cell --credentials "credentials.json" \`+"\n", APP)
	fmt.Println(`                        --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                        --worksheet "Sheet1" \`)
	fmt.Println(`                        --cell "B7"`)
	fmt.Println()
}

func (cmd *Cell) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("cell")

	flagset.StringVar(&cmd.cell, "cell", cmd.cell, "Cell reference e.g. 'A1', 'B7'. Defaults to 'A1'")

	return flagset
}

func (cmd *Cell) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if err := cmd.validate(); err != nil {
		return err
	}

	ctx := context.Background()

	bridge, err := cmd.bridge(ctx)
	if err != nil {
		return err
	}

	value, found, err := bridge.Cell(ctx, cmd.worksheet, cmd.cell)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("no '%s' worksheet in spreadsheet", cmd.worksheet)
	}

	fmt.Println(value)

	return nil
}
