package commands

import (
	"context"
	"flag"
	"fmt"
)

var ColumnCmd = Column{
	command: command{
		credentials: DEFAULT_CREDENTIALS,
		tokens:      DEFAULT_WORKDIR,
		url:         "",
		worksheet:   "",
		debug:       false,
	},

	column: "A",
}

type Column struct {
	command
	column string
}

func (cmd *Column) Name() string {
	return "column"
}

func (cmd *Column) Description() string {
	return "Displays the values of a worksheet column, top to bottom"
}

func (cmd *Column) Usage() string {
	return "--credentials <file> --url <url> --worksheet <name> --column <letters>"
}

func (cmd *Column) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] column [options] --url <URL> --worksheet <name> --column <letters>\n", APP)
	fmt.Println()
	fmt.Println("  Displays the values of a worksheet column (header cell included), top to bottom")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s column --credentials "credentials.json" \`+"\n", APP)
	fmt.Println(`                          --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                          --worksheet "Sheet1" \`)
	fmt.Println(`                          --column "B"`)
	fmt.Println()
}

func (cmd *Column) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("column")

	flagset.StringVar(&cmd.column, "column", cmd.column, "Column letters e.g. 'A', 'B', 'AA'. Defaults to 'A'")

	return flagset
}

func (cmd *Column) Execute(args ...any) error {
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

	values, err := bridge.Column(ctx, cmd.worksheet, cmd.column)
	if err != nil {
		return err
	}

	if values == nil {
		return fmt.Errorf("no '%s' worksheet in spreadsheet", cmd.worksheet)
	}

	for _, v := range values {
		fmt.Println(v)
	}

	return nil
}
