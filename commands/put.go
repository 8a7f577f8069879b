package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/atseira/gsheets2dataframe/table"
)

var PutCmd = Put{
	command: command{
		credentials: DEFAULT_CREDENTIALS,
		tokens:      DEFAULT_WORKDIR,
		url:         "",
		worksheet:   "",
		debug:       false,
	},

	file: "",
}

type Put struct {
	command
	file string
}

func (cmd *Put) Name() string {
	return "put"
}

func (cmd *Put) Description() string {
	return "Uploads a TSV file to a Google Sheets worksheet"
}

func (cmd *Put) Usage() string {
	return "--credentials <file> --url <url> --worksheet <name> --file <file>"
}

func (cmd *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] put [options] --url <URL> --worksheet <name> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Uploads a TSV file to a Google Sheets worksheet. The worksheet is created if it")
	fmt.Println("  does not exist, initialised from the file if it is empty and appended to (data")
	fmt.Println("  rows only) if it already has content")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s put --credentials "credentials.json" \`+"\n", APP)
	fmt.Println(`                       --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                       --worksheet "Sheet1" \`)
	fmt.Println(`                       --file "example.tsv"`)
	fmt.Println()
}

func (cmd *Put) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("put")

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file")

	return flagset
}

func (cmd *Put) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if err := cmd.validate(); err != nil {
		return err
	}

	if cmd.file == "" {
		return fmt.Errorf("--file is a required option")
	}

	f, err := os.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	tbl, err := table.FromTSV(f)
	if err != nil {
		return fmt.Errorf("invalid TSV file (%v)", err)
	}

	ctx := context.Background()

	bridge, err := cmd.bridge(ctx)
	if err != nil {
		return err
	}

	if err := bridge.WriteTable(ctx, tbl, cmd.worksheet); err != nil {
		return err
	}

	infof("Uploaded TSV file %v to worksheet '%s'", cmd.file, cmd.worksheet)

	return nil
}
