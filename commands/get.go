package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

var GetCmd = Get{
	command: command{
		credentials: DEFAULT_CREDENTIALS,
		tokens:      DEFAULT_WORKDIR,
		url:         "",
		worksheet:   "",
		debug:       false,
	},

	file: time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	command
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Downloads a Google Sheets worksheet to a TSV file"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --url <url> --worksheet <name> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL> --worksheet <name> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a Google Sheets worksheet to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s get --credentials "credentials.json" \`+"\n", APP)
	fmt.Println(`                       --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                       --worksheet "Sheet1" \`)
	fmt.Println(`                       --file "example.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
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

	tbl, err := bridge.ReadTable(ctx, cmd.worksheet)
	if err != nil {
		return fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	if tbl == nil {
		return fmt.Errorf("no '%s' worksheet in spreadsheet", cmd.worksheet)
	}

	tmp, err := os.CreateTemp(os.TempDir(), "TSV")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := tbl.ToTSV(tmp); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Retrieved worksheet '%s' to file %s", cmd.worksheet, cmd.file)

	return nil
}
