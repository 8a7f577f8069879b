package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"regexp"

	"github.com/atseira/gsheets2dataframe/gsheets"
)

const APP = "gsheets2dataframe"

const (
	DEFAULT_WORKDIR     = ".google"
	DEFAULT_CREDENTIALS = ".google/credentials.json"
)

// Command is the common interface for the CLI subcommands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

type Options struct {
	Debug bool
}

type command struct {
	credentials string
	tokens      string
	url         string
	worksheet   string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&c.tokens, "tokens", c.tokens, "Directory for cached OAuth2 tokens")
	flagset.StringVar(&c.url, "url", c.url, "Spreadsheet URL")
	flagset.StringVar(&c.worksheet, "worksheet", c.worksheet, "Worksheet name e.g. 'Sheet1'")

	return flagset
}

func (c *command) validate() error {
	if c.credentials == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if c.url == "" {
		return fmt.Errorf("--url is a required option")
	}

	if c.worksheet == "" {
		return fmt.Errorf("--worksheet is a required option")
	}

	return nil
}

// bridge extracts the spreadsheet ID from the --url option and opens a bridge
// to the spreadsheet.
func (c *command) bridge(ctx context.Context) (*gsheets.Bridge, error) {
	id, err := spreadsheetId(c.url)
	if err != nil {
		return nil, err
	}

	if c.debug {
		debugf("Spreadsheet - ID:%s  worksheet:%s", id, c.worksheet)
	}

	cfg := gsheets.Config{
		Credentials: c.credentials,
		Tokens:      c.tokens,
	}

	return gsheets.NewBridge(ctx, cfg, id)
}

func spreadsheetId(url string) (string, error) {
	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(url)
	if len(match) < 2 {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	fmt.Println()

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
