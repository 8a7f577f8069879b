package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/atseira/gsheets2dataframe/commands"
)

var cli = []commands.Command{
	&commands.VersionCmd,
	&commands.GetCmd,
	&commands.PutCmd,
	&commands.ColumnCmd,
	&commands.CellCmd,
}

var options = commands.Options{
	Debug: false,
}

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	if args[0] == "help" {
		help(args[1:])
		return
	}

	cmd := find(args[0])
	if cmd == nil {
		fmt.Printf("\nInvalid command '%s'\n\n", args[0])
		usage()
		os.Exit(1)
	}

	flagset := cmd.FlagSet()
	if err := flagset.Parse(args[1:]); err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if err := cmd.Execute(&options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

func find(name string) commands.Command {
	for _, cmd := range cli {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

func help(args []string) {
	if len(args) > 0 {
		if cmd := find(args[0]); cmd != nil {
			cmd.Help()
			return
		}

		fmt.Printf("\nInvalid command '%s'\n\n", args[0])
	}

	usage()
}

func usage() {
	fmt.Println()
	fmt.Println("  Usage: gsheets2dataframe [--debug] <command> [options]")
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	for _, cmd := range cli {
		fmt.Printf("    %-9s %s\n", cmd.Name(), cmd.Description())
	}

	fmt.Println()
	fmt.Println("  Use 'gsheets2dataframe help <command>' for command specific information")
	fmt.Println()
}
