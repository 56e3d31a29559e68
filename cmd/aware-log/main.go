// Command aware-log is a tool for viewing and analyzing coordinator trace
// files.
//
// Trace files are written by aware-sim with the -protocol-log flag.
//
// Usage:
//
//	aware-log <command> [flags] <file.alog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSON lines
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	aware-log view trace.alog
//
//	# Follow one transaction
//	aware-log view -tx-id 42 trace.alog
//
//	# Only callbacks for client 3
//	aware-log view -category callback -client 3 trace.alog
//
//	# Show statistics
//	aware-log stats trace.alog
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/awaremux/awaremux-go/cmd/aware-log/commands"
)

const usage = `aware-log - NAN Coordinator Trace Analyzer

Usage:
  aware-log <command> [flags] <file.alog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON lines
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "aware-log <command> -help" for more information about a command.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	cmd, args := args[0], args[1:]
	var err error
	switch cmd {
	case "view":
		err = runView(args, stdout, stderr)
	case "export":
		err = runExport(args, stdout, stderr)
	case "filter":
		err = runFilter(args, stdout, stderr)
	case "stats":
		err = runStats(args, stdout, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(stderr, usage)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newFlagSet creates a flag set that prints its usage to stderr.
func newFlagSet(name, summary string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "aware-log %s - %s\n\nUsage:\n  aware-log %s [flags] <file.alog>\n\nFlags:\n", name, summary, name)
		fs.PrintDefaults()
	}
	return fs
}

// filterFlags registers the filter flags shared by view and filter.
func filterFlags(fs *flag.FlagSet) *commands.FilterOptions {
	opts := &commands.FilterOptions{}
	fs.StringVar(&opts.InstanceID, "instance", "", "Filter by coordinator instance ID")
	fs.IntVar(&opts.ClientID, "client", 0, "Filter by client ID")
	fs.StringVar(&opts.TxID, "tx-id", "", "Filter by transaction ID")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	fs.StringVar(&opts.Direction, "direction", "", "Filter by direction (in, out)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (command, callback, state, error)")
	return opts
}

// parse parses args and returns the trace file path.
func parse(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return "", fmt.Errorf("log file path required")
	}
	return fs.Arg(0), nil
}

func runView(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("view", "View trace file in human-readable format", stderr)
	opts := filterFlags(fs)
	path, err := parse(fs, args)
	if err != nil {
		return err
	}
	filter, err := commands.BuildFilter(*opts)
	if err != nil {
		return err
	}
	return commands.RunView(path, filter, stdout)
}

func runExport(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("export", "Export trace file to JSON lines", stderr)
	output := fs.String("o", "", "Output file (default: stdout)")
	path, err := parse(fs, args)
	if err != nil {
		return err
	}
	return commands.RunExport(path, *output, stdout)
}

func runFilter(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("filter", "Filter trace file and write to new file", stderr)
	output := fs.String("o", "", "Output file (required)")
	opts := filterFlags(fs)
	path, err := parse(fs, args)
	if err != nil {
		return err
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("output file (-o) required")
	}
	filter, err := commands.BuildFilter(*opts)
	if err != nil {
		return err
	}
	count, err := commands.RunFilter(path, *output, filter)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Filtered %d events to %s\n", count, *output)
	return nil
}

func runStats(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("stats", "Show statistics about the trace file", stderr)
	path, err := parse(fs, args)
	if err != nil {
		return err
	}
	return commands.RunStats(path, stdout)
}
