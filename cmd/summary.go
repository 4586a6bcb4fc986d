package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdex"
	"github.com/etnz/holdex/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display statistics over the whole holdings table" }
func (*summaryCmd) Usage() string {
	return `hdx summary

  Displays record counts, re-entries, the covered date range, average
  holding length, and return statistics when the table carries prices.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := LoadHoldings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings table: %v\n", err)
		return subcommands.ExitFailure
	}

	summary, err := holdex.Summarize(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error summarizing holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
