package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdex"
	"github.com/etnz/holdex/date"
	"github.com/etnz/holdex/renderer"
	"github.com/google/subcommands"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	date string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display detailed holdings for a specific date" }
func (*holdingCmd) Usage() string {
	return `hdx holding [-d <date>]

  Displays the stocks held on a given date, enriched with asset metadata.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date for the holdings report (YYYY-MM-DD)")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	assets, err := LoadAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading asset reference: %v\n", err)
		return subcommands.ExitFailure
	}

	records, err := LoadHoldings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings table: %v\n", err)
		return subcommands.ExitFailure
	}

	report := holdex.NewDayReport(on, records, assets)
	printMarkdown(renderer.HoldingMarkdown(report))

	return subcommands.ExitSuccess
}
