package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/holdex"
	"github.com/google/subcommands"
)

// buildCmd holds the flags for the 'build' subcommand.
type buildCmd struct {
	indexOut string
	listOut  string
}

func (*buildCmd) Name() string     { return "build" }
func (*buildCmd) Synopsis() string { return "build the daily holdings index and the asset list" }
func (*buildCmd) Usage() string {
	return `hdx build [-index-out <file>] [-list-out <file>]

  Loads the asset reference and the holdings table, and writes the daily
  holdings index and the asset metadata dictionary consumed by the analysis
  engine.
`
}

func (c *buildCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.indexOut, "index-out", "asset_daily_holdings.json", "Output file for the daily holdings index")
	f.StringVar(&c.listOut, "list-out", "asset_list.json", "Output file for the asset metadata dictionary")
}

func (c *buildCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	index, err := holdex.BuildDailyIndex(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building daily index: %v\n", err)
		return subcommands.ExitFailure
	}
	infos := holdex.BuildAssetInfo(records, assets)

	if err := holdex.WriteFile(c.indexOut, func(w io.Writer) error {
		return holdex.EncodeDailyIndex(w, index)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing daily index: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := holdex.WriteFile(c.listOut, func(w io.Writer) error {
		return holdex.EncodeAssetInfo(w, infos)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing asset list: %v\n", err)
		return subcommands.ExitFailure
	}

	span := index.Span()
	fmt.Fprintf(os.Stderr, "Indexed %d records over %d days (%s) into %s, %d assets into %s\n",
		len(records), span.Len(), span, c.indexOut, infos.Len(), c.listOut)
	return subcommands.ExitSuccess
}
