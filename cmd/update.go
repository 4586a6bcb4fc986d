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

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	url  string
	path string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh the local asset reference from the provider" }
func (*updateCmd) Usage() string {
	return `hdx update -url <endpoint> [-path <jsonpath>]

  Downloads the asset list from the provider endpoint, extracts the asset
  array from the response envelope with a JSONPath expression, and rewrites
  the local asset reference file.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", "", "Provider endpoint returning the asset list")
	f.StringVar(&c.path, "path", holdex.DefaultAssetsPath, "JSONPath locating the asset array in the response")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.url == "" {
		fmt.Fprintln(os.Stderr, "Error: -url is required")
		return subcommands.ExitUsageError
	}

	refs, err := holdex.FetchAssets(holdex.DailyClient(), c.url, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching assets: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := holdex.WriteFile(*assetsFile, func(w io.Writer) error {
		return holdex.EncodeAssets(w, refs)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing asset reference: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Stored %d assets into %s\n", len(refs), *assetsFile)
	return subcommands.ExitSuccess
}
