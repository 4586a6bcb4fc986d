package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/holdex"
	"github.com/etnz/holdex/agent"
	"github.com/etnz/holdex/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI analyst.
type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive analyst session over the holdings table"
}
func (*assistCmd) Usage() string {
	return `hdx assist [question]

  Start an interactive session with an analyst that has read the holdings
  summary and the asset list.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
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
	summary, err := holdex.Summarize(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error summarizing holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	// The analyst reads what the user would read.
	var material strings.Builder
	material.WriteString(renderer.SummaryMarkdown(summary))
	material.WriteString("\n")
	material.WriteString(assetListMarkdown(records, assets))

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, material.String())
	if initialPrompt != "" {
		err = a.Run(ctx, client, initialPrompt)
	} else {
		err = a.Run(ctx, client)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// assetListMarkdown renders the enriched asset list so the analyst knows
// names and industries behind the codes.
func assetListMarkdown(records []holdex.HoldingRecord, assets *holdex.Assets) string {
	infos := holdex.BuildAssetInfo(records, assets)
	var b strings.Builder
	fmt.Fprintf(&b, "# Assets\n\n")
	fmt.Fprintln(&b, "| Code | Name | Industry | Sub-industry |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|")
	for full, info := range infos.All() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", full, info.Name, info.Industry, info.SubIndustry)
	}
	return b.String()
}
