// Package cmd implements the CLI application to build and inspect the daily
// holdings index.
package cmd

import (
	"flag"

	"github.com/etnz/holdex"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buildCmd{}, "build")
	c.Register(&updateCmd{}, "build")

	c.Register(&holdingCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var assetsFile = flag.String("assets", "lxr_assets.json", "Path to the asset reference dataset (JSON)")
var tradesFile = flag.String("trades", "small_cap_100_trades.csv", "Path to the holdings table (CSV)")

// LoadAssets loads the asset reference from the app assets path.
func LoadAssets() (*holdex.Assets, error) {
	return holdex.LoadAssets(*assetsFile)
}

// LoadHoldings loads the holdings table from the app trades path.
func LoadHoldings() ([]holdex.HoldingRecord, error) {
	return holdex.LoadHoldings(*tradesFile)
}
