package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/hzafar/zakat/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	silverPrice string
	offline     bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the zakat valuation summary" }
func (*summaryCmd) Usage() string {
	return `zkt summary [-silver-price <price>] [-offline]

  Displays totals, net zakatable wealth, the nisab threshold and the
  obligation due. The nisab derives from the silver price per gram when one
  is given or configured, otherwise the fixed fallback amount applies.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.silverPrice, "silver-price", "", "Silver price per gram, to derive the nisab. Overrides the configuration.")
	f.BoolVar(&c.offline, "offline", false, "Use the fixed fallback rate table instead of fetching live rates.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	silverPrice := decimal.Zero
	if c.silverPrice != "" {
		var err error
		silverPrice, err = decimal.NewFromString(c.silverPrice)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing silver price: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	summary, _, err := Summarize(c.offline, silverPrice)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding entries %q: %v\n", *entriesFile, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
