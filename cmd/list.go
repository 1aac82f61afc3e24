package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/hzafar/zakat/renderer"
)

type listCmd struct {
	offline bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all entries with their values" }
func (*listCmd) Usage() string {
	return `zkt list [-offline]

  Lists every entry in the ledger with its value in the reporting currency.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Use the fixed fallback rate table instead of fetching live rates.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeEntries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding entries %q: %v\n", *entriesFile, err)
		return subcommands.ExitFailure
	}

	rates := LoadRates(c.offline)
	printMarkdown(renderer.EntriesMarkdown(ledger, rates))
	return subcommands.ExitSuccess
}
