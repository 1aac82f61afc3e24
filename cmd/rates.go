package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/hzafar/zakat/renderer"
)

type ratesCmd struct {
	offline bool
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show the active exchange rate table" }
func (*ratesCmd) Usage() string {
	return `zkt rates [-offline]

  Shows the exchange rates used to convert foreign currency into the
  reporting currency. Live rates are cached on disk and refetched once the
  configured TTL expires; when the rate source is unreachable the fixed
  fallback table is shown instead.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Use the fixed fallback rate table instead of fetching live rates.")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.RatesMarkdown(LoadRates(c.offline)))
	return subcommands.ExitSuccess
}
