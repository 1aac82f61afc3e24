package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type updateCmd struct {
	id string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update fields of an existing entry" }
func (*updateCmd) Usage() string {
	return `zkt update -id <id> <field>=<value> [<field>=<value> ...]

  Updates one or more fields of an entry. Fields: category, notes, amount,
  currency, weight, unit, karat, price. Changing the category to another
  shape resets the fields that do not carry over.

Usage Examples:
$ zkt update -id 3f1a amount=1500 currency=USD
$ zkt update -id 3f1a category=gold weight=5 unit=tola karat=22K price=24000
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the entry to update.")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one <field>=<value> pair is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeEntries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding entries %q: %v\n", *entriesFile, err)
		return subcommands.ExitFailure
	}

	for _, arg := range f.Args() {
		field, value, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: %q is not a <field>=<value> pair.\n", arg)
			return subcommands.ExitUsageError
		}
		if err := ledger.UpdateField(c.id, field, value); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	if err := SaveEntries(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated entry %s\n", c.id)
	return subcommands.ExitSuccess
}
