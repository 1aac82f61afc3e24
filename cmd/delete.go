package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an entry from the ledger" }
func (*deleteCmd) Usage() string {
	return `zkt delete -id <id>

  Removes the entry with the given id.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the entry to delete.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeEntries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding entries %q: %v\n", *entriesFile, err)
		return subcommands.ExitFailure
	}

	if !ledger.Delete(c.id) {
		fmt.Fprintf(os.Stderr, "Error: no entry with id %q.\n", c.id)
		return subcommands.ExitFailure
	}

	if err := SaveEntries(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted entry %s\n", c.id)
	return subcommands.ExitSuccess
}
