package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/hzafar/zakat"
	"github.com/hzafar/zakat/renderer"
)

// paymentsCmd holds the flags for the 'payments' subcommand.
type paymentsCmd struct {
	deleteID string
	offline  bool
}

func (*paymentsCmd) Name() string     { return "payments" }
func (*paymentsCmd) Synopsis() string { return "show the obligation status and payment history" }
func (*paymentsCmd) Usage() string {
	return `zkt payments [-delete <id>] [-offline]

  Shows the obligation, total paid, remaining balance and the payment
  history. With -delete, removes the payment record with the given id.
`
}

func (c *paymentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.deleteID, "delete", "", "Id of a payment record to remove.")
	f.BoolVar(&c.offline, "offline", false, "Use the fixed fallback rate table instead of fetching live rates.")
}

func (c *paymentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.deleteID != "" {
		return c.delete()
	}

	settlement, ds, err := Reconcile(c.offline)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SettlementMarkdown(settlement, ds))
	return subcommands.ExitSuccess
}

func (c *paymentsCmd) delete() subcommands.ExitStatus {
	ds, err := DecodeDisbursements()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	kept := make([]zakat.Disbursement, 0, len(ds))
	found := false
	for _, d := range ds {
		if d.Id == c.deleteID {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: no payment with id %q.\n", c.deleteID)
		return subcommands.ExitFailure
	}

	if err := SaveDisbursements(kept); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted payment %s\n", c.deleteID)
	return subcommands.ExitSuccess
}
