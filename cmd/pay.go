package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/hzafar/zakat"
)

// payCmd holds the flags for the 'pay' subcommand.
type payCmd struct {
	amount  string
	date    string
	notes   string
	offline bool
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment toward the zakat obligation" }
func (*payCmd) Usage() string {
	return `zkt pay -amount <amount> [-d <date>] [-n <notes>] [-offline]

  Records a payment in the reporting currency. The amount must be positive
  and must not exceed the remaining balance of the obligation.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Payment amount, in the reporting currency.")
	f.StringVar(&c.date, "d", "0d", "Date of the payment (defaults to today).")
	f.StringVar(&c.notes, "n", "", "Free-form notes.")
	f.BoolVar(&c.offline, "offline", false, "Use the fixed fallback rate table instead of fetching live rates.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -amount is required.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	day, err := zakat.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	settlement, _, err := Reconcile(c.offline)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	payment := zakat.M(amount, ReportingCurrency())
	if err := settlement.ValidateNewPayment(payment); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	d := zakat.NewDisbursement(day, payment, c.notes)
	if err := AppendDisbursement(d); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	remaining := settlement.Remaining.Sub(payment)
	fmt.Printf("Recorded payment of %s, %s remaining.\n", payment, remaining)
	return subcommands.ExitSuccess
}
