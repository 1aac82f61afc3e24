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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	category string
	amount   string
	currency string
	weight   string
	unit     string
	karat    string
	price    string
	notes    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an asset or liability entry to the ledger" }
func (*addCmd) Usage() string {
	return `zkt add [-c <category>] [-a <amount>] [-cur <currency>] [-w <weight> -unit <unit> -k <karat> -price <price>] [-n <notes>]

  Adds an entry. The category determines the required fields: cash takes an
  amount and an optional currency, gold and silver take a weight, karat and
  price per gram, everything else takes a face-value amount in the reporting
  currency. Without -c the category following the last entry is proposed.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Entry category (cash, gold, silver, inventory, receivables, personal-debt, business-loan, payables).")
	f.StringVar(&c.amount, "a", "", "Amount, for monetary categories.")
	f.StringVar(&c.currency, "cur", "", "Currency of a cash amount. Defaults to the reporting currency.")
	f.StringVar(&c.weight, "w", "", "Metal weight, for gold and silver.")
	f.StringVar(&c.unit, "unit", "gram", "Weight unit (gram, tola).")
	f.StringVar(&c.karat, "k", "", "Purity grade (24K, 22K, 21K, 18K).")
	f.StringVar(&c.price, "price", "", "Spot price per gram of pure metal, in the reporting currency.")
	f.StringVar(&c.notes, "n", "", "Free-form notes.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeEntries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding entries %q: %v\n", *entriesFile, err)
		return subcommands.ExitFailure
	}

	var category zakat.Category
	if c.category == "" {
		category = zakat.Cash
		if last, ok := ledger.LastCategory(); ok {
			category = zakat.NextCategory(last)
		}
		fmt.Fprintf(os.Stderr, "No category given, adding a %s entry.\n", category)
	} else {
		category, err = zakat.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	entry, err := c.build(category)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if err := ledger.Append(entry); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := SaveEntries(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s entry %s\n", entry.Category(), entry.ID())
	return subcommands.ExitSuccess
}

// build creates the concrete entry for the category from the given flags.
func (c *addCmd) build(category zakat.Category) (zakat.Entry, error) {
	number := func(s string) (decimal.Decimal, error) {
		if s == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(s)
	}

	switch {
	case category == zakat.Cash:
		amount, err := number(c.amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", c.amount, err)
		}
		return zakat.NewCashEntry(amount, c.currency, c.notes), nil

	case category.IsMetal():
		weight, err := number(c.weight)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", c.weight, err)
		}
		unit, err := zakat.ParseUnit(c.unit)
		if err != nil {
			return nil, err
		}
		price, err := number(c.price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q: %w", c.price, err)
		}
		return zakat.NewMetalEntry(category, zakat.W(weight, unit), zakat.Karat(c.karat), price, c.notes), nil

	default:
		amount, err := number(c.amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", c.amount, err)
		}
		return zakat.NewAmountEntry(category, amount, c.notes), nil
	}
}
