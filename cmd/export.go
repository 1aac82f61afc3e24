package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/hzafar/zakat"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output  string
	offline bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export entries, summary and payments to a spreadsheet" }
func (*exportCmd) Usage() string {
	return `zkt export [-o <file.xlsx>] [-offline]

  Writes an xlsx workbook with one sheet per concern: entries with their
  values, the valuation summary, and the payment history.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "zakat.xlsx", "Output file.")
	f.BoolVar(&c.offline, "offline", false, "Use the fixed fallback rate table instead of fetching live rates.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	summary, ledger, err := Summarize(c.offline, decimal.Zero)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ds, err := DecodeDisbursements()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	settlement := zakat.Reconcile(summary, ds)
	rates := LoadRates(c.offline)

	wb := excelize.NewFile()
	defer wb.Close()

	if err := writeEntriesSheet(wb, ledger, rates); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := writeSummarySheet(wb, summary, settlement); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := writePaymentsSheet(wb, ds); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	// Drop the default sheet created by NewFile.
	if err := wb.DeleteSheet("Sheet1"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := wb.SaveAs(c.output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported to %s\n", c.output)
	return subcommands.ExitSuccess
}

func writeEntriesSheet(wb *excelize.File, ledger *zakat.Ledger, rates zakat.RateTable) error {
	const sheet = "Entries"
	idx, err := wb.NewSheet(sheet)
	if err != nil {
		return err
	}
	wb.SetActiveSheet(idx)

	rows := [][]interface{}{
		{"Kind", "Category", "Value (" + rates.Reporting + ")", "Notes", "Id"},
	}
	for _, e := range ledger.Entries() {
		rows = append(rows, []interface{}{
			e.Kind().String(),
			e.Category().String(),
			e.Value(rates).Amount().InexactFloat64(),
			e.Notes(),
			e.ID(),
		})
	}
	return writeRows(wb, sheet, rows)
}

func writeSummarySheet(wb *excelize.File, s zakat.Summary, st zakat.Settlement) error {
	const sheet = "Summary"
	if _, err := wb.NewSheet(sheet); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Total Assets", s.TotalAssets.Amount().InexactFloat64()},
		{"Total Liabilities", s.TotalLiabilities.Amount().InexactFloat64()},
		{"Net Zakatable Wealth", s.NetZakatable.Amount().InexactFloat64()},
		{"Nisab Threshold", s.Nisab.Amount().InexactFloat64()},
		{"Obligation Due", s.ObligationDue.Amount().InexactFloat64()},
		{"Total Paid", st.TotalPaid.Amount().InexactFloat64()},
		{"Remaining Balance", st.Outstanding().Amount().InexactFloat64()},
		{"Status", st.Status().String()},
	}
	return writeRows(wb, sheet, rows)
}

func writePaymentsSheet(wb *excelize.File, ds []zakat.Disbursement) error {
	const sheet = "Payments"
	if _, err := wb.NewSheet(sheet); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Date", "Amount", "Notes", "Id"},
	}
	for _, d := range zakat.SortedByDateDesc(ds) {
		rows = append(rows, []interface{}{
			d.Date.String(),
			d.Amount.Amount().InexactFloat64(),
			d.Memo,
			d.Id,
		})
	}
	return writeRows(wb, sheet, rows)
}

func writeRows(wb *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
