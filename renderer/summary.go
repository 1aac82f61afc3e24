// Package renderer turns engine results into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/hzafar/zakat"
)

// SummaryMarkdown renders the valuation summary as a markdown report.
func SummaryMarkdown(s zakat.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Zakat Summary")

	table := md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Total Assets", s.TotalAssets.String()},
			{"Total Liabilities", s.TotalLiabilities.String()},
			{"Net Zakatable Wealth", s.NetZakatable.String()},
			{"Nisab Threshold", s.Nisab.String()},
		},
	}
	doc.Table(table)

	if s.AboveNisab {
		doc.PlainText(fmt.Sprintf("Net wealth is at or above the nisab. **Zakat due: %s**", s.ObligationDue))
	} else {
		doc.PlainText("Net wealth is below the nisab. No zakat is due.")
	}

	return doc.String()
}

// SettlementMarkdown renders the obligation ledger: totals, remaining
// balance, status, and the payment history most recent first.
func SettlementMarkdown(st zakat.Settlement, ds []zakat.Disbursement) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Disbursements")

	table := md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Obligation Due", st.Obligation.String()},
			{"Total Paid", st.TotalPaid.String()},
			{"Remaining Balance", st.Outstanding().String()},
		},
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Status: **%s**", st.Status()))

	if len(ds) == 0 {
		doc.PlainText("No payments logged yet.")
		return doc.String()
	}

	doc.H2("Payment History")
	history := md.TableSet{Header: []string{"Date", "Amount", "Notes", "ID"}}
	for _, d := range zakat.SortedByDateDesc(ds) {
		history.Rows = append(history.Rows, []string{
			d.Date.String(), d.Amount.String(), d.Memo, d.Id,
		})
	}
	doc.Table(history)

	return doc.String()
}
