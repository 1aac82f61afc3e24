package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/hzafar/zakat"
)

// EntriesMarkdown renders the entry collection with per-entry values in the
// reporting currency.
func EntriesMarkdown(l *zakat.Ledger, rates zakat.RateTable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Entries")

	if l.Len() == 0 {
		doc.PlainText("No entries yet. Add one with `zkt add`.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Kind", "Category", "Details", "Value", "Notes", "ID"}}
	for _, e := range l.Entries() {
		table.Rows = append(table.Rows, []string{
			e.Kind().String(),
			e.Category().String(),
			entryDetails(e),
			e.Value(rates).String(),
			e.Notes(),
			e.ID(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// entryDetails summarizes the source fields of an entry, so metal holdings
// show their weight and purity rather than a derived amount.
func entryDetails(e zakat.Entry) string {
	switch v := e.(type) {
	case zakat.CashEntry:
		cur := v.Currency
		if cur == "" {
			cur = "reporting currency"
		}
		return fmt.Sprintf("%s %s", v.Amount, cur)
	case zakat.MetalEntry:
		return fmt.Sprintf("%s %s @ %s/g", v.Weight, v.Karat, v.PricePerGram)
	case zakat.AmountEntry:
		return v.Amount.String()
	default:
		return ""
	}
}
