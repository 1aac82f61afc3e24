package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	md "github.com/nao1215/markdown"

	"github.com/hzafar/zakat"
)

// RatesMarkdown renders the active rate table sorted by currency code.
func RatesMarkdown(t zakat.RateTable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Exchange Rates (base %s)", t.Reporting))

	table := md.TableSet{Header: []string{"Currency", "Name", fmt.Sprintf("%s per unit", t.Reporting)}}
	for _, code := range slices.Sorted(maps.Keys(t.Rates)) {
		table.Rows = append(table.Rows, []string{
			code, t.Symbols[code], t.Rates[code].Round(4).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
