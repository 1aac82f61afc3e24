package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/hzafar/zakat"
	"github.com/hzafar/zakat/renderer"
)

// assistCmd asks the AI assistant a question about the current ledger.
type assistCmd struct {
	offline bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant about your zakat situation" }
func (*assistCmd) Usage() string {
	return `zkt assist <question>

  Sends your question to the assistant along with the current valuation
  summary and payment status. Requires a Gemini API key in the environment.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Use the fixed fallback rate table instead of fetching live rates.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a question is required.")
		return subcommands.ExitUsageError
	}
	question := strings.Join(f.Args(), " ")

	summary, _, err := Summarize(c.offline, decimal.Zero)
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

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	var prompt strings.Builder
	prompt.WriteString("You are a helpful assistant for a personal zakat calculator. ")
	prompt.WriteString("Answer the user's question using the data below. ")
	prompt.WriteString("Be factual about the numbers and careful about religious rulings.\n\n")
	prompt.WriteString(renderer.SummaryMarkdown(summary))
	prompt.WriteString("\n")
	prompt.WriteString(renderer.SettlementMarkdown(settlement, ds))
	prompt.WriteString("\n\nQuestion: ")
	prompt.WriteString(question)

	resp, err := client.Models.GenerateContent(ctx, "gemini-2.5-flash", genai.Text(prompt.String()), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
