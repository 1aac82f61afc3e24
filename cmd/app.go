// Package cmd implements the CLI application to manage a personal zakat
// ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/hzafar/zakat"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&addCmd{},
	&listCmd{},
	&updateCmd{},
	&deleteCmd{},
	&summaryCmd{},
	&payCmd{},
	&paymentsCmd{},
	&ratesCmd{},
	&exportCmd{},
	&topicCmd{},
	&assistCmd{},
}

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var entriesFile = flag.String("entries-file", "entries.jsonl", "Path to the entries file (JSONL format)")
var paymentsFile = flag.String("payments-file", "payments.jsonl", "Path to the payments file (JSONL format)")

var configOnce = false

// config returns the application configuration, reading zakat.yaml on first
// use. A missing file is fine, defaults apply.
func config() *viper.Viper {
	if !configOnce {
		viper.SetConfigName("zakat")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.config/zakat")
		}
		viper.SetEnvPrefix("zakat")
		viper.AutomaticEnv()

		viper.SetDefault("reporting_currency", zakat.DefaultCurrency)
		viper.SetDefault("zakat_rate", zakat.DefaultZakatRate.InexactFloat64())
		viper.SetDefault("nisab_fallback", zakat.DefaultNisabPKR.InexactFloat64())
		viper.SetDefault("silver_price_per_gram", 0.0)
		viper.SetDefault("rates_ttl", zakat.DefaultRatesTTL.String())

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Printf("warning, ignoring config file: %v", err)
			}
		}
		configOnce = true
	}
	return viper.GetViper()
}

// ReportingCurrency returns the configured reporting currency.
func ReportingCurrency() string { return config().GetString("reporting_currency") }

// ZakatRate returns the configured obligation rate.
func ZakatRate() decimal.Decimal {
	return decimal.NewFromFloat(config().GetFloat64("zakat_rate"))
}

// NisabFallback returns the flat threshold used when no silver price is
// configured.
func NisabFallback() zakat.Money {
	return zakat.M(decimal.NewFromFloat(config().GetFloat64("nisab_fallback")), ReportingCurrency())
}

// SilverPrice returns the configured silver price per gram, zero if unset.
func SilverPrice() decimal.Decimal {
	return decimal.NewFromFloat(config().GetFloat64("silver_price_per_gram"))
}

// RatesTTL returns the freshness window for the cached rate table.
func RatesTTL() time.Duration {
	ttl, err := time.ParseDuration(config().GetString("rates_ttl"))
	if err != nil || ttl <= 0 {
		return zakat.DefaultRatesTTL
	}
	return ttl
}

// DecodeEntries decodes the ledger from the app entries file.
func DecodeEntries() (l *zakat.Ledger, err error) {
	f, err := os.Open(*entriesFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, entries file does not exist, starting with an empty ledger instead")
		return zakat.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return zakat.DecodeEntries(f)
}

// SaveEntries rewrites the whole entries file from the ledger.
func SaveEntries(l *zakat.Ledger) error {
	f, err := os.Create(*entriesFile)
	if err != nil {
		return fmt.Errorf("cannot write entries file %q: %w", *entriesFile, err)
	}
	defer f.Close()
	return zakat.EncodeEntries(f, l)
}

// DecodeDisbursements decodes the payment records from the app payments file.
func DecodeDisbursements() (ds []zakat.Disbursement, err error) {
	f, err := os.Open(*paymentsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return zakat.DecodeDisbursements(f)
}

// AppendDisbursement appends a single payment record to the app payments file.
func AppendDisbursement(d zakat.Disbursement) error {
	f, err := os.OpenFile(*paymentsFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open payments file %q: %w", *paymentsFile, err)
	}
	defer f.Close()
	return zakat.EncodeDisbursement(f, d)
}

// SaveDisbursements rewrites the whole payments file.
func SaveDisbursements(ds []zakat.Disbursement) error {
	f, err := os.Create(*paymentsFile)
	if err != nil {
		return fmt.Errorf("cannot write payments file %q: %w", *paymentsFile, err)
	}
	defer f.Close()
	return zakat.EncodeDisbursements(f, ds)
}

// LoadRates returns the active rate table: live rates when reachable, the
// fixed fallback otherwise. Offline skips the network entirely.
func LoadRates(offline bool) zakat.RateTable {
	if offline {
		return zakat.DefaultRates(ReportingCurrency())
	}
	return zakat.FetchRatesOrDefault(ReportingCurrency(), RatesTTL())
}

// Summarize loads the ledger and computes the valuation summary with the
// configured nisab and rate.
func Summarize(offline bool, silverPrice decimal.Decimal) (zakat.Summary, *zakat.Ledger, error) {
	ledger, err := DecodeEntries()
	if err != nil {
		return zakat.Summary{}, nil, err
	}
	if !silverPrice.IsPositive() {
		silverPrice = SilverPrice()
	}
	nisab := zakat.NisabThreshold(silverPrice, NisabFallback())
	rates := LoadRates(offline)
	return ledger.Summarize(rates, nisab, ZakatRate()), ledger, nil
}

// Reconcile computes the settlement of the obligation against the recorded
// payments.
func Reconcile(offline bool) (zakat.Settlement, []zakat.Disbursement, error) {
	summary, _, err := Summarize(offline, decimal.Zero)
	if err != nil {
		return zakat.Settlement{}, nil, err
	}
	ds, err := DecodeDisbursements()
	if err != nil {
		return zakat.Settlement{}, nil, err
	}
	return zakat.Reconcile(summary, ds), ds, nil
}
