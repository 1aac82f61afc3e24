package zakat

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountRec is a specialized struct to read an amount and currency pair from
// a data line.
type amountRec struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountRec) Money() Money {
	return M(a.Amount, a.Currency)
}

// DecodeEntries decodes entries from a stream of JSONL data, one JSON object
// per line discriminated by its "category" field, and returns a Ledger
// preserving the line order.
func DecodeEntries(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Category Category `json:"category"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify category in line %q: %w", string(lineBytes), err)
		}
		cat, err := ParseCategory(string(identifier.Category))
		if err != nil {
			return nil, fmt.Errorf("in line %q: %w", string(lineBytes), err)
		}

		var decoded Entry
		switch {
		case cat == Cash:
			var temp struct {
				baseEntry
				amountRec
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decoded = CashEntry{
				baseEntry: temp.baseEntry,
				Amount:    temp.Amount,
				Currency:  temp.Currency,
			}
		case cat.IsMetal():
			var temp struct {
				baseEntry
				Weight decimal.Decimal `json:"weight"`
				Unit   Unit            `json:"unit"`
				Karat  Karat           `json:"karat"`
				Price  decimal.Decimal `json:"price"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			unit, err := ParseUnit(string(temp.Unit))
			if err != nil {
				return nil, fmt.Errorf("in line %q: %w", string(lineBytes), err)
			}
			decoded = MetalEntry{
				baseEntry:    temp.baseEntry,
				Weight:       W(temp.Weight, unit),
				Karat:        temp.Karat,
				PricePerGram: temp.Price,
			}
		default:
			var temp struct {
				baseEntry
				Amount decimal.Decimal `json:"amount"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decoded = AmountEntry{
				baseEntry: temp.baseEntry,
				Amount:    temp.Amount,
			}
		}

		if err := ledger.Append(decoded); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// EncodeEntry marshals a single entry to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeEntry(w io.Writer, e Entry) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}
	return nil
}

// EncodeEntries persists the ledger to an io.Writer in JSONL format,
// preserving insertion order.
func EncodeEntries(w io.Writer, ledger *Ledger) error {
	for _, e := range ledger.Entries() {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeDisbursements decodes payment records from a stream of JSONL data.
func DecodeDisbursements(r io.Reader) ([]Disbursement, error) {
	var ds []Disbursement
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var temp struct {
			amountRec
			Id    string `json:"id"`
			Date  Date   `json:"date"`
			Notes string `json:"notes"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, fmt.Errorf("could not decode payment line %q: %w", string(lineBytes), err)
		}
		ds = append(ds, Disbursement{
			Id:     temp.Id,
			Amount: temp.Money(),
			Date:   temp.Date,
			Memo:   temp.Notes,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ds, nil
}

// EncodeDisbursement marshals a single payment and writes it as one JSONL line.
func EncodeDisbursement(w io.Writer, d Disbursement) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal payment: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write payment: %w", err)
	}
	return nil
}

// EncodeDisbursements persists all payments to an io.Writer in JSONL format.
func EncodeDisbursements(w io.Writer, ds []Disbursement) error {
	for _, d := range ds {
		if err := EncodeDisbursement(w, d); err != nil {
			return err
		}
	}
	return nil
}
