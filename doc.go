// Package zakat provides the valuation and obligation engine for a personal
// zakat calculator. It enumerates assets and liabilities, converts
// heterogeneous value representations (cash in multiple currencies,
// precious-metal holdings by weight, karat and unit) into a single reporting
// currency, compares net wealth against the nisab threshold, and derives the
// proportional obligation. A companion payment ledger tracks disbursements
// against that obligation over time.
//
// The core functionalities include:
//   - Entry Management: a single authoritative collection of wealth and debt
//     entries with explicit update operations, modeled as a tagged union over
//     the fixed category set so required fields are enforced by construction.
//   - Valuation Engine: pure, deterministic functions computing per-entry
//     values and the aggregate summary; incomplete entries degrade to zero
//     instead of failing, so one bad entry never corrupts the whole summary.
//   - Disbursement Reconciler: maintains the invariant that cumulative
//     payments never exceed the computed obligation, and validates every new
//     payment against the live remaining balance before persistence.
//   - Rate Table Boundary: exchange rates fetched from an external source,
//     cached with a freshness window and degrading to a fixed fallback table;
//     the engine itself only ever consumes a plain immutable table.
//   - Data Persistence: encoding and decoding of entries and payments to and
//     from human-readable, version-controllable JSONL files.
//
// This package serves as the foundational logic for the `zkt` command-line
// tool.
package zakat
