package analysis

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// canonicalDate is the wire format for all transaction dates.
const canonicalDate = "2006-01-02"

// Accepted date layouts, tried strictly in order. MM/DD is tried before DD/MM
// so an ambiguous "03/04/2026" resolves American-style, matching the format
// list in the input contract.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
	"Jan 2, 2006",
}

// normalizeDate parses a raw cell into canonical YYYY-MM-DD form. The strict
// layout list is tried first; anything it rejects gets one best-effort pass
// through a permissive parser. Returns false when nothing matches.
func normalizeDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(canonicalDate), true
		}
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t.Format(canonicalDate), true
	}
	return "", false
}

// normalizeAmount coerces a raw cell to a signed decimal by stripping every
// character except digits, '.' and '-' before parsing. Currency symbols and
// thousands separators fall away; anything still unparseable (including a
// value with no digits at all) is rejected.
func normalizeAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// normalizer turns raw rows into canonical transactions, dropping anything it
// cannot make sense of. Row-level defects are never errors: a bad date, empty
// description or missing amount just excludes that row from the batch.
type normalizer struct {
	headers []string
	columns ColumnMap
	rules   *ruleEngine
}

func newNormalizer(headers []string, columns ColumnMap, rules *ruleEngine) *normalizer {
	return &normalizer{headers: headers, columns: columns, rules: rules}
}

// headerAt returns the nth header, or empty when the table is narrower.
func (n *normalizer) headerAt(i int) string {
	if i < len(n.headers) {
		return n.headers[i]
	}
	return ""
}

// Normalize converts one raw row into a Transaction. The second return value
// is false when the row is dropped.
func (n *normalizer) Normalize(row RawRow) (Transaction, bool) {
	dateCol := n.columns.Date
	if dateCol == "" {
		dateCol = n.headerAt(0)
	}
	date, ok := normalizeDate(row[dateCol])
	if !ok {
		return Transaction{}, false
	}

	descCol := n.columns.Description
	if descCol == "" {
		descCol = n.headerAt(1)
	}
	description := strings.TrimSpace(row[descCol])
	if description == "" {
		return Transaction{}, false
	}

	amount, ok := n.amount(row)
	if !ok {
		return Transaction{}, false
	}
	amt, _ := amount.Float64()

	return Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Description: description,
		Amount:      amt,
		Category:    n.rules.Categorize(description, amt),
		Merchant:    merchantKey(description),
	}, true
}

// amount resolves the signed amount for a row. A detected amount column takes
// precedence; otherwise debit/credit columns combine as |credit| - |debit|
// with an unparseable or absent side counting as zero. A row with neither
// source is dropped.
func (n *normalizer) amount(row RawRow) (decimal.Decimal, bool) {
	if n.columns.Amount != "" {
		return normalizeAmount(row[n.columns.Amount])
	}
	if n.columns.Debit == "" && n.columns.Credit == "" {
		return decimal.Zero, false
	}
	var debit, credit decimal.Decimal
	if n.columns.Debit != "" {
		if d, ok := normalizeAmount(row[n.columns.Debit]); ok {
			debit = d.Abs()
		}
	}
	if n.columns.Credit != "" {
		if c, ok := normalizeAmount(row[n.columns.Credit]); ok {
			credit = c.Abs()
		}
	}
	return credit.Sub(debit), true
}
