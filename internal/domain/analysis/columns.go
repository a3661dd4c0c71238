package analysis

import (
	"strings"
	"unicode"
)

// ColumnMap is the detection result: for each field, the original header that
// was picked, or empty when nothing matched. When an amount column is present
// it takes precedence over debit/credit during normalization.
type ColumnMap struct {
	Date        string
	Description string
	Amount      string
	Debit       string
	Credit      string
}

// Candidate keyword lists per field, matched by substring containment against
// normalized headers. Order matters only across headers (first header wins),
// not within a keyword list.
var (
	dateKeywords        = []string{"date", "transactiondate", "posteddate"}
	descriptionKeywords = []string{"description", "details", "merchant", "narration", "memo"}
	amountKeywords      = []string{"amount", "amt", "value"}
	debitKeywords       = []string{"debit", "withdrawal", "dr"}
	creditKeywords      = []string{"credit", "deposit", "cr"}
)

// DetectColumns inspects the header strings and guesses which column holds
// each field. Fields are claimed independently: the same header may satisfy
// more than one slot (e.g. "description" contains "cr" and so can also be
// picked as the credit column). The ambiguity is not resolved here; it is
// surfaced verbatim in the response metadata.
func DetectColumns(headers []string) ColumnMap {
	keys := make([]string, len(headers))
	for i, h := range headers {
		keys[i] = normalizeHeader(h)
	}

	pick := func(candidates []string) string {
		for i, key := range keys {
			for _, c := range candidates {
				if strings.Contains(key, c) {
					return headers[i]
				}
			}
		}
		return ""
	}

	return ColumnMap{
		Date:        pick(dateKeywords),
		Description: pick(descriptionKeywords),
		Amount:      pick(amountKeywords),
		Debit:       pick(debitKeywords),
		Credit:      pick(creditKeywords),
	}
}

// Detected converts the column map into the response metadata shape.
func (m ColumnMap) Detected() DetectedColumns {
	return DetectedColumns{
		Date:        m.Date,
		Description: m.Description,
		Amount:      m.Amount,
		Debit:       m.Debit,
		Credit:      m.Credit,
	}
}

// normalizeHeader lowercases a header and strips all whitespace and
// underscores, so "Transaction_Date" and "transaction date" compare equal.
func normalizeHeader(h string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '_' {
			return -1
		}
		return unicode.ToLower(r)
	}, h)
}
