// Package analysis turns a raw bank/card statement export into a structured
// financial analysis: normalized transactions, spend/income totals, category
// and merchant breakdowns, daily time series, percentile anomalies and
// recurring-payment candidates. The engine is pure and stateless; callers hand
// it the full statement text and receive one result value.
package analysis

// Interpretation values for a batch. The decision is made once per input: if
// any normalized amount is negative the source is trusted as signed, otherwise
// all amounts are treated as unsigned spend magnitudes.
const (
	InterpretationSigned           = "signed"
	InterpretationAllPositiveSpend = "allPositiveSpend"
)

// Currency is the fixed currency code emitted in result metadata. The engine
// does not detect currencies from input.
const Currency = "PHP"

// Transaction is the canonical unit of analysis. Amount is signed:
// non-negative means inflow, negative means outflow, after the batch-wide sign
// interpretation has been applied.
type Transaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Merchant    string  `json:"merchant"`
}

// DetectedColumns reports which header was picked for each field, verbatim,
// so a consuming UI can show how the file was interpreted.
type DetectedColumns struct {
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Debit       string `json:"debit,omitempty"`
	Credit      string `json:"credit,omitempty"`
}

// Meta describes the batch as a whole.
type Meta struct {
	Rows           int             `json:"rows"`
	Currency       string          `json:"currency"`
	Detected       DetectedColumns `json:"detected"`
	Interpretation string          `json:"interpretation"`
}

// BiggestOut is the single largest outflow by magnitude.
type BiggestOut struct {
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// Summary holds batch totals. All monetary values are rounded to 2 decimals.
type Summary struct {
	TotalIn     float64     `json:"totalIn"`
	TotalOut    float64     `json:"totalOut"`
	Net         float64     `json:"net"`
	AvgDailyOut float64     `json:"avgDailyOut"`
	DateFrom    string      `json:"dateFrom,omitempty"`
	DateTo      string      `json:"dateTo,omitempty"`
	BiggestOut  *BiggestOut `json:"biggestOut,omitempty"`
}

// CategoryTotal is an outflow bucket for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	TotalOut float64 `json:"totalOut"`
	Count    int     `json:"count"`
}

// DayTotal is an outflow bucket for one calendar day.
type DayTotal struct {
	Date     string  `json:"date"`
	TotalOut float64 `json:"totalOut"`
}

// MerchantTotal is an outflow bucket for one merchant key.
type MerchantTotal struct {
	Merchant string  `json:"merchant"`
	TotalOut float64 `json:"totalOut"`
	Count    int     `json:"count"`
}

// RecurringCandidate is a merchant whose outflow history passed both the
// amplitude-regularity and near-monthly cadence checks.
type RecurringCandidate struct {
	Merchant         string  `json:"merchant"`
	ApproxPeriodDays int     `json:"approxPeriodDays"`
	Count            int     `json:"count"`
	AverageAmount    float64 `json:"averageAmount"`
	LastDate         string  `json:"lastDate"`
}

// Result is the full analysis response. Field names and nesting are a
// compatibility surface for the consuming dashboard; do not rename.
type Result struct {
	Meta         Meta                 `json:"meta"`
	Summary      Summary              `json:"summary"`
	ByCategory   []CategoryTotal      `json:"byCategory"`
	DailyOut     []DayTotal           `json:"dailyOut"`
	TopMerchants []MerchantTotal      `json:"topMerchants"`
	Anomalies    []Transaction        `json:"anomalies"`
	Recurring    []RecurringCandidate `json:"recurring"`
	Transactions []Transaction        `json:"transactions"`
}
