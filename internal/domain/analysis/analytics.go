package analysis

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendscope/spendscope/pkg/money"
)

const (
	anomalyPercentile = 0.95
	anomalyLimit      = 10
	merchantLimit     = 8
	recurringLimit    = 8

	// Recurring detection thresholds: a merchant needs at least
	// recurringMinCount outflows, at least recurringMinCount of them within
	// recurringAmplitude of the mean amount, and at least recurringMinGaps
	// consecutive day-gaps inside [recurringGapMin, recurringGapMax].
	recurringMinCount  = 3
	recurringAmplitude = 0.15
	recurringMinGaps   = 2
	recurringGapMin    = 26
	recurringGapMax    = 35
)

// outflows returns the transactions with negative amounts, preserving order.
func outflows(txns []Transaction) []Transaction {
	out := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Amount < 0 {
			out = append(out, t)
		}
	}
	return out
}

func magnitude(t Transaction) float64 { return math.Abs(t.Amount) }

// daysBetween counts whole days between two canonical dates.
func daysBetween(from, to string) int {
	a, err1 := time.Parse(canonicalDate, from)
	b, err2 := time.Parse(canonicalDate, to)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}

// computeSummary builds the batch totals. Inflow and outflow are accumulated
// as decimals and rounded once at the boundary, so net always equals
// totalIn - totalOut within 2-decimal rounding.
func computeSummary(txns []Transaction) Summary {
	totalIn, totalOut := decimal.Zero, decimal.Zero
	for _, t := range txns {
		d := decimal.NewFromFloat(t.Amount)
		if t.Amount >= 0 {
			totalIn = totalIn.Add(d)
		} else {
			totalOut = totalOut.Add(d.Abs())
		}
	}

	var dateFrom, dateTo string
	for _, t := range txns {
		if dateFrom == "" || t.Date < dateFrom {
			dateFrom = t.Date
		}
		if t.Date > dateTo {
			dateTo = t.Date
		}
	}

	dayCount := 1
	if dateFrom != "" {
		if span := daysBetween(dateFrom, dateTo) + 1; span > 1 {
			dayCount = span
		}
	}

	s := Summary{
		TotalIn:     money.Round2(totalIn),
		TotalOut:    money.Round2(totalOut),
		Net:         money.Round2(totalIn.Sub(totalOut)),
		AvgDailyOut: money.Round2(totalOut.Div(decimal.NewFromInt(int64(dayCount)))),
		DateFrom:    dateFrom,
		DateTo:      dateTo,
	}

	if biggest, ok := biggestOutflow(txns); ok {
		s.BiggestOut = &BiggestOut{
			Amount:      money.Round2Float(magnitude(biggest)),
			Date:        biggest.Date,
			Description: biggest.Description,
		}
	}
	return s
}

// biggestOutflow returns the outflow with the largest magnitude; ties keep
// the earliest transaction in batch order.
func biggestOutflow(txns []Transaction) (Transaction, bool) {
	var best Transaction
	found := false
	for _, t := range txns {
		if t.Amount >= 0 {
			continue
		}
		if !found || magnitude(t) > magnitude(best) {
			best = t
			found = true
		}
	}
	return best, found
}

// percentile computes a nearest-rank percentile over the values using the
// linear index floor((n-1) * p) into the ascending-sorted array. No
// interpolation: with n=1 the sole value is its own threshold.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	idx := int(math.Floor(float64(len(sorted)-1) * p))
	return sorted[idx]
}

// detectAnomalies flags outflows at or above the 95th-percentile magnitude,
// sorted descending by magnitude and capped. Zero-magnitude outflows never
// qualify even when the threshold itself is zero.
func detectAnomalies(out []Transaction) []Transaction {
	mags := make([]float64, len(out))
	for i, t := range out {
		mags[i] = magnitude(t)
	}
	threshold := percentile(mags, anomalyPercentile)

	anomalies := make([]Transaction, 0, anomalyLimit)
	for _, t := range out {
		if m := magnitude(t); m >= threshold && m > 0 {
			anomalies = append(anomalies, t)
		}
	}
	slices.SortStableFunc(anomalies, func(a, b Transaction) int {
		switch {
		case magnitude(a) > magnitude(b):
			return -1
		case magnitude(a) < magnitude(b):
			return 1
		}
		return 0
	})
	if len(anomalies) > anomalyLimit {
		anomalies = anomalies[:anomalyLimit]
	}
	return anomalies
}

// bucket accumulates one aggregation group. Buckets keep their first-seen
// order so that equal-total groups sort deterministically.
type bucket struct {
	key   string
	total decimal.Decimal
	count int
}

// foldBuckets groups transactions by key into an insertion-ordered list of
// running (total magnitude, count) pairs. A pure fold over the batch: no
// shared state beyond the local accumulator.
func foldBuckets(txns []Transaction, key func(Transaction) string) []bucket {
	index := make(map[string]int, len(txns))
	buckets := make([]bucket, 0, len(txns))
	for _, t := range txns {
		k := key(t)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, bucket{key: k, total: decimal.Zero})
		}
		buckets[i].total = buckets[i].total.Add(decimal.NewFromFloat(magnitude(t)))
		buckets[i].count++
	}
	return buckets
}

// aggregateByCategory partitions outflows by category, descending by total.
func aggregateByCategory(out []Transaction) []CategoryTotal {
	buckets := foldBuckets(out, func(t Transaction) string { return t.Category })
	totals := make([]CategoryTotal, 0, len(buckets))
	for _, b := range buckets {
		totals = append(totals, CategoryTotal{Category: b.key, TotalOut: money.Round2(b.total), Count: b.count})
	}
	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		switch {
		case a.TotalOut > b.TotalOut:
			return -1
		case a.TotalOut < b.TotalOut:
			return 1
		}
		return 0
	})
	return totals
}

// aggregateByDay partitions outflows by calendar day, ascending by date.
func aggregateByDay(out []Transaction) []DayTotal {
	buckets := foldBuckets(out, func(t Transaction) string { return t.Date })
	totals := make([]DayTotal, 0, len(buckets))
	for _, b := range buckets {
		totals = append(totals, DayTotal{Date: b.key, TotalOut: money.Round2(b.total)})
	}
	slices.SortStableFunc(totals, func(a, b DayTotal) int {
		return strings.Compare(a.Date, b.Date)
	})
	return totals
}

// aggregateByMerchant partitions outflows by merchant key, descending by
// total, capped at the top entries.
func aggregateByMerchant(out []Transaction) []MerchantTotal {
	buckets := foldBuckets(out, func(t Transaction) string { return t.Merchant })
	totals := make([]MerchantTotal, 0, len(buckets))
	for _, b := range buckets {
		totals = append(totals, MerchantTotal{Merchant: b.key, TotalOut: money.Round2(b.total), Count: b.count})
	}
	slices.SortStableFunc(totals, func(a, b MerchantTotal) int {
		switch {
		case a.TotalOut > b.TotalOut:
			return -1
		case a.TotalOut < b.TotalOut:
			return 1
		}
		return 0
	})
	if len(totals) > merchantLimit {
		totals = totals[:merchantLimit]
	}
	return totals
}

// detectRecurring finds merchants whose outflow history looks like a
// subscription: enough occurrences, amounts clustered around their mean, and
// consecutive charges spaced near-monthly. A merchant failing either check
// produces no candidate.
func detectRecurring(txns []Transaction) []RecurringCandidate {
	index := make(map[string]int)
	var merchants []string
	grouped := make(map[string][]Transaction)
	for _, t := range txns {
		if t.Amount >= 0 {
			continue
		}
		if _, ok := index[t.Merchant]; !ok {
			index[t.Merchant] = len(merchants)
			merchants = append(merchants, t.Merchant)
		}
		grouped[t.Merchant] = append(grouped[t.Merchant], t)
	}

	candidates := make([]RecurringCandidate, 0, recurringLimit)
	for _, merchant := range merchants {
		list := grouped[merchant]
		if len(list) < recurringMinCount {
			continue
		}

		sorted := slices.Clone(list)
		slices.SortStableFunc(sorted, func(a, b Transaction) int {
			return strings.Compare(a.Date, b.Date)
		})

		var sum float64
		for _, t := range sorted {
			sum += magnitude(t)
		}
		avg := sum / float64(len(sorted))

		similar := 0
		for _, t := range sorted {
			if math.Abs(magnitude(t)-avg) <= avg*recurringAmplitude {
				similar++
			}
		}
		if similar < recurringMinCount {
			continue
		}

		gaps := make([]int, 0, len(sorted)-1)
		nearMonthly := 0
		gapSum := 0
		for i := 1; i < len(sorted); i++ {
			gap := daysBetween(sorted[i-1].Date, sorted[i].Date)
			gaps = append(gaps, gap)
			gapSum += gap
			if gap >= recurringGapMin && gap <= recurringGapMax {
				nearMonthly++
			}
		}
		if nearMonthly < recurringMinGaps {
			continue
		}

		candidates = append(candidates, RecurringCandidate{
			Merchant:         merchant,
			ApproxPeriodDays: int(math.Round(float64(gapSum) / float64(len(gaps)))),
			Count:            len(sorted),
			AverageAmount:    money.Round2Float(avg),
			LastDate:         sorted[len(sorted)-1].Date,
		})
	}

	slices.SortStableFunc(candidates, func(a, b RecurringCandidate) int {
		return b.Count - a.Count
	})
	if len(candidates) > recurringLimit {
		candidates = candidates[:recurringLimit]
	}
	return candidates
}
