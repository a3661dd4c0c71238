package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"ISO", "2026-01-31", "2026-01-31"},
		{"US slash", "01/31/2026", "2026-01-31"},
		{"day first slash", "31/01/2026", "2026-01-31"},
		{"ambiguous slash resolves month first", "03/04/2026", "2026-03-04"},
		{"year first slash", "2026/01/31", "2026-01-31"},
		{"month name", "Jan 31, 2026", "2026-01-31"},
		{"permissive fallback", "2026-01-31T10:15:00Z", "2026-01-31"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := normalizeDate(tc.raw)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		_, ok := normalizeDate("not a date")
		assert.False(t, ok)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, ok := normalizeDate("   ")
		assert.False(t, ok)
	})
}

func TestNormalizeAmount(t *testing.T) {
	t.Run("plain and signed values", func(t *testing.T) {
		d, ok := normalizeAmount("-190")
		require.True(t, ok)
		assert.Equal(t, "-190", d.String())
	})

	t.Run("strips currency symbols and separators", func(t *testing.T) {
		d, ok := normalizeAmount("₱1,234.56")
		require.True(t, ok)
		assert.Equal(t, "1234.56", d.String())
	})

	t.Run("rejects values without digits", func(t *testing.T) {
		_, ok := normalizeAmount("pending")
		assert.False(t, ok)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, ok := normalizeAmount("")
		assert.False(t, ok)
	})

	t.Run("rejects leftovers that are not a number", func(t *testing.T) {
		_, ok := normalizeAmount("1.2.3")
		assert.False(t, ok)
	})
}

func TestNormalizerNormalize(t *testing.T) {
	rules := newRuleEngine()

	build := func(headers []string) *normalizer {
		return newNormalizer(headers, DetectColumns(headers), rules)
	}

	t.Run("produces a canonical transaction", func(t *testing.T) {
		n := build([]string{"date", "description", "amount"})

		tx, ok := n.Normalize(RawRow{
			"date":        "01/15/2026",
			"description": "Starbucks 0421 BGC",
			"amount":      "-190.00",
		})

		require.True(t, ok)
		assert.NotEmpty(t, tx.ID)
		assert.Equal(t, "2026-01-15", tx.Date)
		assert.Equal(t, "Starbucks 0421 BGC", tx.Description)
		assert.Equal(t, -190.0, tx.Amount)
		assert.Equal(t, "Food", tx.Category)
		assert.Equal(t, "STARBUCKS BGC", tx.Merchant)
	})

	t.Run("each transaction gets a fresh id", func(t *testing.T) {
		n := build([]string{"date", "description", "amount"})
		row := RawRow{"date": "2026-01-15", "description": "Coffee", "amount": "-10"}

		a, _ := n.Normalize(row)
		b, _ := n.Normalize(row)

		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("falls back to positional columns", func(t *testing.T) {
		headers := []string{"when", "what", "amount"}
		n := build(headers)

		tx, ok := n.Normalize(RawRow{
			"when":   "2026-01-15",
			"what":   "GRAB RIDE",
			"amount": "-240",
		})

		require.True(t, ok)
		assert.Equal(t, "2026-01-15", tx.Date)
		assert.Equal(t, "GRAB RIDE", tx.Description)
	})

	t.Run("drops rows with a bad date", func(t *testing.T) {
		n := build([]string{"date", "description", "amount"})

		_, ok := n.Normalize(RawRow{"date": "soon", "description": "Coffee", "amount": "-10"})

		assert.False(t, ok)
	})

	t.Run("drops rows with an empty description", func(t *testing.T) {
		n := build([]string{"date", "description", "amount"})

		_, ok := n.Normalize(RawRow{"date": "2026-01-15", "description": "  ", "amount": "-10"})

		assert.False(t, ok)
	})

	t.Run("drops rows with an unparseable amount", func(t *testing.T) {
		n := build([]string{"date", "description", "amount"})

		_, ok := n.Normalize(RawRow{"date": "2026-01-15", "description": "Coffee", "amount": "n/a"})

		assert.False(t, ok)
	})

	t.Run("combines debit and credit columns", func(t *testing.T) {
		headers := []string{"date", "narration", "debit", "credit"}
		n := build(headers)

		out, ok := n.Normalize(RawRow{
			"date": "2026-01-15", "narration": "ATM WITHDRAWAL", "debit": "500", "credit": "",
		})
		require.True(t, ok)
		assert.Equal(t, -500.0, out.Amount)

		in, ok := n.Normalize(RawRow{
			"date": "2026-01-16", "narration": "SALARY CREDIT", "debit": "", "credit": "45000",
		})
		require.True(t, ok)
		assert.Equal(t, 45000.0, in.Amount)
	})

	t.Run("debit cells are treated as magnitudes", func(t *testing.T) {
		headers := []string{"date", "narration", "debit", "credit"}
		n := build(headers)

		tx, ok := n.Normalize(RawRow{
			"date": "2026-01-15", "narration": "ATM WITHDRAWAL", "debit": "-500", "credit": "",
		})

		require.True(t, ok)
		assert.Equal(t, -500.0, tx.Amount)
	})

	t.Run("unparseable debit or credit side counts as zero", func(t *testing.T) {
		headers := []string{"date", "narration", "debit", "credit"}
		n := build(headers)

		tx, ok := n.Normalize(RawRow{
			"date": "2026-01-15", "narration": "ADJUSTMENT", "debit": "n/a", "credit": "100",
		})

		require.True(t, ok)
		assert.Equal(t, 100.0, tx.Amount)
	})

	t.Run("drops rows with no amount source at all", func(t *testing.T) {
		headers := []string{"when", "what", "note"}
		n := newNormalizer(headers, DetectColumns(headers), rules)

		_, ok := n.Normalize(RawRow{"when": "2026-01-15", "what": "Coffee", "note": "x"})

		assert.False(t, ok)
	})
}
