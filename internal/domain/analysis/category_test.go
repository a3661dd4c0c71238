package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	rules := newRuleEngine()

	t.Run("matches one rule per category", func(t *testing.T) {
		cases := []struct {
			description string
			want        string
		}{
			{"JOLLIBEE MOA", "Food"},
			{"GRAB RIDE 7AM", "Transport"},
			{"MERALCO BILL JAN", "Bills"},
			{"LAZADA ORDER 991", "Shopping"},
			{"WALTERMART QC", "Groceries"},
			{"SPOTIFY PREMIUM", "Entertainment"},
			{"MERCURY PHARMACY", "Health"},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.want, rules.Categorize(tc.description, -100), tc.description)
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		assert.Equal(t, "Food", rules.Categorize("Starbucks BGC", -190))
	})

	t.Run("rule order breaks keyword overlaps", func(t *testing.T) {
		// "grabfood" also contains the Transport keyword "grab"; the Food
		// rule comes first so it wins.
		assert.Equal(t, "Food", rules.Categorize("GRABFOOD DELIVERY", -420))
		assert.Equal(t, "Transport", rules.Categorize("GRAB CAR TO MAKATI", -240))
	})

	t.Run("income requires a positive amount", func(t *testing.T) {
		assert.Equal(t, "Income", rules.Categorize("SALARY JAN", 45000))
		assert.Equal(t, "Other", rules.Categorize("SALARY DEDUCTION", -500))
	})

	t.Run("negative income keywords fall through to spending rules", func(t *testing.T) {
		assert.Equal(t, "Bills", rules.Categorize("INCOME TAX BILL", -1200))
	})

	t.Run("income outranks spending rules", func(t *testing.T) {
		assert.Equal(t, "Income", rules.Categorize("SALARY TRANSFER GRAB PH", 30000))
	})

	t.Run("no match falls back to Other", func(t *testing.T) {
		assert.Equal(t, "Other", rules.Categorize("MISC 123", -50))
	})
}

func TestCategories(t *testing.T) {
	assert.Equal(t, "Income", Categories[0])
	assert.Equal(t, "Other", Categories[len(Categories)-1])
	assert.Contains(t, Categories, "Groceries")
}
