package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretSigns(t *testing.T) {
	t.Run("any negative amount means signed", func(t *testing.T) {
		txns := []Transaction{
			{Amount: 100},
			{Amount: -50},
			{Amount: 200},
		}

		got := interpretSigns(txns)

		assert.Equal(t, InterpretationSigned, got)
		assert.Equal(t, 100.0, txns[0].Amount, "signed batches are untouched")
	})

	t.Run("all positive amounts flip to spend", func(t *testing.T) {
		txns := []Transaction{
			{Amount: 100},
			{Amount: 200},
		}

		got := interpretSigns(txns)

		assert.Equal(t, InterpretationAllPositiveSpend, got)
		assert.Equal(t, -100.0, txns[0].Amount)
		assert.Equal(t, -200.0, txns[1].Amount)
	})

	t.Run("zero amounts stay positive zero", func(t *testing.T) {
		txns := []Transaction{{Amount: 0}, {Amount: 100}}

		interpretSigns(txns)

		assert.False(t, math.Signbit(txns[0].Amount))
	})

	t.Run("empty batch reads as all-positive spend", func(t *testing.T) {
		assert.Equal(t, InterpretationAllPositiveSpend, interpretSigns(nil))
	})
}
