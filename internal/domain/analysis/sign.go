package analysis

import "math"

// interpretSigns makes the single batch-wide sign decision and returns the
// interpretation label. If any normalized amount is negative the source
// already encodes direction and amounts are left untouched. Otherwise the
// source is assumed to report unsigned spend magnitudes and every amount is
// replaced by its negated absolute value. Zero amounts stay untouched so they
// never become negative zero in the JSON output.
func interpretSigns(txns []Transaction) string {
	for _, t := range txns {
		if t.Amount < 0 {
			return InterpretationSigned
		}
	}
	for i := range txns {
		if txns[i].Amount != 0 {
			txns[i].Amount = -math.Abs(txns[i].Amount)
		}
	}
	return InterpretationAllPositiveSpend
}
