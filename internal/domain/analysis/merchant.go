package analysis

import "strings"

// merchantKeyTokens caps how much of a description survives into the
// grouping key.
const merchantKeyTokens = 3

// merchantKey derives a short grouping label from a description: uppercase,
// digits stripped, whitespace collapsed, first three tokens. It is a lossy
// heuristic key for aggregation, not a verified merchant identity:
// "Netflix 0421" and "NETFLIX 0933" both collapse to "NETFLIX".
func merchantKey(description string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, strings.ToUpper(description))

	tokens := strings.Fields(cleaned)
	if len(tokens) > merchantKeyTokens {
		tokens = tokens[:merchantKeyTokens]
	}
	return strings.Join(tokens, " ")
}
