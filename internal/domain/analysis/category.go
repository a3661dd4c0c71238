package analysis

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// CategoryOther is assigned when no rule matches.
const CategoryOther = "Other"

// CategoryIncome is assigned to positive-amount transactions matching the
// income trigger keywords. It outranks every spending rule.
const CategoryIncome = "Income"

// categoryRule is one ordered spending rule: a category name plus its
// keyword set, matched case-insensitively by substring containment. The
// keyword sets are part of the external contract (consuming dashboards
// depend on them) and must not be edited casually.
type categoryRule struct {
	Category string
	Keywords []string
}

var incomeKeywords = []string{"salary", "payroll", "income", "transfer in", "cash in"}

var categoryRules = []categoryRule{
	{"Food", []string{"foodpanda", "grabfood", "restaurant", "jollibee", "mcdo", "starbucks", "coffee", "milktea"}},
	{"Transport", []string{"grab", "uber", "angkas", "joyride", "gas", "petrol", "shell", "caltex", "toll"}},
	{"Bills", []string{"meralco", "pldt", "globe", "converge", "water", "electric", "internet", "bill"}},
	{"Shopping", []string{"shopee", "lazada", "amazon", "mall", "department store"}},
	{"Groceries", []string{"supermarket", "grocery", "savemore", "sm supermarket", "waltermart"}},
	{"Entertainment", []string{"netflix", "spotify", "steam", "disney", "youtube"}},
	{"Health", []string{"pharmacy", "hospital", "clinic", "drug"}},
}

// Categories is the closed category set, in rule order, with Income first and
// Other last.
var Categories = func() []string {
	out := []string{CategoryIncome}
	for _, r := range categoryRules {
		out = append(out, r.Category)
	}
	return append(out, CategoryOther)
}()

// ruleEngine matches descriptions against all category keywords in a single
// pass using an Aho-Corasick automaton, then resolves the winner by rule
// order. Since every keyword hit is collected before ranking, the result is
// identical to testing each rule's alternation in order and taking the first
// match: "grabfood" lands on Food even though "grab" also hits Transport.
type ruleEngine struct {
	matcher *ahocorasick.Matcher
	ranks   []ruleRank
}

// ruleRank ties a pattern index back to its rule ordinal and category.
// Ordinal 0 is the income trigger; spending rules start at 1.
type ruleRank struct {
	ordinal  int
	category string
}

// newRuleEngine precomputes the automaton. The pattern order feeds the
// matcher's index space, so ranks must be appended in lockstep.
func newRuleEngine() *ruleEngine {
	var patterns [][]byte
	var ranks []ruleRank

	for _, kw := range incomeKeywords {
		patterns = append(patterns, []byte(kw))
		ranks = append(ranks, ruleRank{ordinal: 0, category: CategoryIncome})
	}
	for i, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			patterns = append(patterns, []byte(kw))
			ranks = append(ranks, ruleRank{ordinal: i + 1, category: rule.Category})
		}
	}

	return &ruleEngine{
		matcher: ahocorasick.NewMatcher(patterns),
		ranks:   ranks,
	}
}

// Categorize assigns a category to a description. The income trigger only
// applies to positive amounts; a negative "INCOME TAX BILL" still falls
// through to the spending rules.
func (e *ruleEngine) Categorize(description string, amount float64) string {
	hits := e.matcher.Match([]byte(strings.ToLower(description)))
	if len(hits) == 0 {
		return CategoryOther
	}

	best := -1
	category := CategoryOther
	for _, idx := range hits {
		if idx < 0 || idx >= len(e.ranks) {
			continue
		}
		rank := e.ranks[idx]
		if rank.ordinal == 0 && amount <= 0 {
			continue
		}
		if best == -1 || rank.ordinal < best {
			best = rank.ordinal
			category = rank.category
		}
	}
	return category
}
