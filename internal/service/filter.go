package service

import "voicemart-be/internal/entity"

// BudgetCheck is the result of comparing a cart total to a budget.
type BudgetCheck struct {
	Within bool
	// Remaining is budget minus total when within; Overage is the positive
	// amount over budget otherwise.
	Remaining float64
	Overage   float64
}

// WithinBudget compares a total against a budget and reports the remaining
// or overage amount, both rounded to cents.
func WithinBudget(total, budget float64) BudgetCheck {
	diff := entity.RoundMoney(budget - total)
	if diff >= 0 {
		return BudgetCheck{Within: true, Remaining: diff}
	}
	return BudgetCheck{Within: false, Overage: -diff}
}

// MatchesRestrictions is conjunctive: the item passes only if every
// restriction appears in its tag set. An item tagged just "vegetarian" fails
// a "vegan" restriction.
func MatchesRestrictions(item *entity.CatalogItem, restrictions []string) bool {
	for _, r := range restrictions {
		if !item.HasTag(r) {
			return false
		}
	}
	return true
}
