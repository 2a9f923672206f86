package rules

import (
	"fmt"

	"owaspcheck/internal/report"
)

// Catalog returns the fixed, ordered rule catalog for repository targets.
// Category and rule order is the rendered report order.
func Catalog() []Category {
	return []Category{
		generalCategory(),
		documentationCategory(),
		codeQualityCategory(),
		securityCategory(),
		cicdCategory(),
		testingCategory(),
		performanceCategory(),
		loggingCategory(),
		communityCategory(),
		legalCategory(),
	}
}

// TotalWeight sums all rule weights across the catalog.
func TotalWeight(cats []Category) int {
	total := 0
	for _, c := range cats {
		for _, r := range c.Rules {
			total += r.Weight
		}
	}
	return total
}

// Validate asserts the catalog's structural invariants: positive weights,
// unique (category, name) pairs, and a total weight equal to the report's
// fixed maximum. Adding or removing a rule without rebalancing weights
// silently changes what "100%" means, so this runs at engine construction.
func Validate() error {
	cats := Catalog()
	seen := make(map[string]struct{})
	for _, c := range cats {
		if c.Name == "" {
			return fmt.Errorf("catalog: category with empty name")
		}
		for _, r := range c.Rules {
			if r.Name == "" {
				return fmt.Errorf("catalog: rule with empty name in category %q", c.Name)
			}
			if r.Weight <= 0 {
				return fmt.Errorf("catalog: rule %q in category %q has non-positive weight %d", r.Name, c.Name, r.Weight)
			}
			if r.Eval == nil {
				return fmt.Errorf("catalog: rule %q in category %q has nil eval", r.Name, c.Name)
			}
			key := c.Name + "\x00" + r.Name
			if _, dup := seen[key]; dup {
				return fmt.Errorf("catalog: duplicate rule %q in category %q", r.Name, c.Name)
			}
			seen[key] = struct{}{}
		}
	}
	if total := TotalWeight(cats); total != report.MaxScore {
		return fmt.Errorf("catalog: rule weights sum to %d, want %d", total, report.MaxScore)
	}
	return nil
}
