package recipe

import (
	"strings"

	"recipe-dashboard/domain"
)

// Filter keeps the recipes whose category is selected, whose constrained
// nutrients fall inside their ranges, and whose name contains the query
// (case-insensitive). Input order is preserved. An empty category set
// selects nothing.
func Filter(recipes []domain.Recipe, criteria domain.FilterCriteria) ([]domain.Recipe, error) {
	for _, n := range domain.Nutrients {
		r, ok := criteria.Ranges[n]
		if !ok {
			continue
		}
		if err := r.Validate(n); err != nil {
			return nil, err
		}
	}

	query := strings.ToLower(criteria.Query)
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if matches(r, criteria, query) {
			out = append(out, r)
		}
	}
	return out, nil
}

func matches(r domain.Recipe, criteria domain.FilterCriteria, query string) bool {
	if !criteria.Categories.Has(r.Category) {
		return false
	}
	for n, rng := range criteria.Ranges {
		if !rng.Contains(r.Nutrients[n]) {
			return false
		}
	}
	if query != "" && !strings.Contains(strings.ToLower(r.Name), query) {
		return false
	}
	return true
}

// Categories returns the distinct categories in first-seen order.
func Categories(recipes []domain.Recipe) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range recipes {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	return out
}

// Bounds returns the observed min and max of every nutrient. All bounds are
// zero when recipes is empty.
func Bounds(recipes []domain.Recipe) []domain.NutrientBound {
	out := make([]domain.NutrientBound, 0, domain.NutrientCount)
	for _, n := range domain.Nutrients {
		b := domain.NutrientBound{Nutrient: n.Key(), Unit: n.Unit()}
		for i, r := range recipes {
			v := r.Nutrients[n]
			if i == 0 || v < b.Min {
				b.Min = v
			}
			if i == 0 || v > b.Max {
				b.Max = v
			}
		}
		out = append(out, b)
	}
	return out
}

// AllCategories selects every category present in recipes.
func AllCategories(recipes []domain.Recipe) domain.CategorySet {
	return domain.NewCategorySet(Categories(recipes)...)
}
