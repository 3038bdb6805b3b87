package recipe

import (
	"cmp"
	"slices"

	"recipe-dashboard/domain"
)

type rankRule struct {
	key        func(v domain.NutrientValues) float64
	derived    string // non-empty when key is a composite column
	descending bool
	// tieBreak orders equal keys; nil keeps input order.
	tieBreak func(a, b domain.NutrientValues) int
}

var rankRules = map[domain.RankCriterion]rankRule{
	domain.RankCalorieAsc: {
		key: func(v domain.NutrientValues) float64 { return v[domain.Calorie] },
	},
	domain.RankProteinDesc: {
		key:        func(v domain.NutrientValues) float64 { return v[domain.Protein] },
		descending: true,
	},
	domain.RankBalancedFatAsc: {
		key:     func(v domain.NutrientValues) float64 { return v[domain.Fat] + v[domain.Carbohydrate] },
		derived: "fat_carbohydrate",
		tieBreak: func(a, b domain.NutrientValues) int {
			return cmp.Compare(b[domain.Protein], a[domain.Protein])
		},
	},
	domain.RankVitaminDesc: {
		key:        func(v domain.NutrientValues) float64 { return v[domain.VitaminA] + v[domain.VitaminC] },
		derived:    "vitamin_a_c",
		descending: true,
	},
}

// RankOrder is a criterion together with its sort direction.
type RankOrder struct {
	Criterion  domain.RankCriterion
	Descending bool
}

// OrderFor returns the canonical direction of a criterion.
func OrderFor(criterion domain.RankCriterion) (RankOrder, error) {
	rule, ok := rankRules[criterion]
	if !ok {
		return RankOrder{}, domain.ErrUnknownCriterion
	}
	return RankOrder{Criterion: criterion, Descending: rule.descending}, nil
}

func (o RankOrder) Reverse() RankOrder {
	o.Descending = !o.Descending
	return o
}

// Rank sorts recipes by the criterion's canonical direction and keeps the
// first topN. The input slice is not modified.
func Rank(recipes []domain.Recipe, criterion domain.RankCriterion, topN int) ([]domain.RankedRecipe, error) {
	order, err := OrderFor(criterion)
	if err != nil {
		return nil, err
	}
	return RankBy(recipes, order, topN)
}

// RankBy is Rank with an explicit direction. The sort is stable; the
// criterion's tie-break, when defined, applies before input order.
func RankBy(recipes []domain.Recipe, order RankOrder, topN int) ([]domain.RankedRecipe, error) {
	rule, ok := rankRules[order.Criterion]
	if !ok {
		return nil, domain.ErrUnknownCriterion
	}

	ranked := make([]domain.RankedRecipe, 0, len(recipes))
	for _, r := range recipes {
		rr := domain.RankedRecipe{Recipe: r}
		if rule.derived != "" {
			rr.Derived = &domain.DerivedColumn{Name: rule.derived, Value: rule.key(r.Nutrients)}
		}
		ranked = append(ranked, rr)
	}

	slices.SortStableFunc(ranked, func(a, b domain.RankedRecipe) int {
		c := cmp.Compare(rule.key(a.Nutrients), rule.key(b.Nutrients))
		if order.Descending {
			c = -c
		}
		if c == 0 && rule.tieBreak != nil {
			c = rule.tieBreak(a.Nutrients, b.Nutrients)
		}
		return c
	})

	if topN <= 0 {
		return []domain.RankedRecipe{}, nil
	}
	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked, nil
}
