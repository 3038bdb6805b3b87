package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessRankRecipes     = "success rank recipes"
	MessageSuccessGetCategories   = "success get categories"
	MessageSuccessGetBounds       = "success get nutrient bounds"
	MessageSuccessGetTargets      = "success get daily targets"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedRankRecipes     = "failed to rank recipes"

	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrDuplicateRecipe  = errors.New("duplicate recipe name")
	ErrEmptyCatalog     = errors.New("catalog has no recipes")
	ErrUnknownCriterion = errors.New("unknown ranking criterion")
)

// InvalidRangeError rejects a nutrient range whose bounds are not usable numbers.
type InvalidRangeError struct {
	Nutrient string
	Reason   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range for %s: %s", e.Nutrient, e.Reason)
}

type (
	Recipe struct {
		Name      string         `json:"name"`
		Category  string         `json:"category"`
		ImageURL  string         `json:"image_url,omitempty"`
		Nutrients NutrientValues `json:"nutrients"`
	}

	// Range is a closed interval. Min > Max matches nothing.
	Range struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}

	CategorySet map[string]struct{}

	FilterCriteria struct {
		Categories CategorySet
		Ranges     map[Nutrient]Range
		Query      string
	}

	DerivedColumn struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}

	RankedRecipe struct {
		Recipe
		Derived *DerivedColumn `json:"derived,omitempty"`
	}

	RankRequest struct {
		Criterion string `json:"criterion" validate:"omitempty,rank_criterion"`
		Top       int    `json:"top" validate:"min=0"`
	}

	RecipeListResponse struct {
		Recipes []Recipe `json:"recipes"`
		Total   int      `json:"total"`
	}

	RankingResponse struct {
		Criterion  RankCriterion  `json:"criterion"`
		Descending bool           `json:"descending"`
		Recipes    []RankedRecipe `json:"recipes"`
		Total      int            `json:"total"`
	}
)

func NewCategorySet(categories ...string) CategorySet {
	s := make(CategorySet, len(categories))
	for _, c := range categories {
		s[c] = struct{}{}
	}
	return s
}

func (s CategorySet) Has(category string) bool {
	_, ok := s[category]
	return ok
}

// Validate reports NaN or infinite bounds. Inverted bounds are legal.
func (r Range) Validate(n Nutrient) error {
	switch {
	case math.IsNaN(r.Min) || math.IsNaN(r.Max):
		return &InvalidRangeError{Nutrient: n.Key(), Reason: "bound is not a number"}
	case math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0):
		return &InvalidRangeError{Nutrient: n.Key(), Reason: "bound is infinite"}
	}
	return nil
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// RankCriterion names one of the fixed ranking rules.
type RankCriterion string

const (
	RankCalorieAsc     RankCriterion = "calorie_asc"
	RankProteinDesc    RankCriterion = "protein_desc"
	RankBalancedFatAsc RankCriterion = "balanced_fat_asc"
	RankVitaminDesc    RankCriterion = "vitamin_desc"
)

var RankCriteria = []RankCriterion{
	RankCalorieAsc,
	RankProteinDesc,
	RankBalancedFatAsc,
	RankVitaminDesc,
}

func ParseRankCriterion(s string) (RankCriterion, error) {
	for _, c := range RankCriteria {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
}

// Catalog is the read-only recipe table for a session. Build it with NewCatalog.
type Catalog struct {
	recipes []Recipe
	index   map[string]int
}

func NewCatalog(recipes []Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes: make([]Recipe, 0, len(recipes)),
		index:   make(map[string]int, len(recipes)),
	}
	for _, r := range recipes {
		if _, ok := c.index[r.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRecipe, r.Name)
		}
		c.index[r.Name] = len(c.recipes)
		c.recipes = append(c.recipes, r)
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.recipes)
}

func (c *Catalog) IsEmpty() bool {
	return len(c.recipes) == 0
}

// Recipes returns a copy of the catalog rows in load order.
func (c *Catalog) Recipes() []Recipe {
	out := make([]Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

func (c *Catalog) Lookup(name string) (Recipe, bool) {
	i, ok := c.index[name]
	if !ok {
		return Recipe{}, false
	}
	return c.recipes[i], true
}
