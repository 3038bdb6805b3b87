package domain

import "fmt"

var (
	MessageSuccessLogRecipe  = "recipe logged successfully"
	MessageSuccessClearLog   = "food log cleared successfully"
	MessageSuccessGetLog     = "success get food log"
	MessageSuccessGetSummary = "success get nutrient summary"

	MessageFailedLogRecipe  = "failed to log recipe"
	MessageFailedClearLog   = "failed to clear food log"
	MessageFailedGetLog     = "failed to get food log"
	MessageFailedGetSummary = "failed to get nutrient summary"
)

// MissingRecipeError marks a food log entry whose name is not in the catalog.
type MissingRecipeError struct {
	Name string `json:"name"`
}

func (e MissingRecipeError) Error() string {
	return fmt.Sprintf("recipe %q is not in the catalog", e.Name)
}

// FoodLog is an ordered list of eaten recipe names. Duplicates are kept.
// It is not safe for concurrent use; each session owns one.
type FoodLog struct {
	entries []string
}

func NewFoodLog() *FoodLog {
	return &FoodLog{}
}

func (l *FoodLog) Append(name string) {
	l.entries = append(l.entries, name)
}

func (l *FoodLog) Clear() {
	l.entries = nil
}

func (l *FoodLog) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the log in insertion order.
func (l *FoodLog) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

type (
	LogRecipeRequest struct {
		RecipeName string `json:"recipe_name" validate:"required,max=200"`
	}

	FoodLogResponse struct {
		Entries []string `json:"entries"`
		Total   int      `json:"total"`
	}

	SummaryEntry struct {
		RecipeName string         `json:"recipe_name"`
		Nutrients  NutrientValues `json:"nutrients"`
	}

	Comparison struct {
		Nutrient string  `json:"nutrient"`
		Unit     string  `json:"unit"`
		Total    float64 `json:"total"`
		Target   float64 `json:"target"`
		Percent  float64 `json:"percent"`
		Over     bool    `json:"over"`
	}

	NutrientSummary struct {
		Entries     []SummaryEntry       `json:"entries"`
		Totals      NutrientValues       `json:"totals"`
		Targets     NutrientValues       `json:"targets"`
		Comparisons []Comparison         `json:"comparisons"`
		Missing     []MissingRecipeError `json:"missing"`
		Empty       bool                 `json:"empty"`
	}
)

// MissingNames lists the skipped entries in log order.
func (s NutrientSummary) MissingNames() []string {
	out := make([]string, 0, len(s.Missing))
	for _, m := range s.Missing {
		out = append(out, m.Name)
	}
	return out
}
