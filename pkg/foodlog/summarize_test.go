package foodlog

import (
	"testing"

	"recipe-dashboard/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	catalog, err := domain.NewCatalog([]domain.Recipe{
		{Name: "Curry", Category: "Main", Nutrients: domain.NutrientValues{650, 20, 18, 80, 5, 100, 10, 2, 50}},
		{Name: "Salad", Category: "Side", Nutrients: domain.NutrientValues{120, 3, 5, 10, 4, 300, 40, 1, 60}},
	})
	require.NoError(t, err)
	return catalog
}

func entryNames(s domain.NutrientSummary) []string {
	out := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		out = append(out, e.RecipeName)
	}
	return out
}

func TestSummarizeCountsDuplicates(t *testing.T) {
	summary := Summarize(testCatalog(t), []string{"Curry", "Salad", "Curry"})

	assert.Equal(t, 1420.0, summary.Totals[domain.Calorie])
	assert.Equal(t, 43.0, summary.Totals[domain.Protein])
	assert.Equal(t, 500.0, summary.Totals[domain.VitaminA])
	assert.Equal(t, []string{"Curry", "Salad", "Curry"}, entryNames(summary))
	assert.Empty(t, summary.Missing)
	assert.False(t, summary.Empty)
}

func TestSummarizeSkipsMissingRecipes(t *testing.T) {
	summary := Summarize(testCatalog(t), []string{"Curry", "Tofu"})

	assert.Equal(t, 650.0, summary.Totals[domain.Calorie])
	assert.Len(t, summary.Entries, 1)
	require.Len(t, summary.Missing, 1)
	assert.Equal(t, domain.MissingRecipeError{Name: "Tofu"}, summary.Missing[0])
	assert.Equal(t, []string{"Tofu"}, summary.MissingNames())
	assert.EqualError(t, summary.Missing[0], `recipe "Tofu" is not in the catalog`)
}

func TestSummarizeEmptyLog(t *testing.T) {
	summary := Summarize(testCatalog(t), nil)

	assert.True(t, summary.Empty)
	assert.Empty(t, summary.Entries)
	assert.Equal(t, domain.NutrientValues{}, summary.Totals)
	assert.Equal(t, domain.DailyTargets, summary.Targets)
	assert.Len(t, summary.Comparisons, domain.NutrientCount)
}

func TestSummarizeEmptyCatalog(t *testing.T) {
	catalog, err := domain.NewCatalog(nil)
	require.NoError(t, err)

	summary := Summarize(catalog, []string{"Curry"})
	assert.True(t, summary.Empty)
	assert.Equal(t, []string{"Curry"}, summary.MissingNames())
}

func TestSummarizeTotalsMatchLookupSum(t *testing.T) {
	catalog := testCatalog(t)
	log := []string{"Salad", "Ghost", "Curry", "Salad", "Curry", "Salad"}

	summary := Summarize(catalog, log)
	for _, n := range domain.Nutrients {
		var want float64
		for _, name := range log {
			if r, ok := catalog.Lookup(name); ok {
				want += r.Nutrients[n]
			}
		}
		assert.InDelta(t, want, summary.Totals[n], 1e-9, n.Key())
	}
}

func TestCompare(t *testing.T) {
	totals := domain.NutrientValues{domain.Calorie: 2500, domain.Protein: 30}
	comparisons := Compare(totals)

	require.Len(t, comparisons, domain.NutrientCount)
	assert.Equal(t, domain.Comparison{
		Nutrient: "calorie", Unit: "kcal", Total: 2500, Target: 2000, Percent: 125, Over: true,
	}, comparisons[domain.Calorie])
	assert.Equal(t, domain.Comparison{
		Nutrient: "protein", Unit: "g", Total: 30, Target: 60, Percent: 50, Over: false,
	}, comparisons[domain.Protein])
}
