package recipe

import (
	"slices"
	"testing"

	"recipe-dashboard/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedNames(ranked []domain.RankedRecipe) []string {
	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Name)
	}
	return out
}

func unrank(ranked []domain.RankedRecipe) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Recipe)
	}
	return out
}

func TestRankExampleScenario(t *testing.T) {
	got, err := Rank(sampleRecipes()[:2], domain.RankProteinDesc, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Curry"}, rankedNames(got))
}

func TestRank(t *testing.T) {
	tests := []struct {
		criterion domain.RankCriterion
		want      []string
	}{
		{domain.RankCalorieAsc, []string{"Miso Soup", "Salad", "Tofu Steak", "Curry", "Chicken Curry Rice"}},
		// Curry and Tofu Steak tie on protein; input order decides
		{domain.RankProteinDesc, []string{"Chicken Curry Rice", "Curry", "Tofu Steak", "Miso Soup", "Salad"}},
		{domain.RankBalancedFatAsc, []string{"Miso Soup", "Salad", "Tofu Steak", "Curry", "Chicken Curry Rice"}},
		{domain.RankVitaminDesc, []string{"Salad", "Curry", "Chicken Curry Rice", "Miso Soup", "Tofu Steak"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.criterion), func(t *testing.T) {
			got, err := Rank(sampleRecipes(), tt.criterion, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rankedNames(got))
		})
	}
}

func TestRankBalancedFatTieBreaksOnProtein(t *testing.T) {
	recipes := []domain.Recipe{
		{Name: "Low Protein", Category: "Main", Nutrients: nutrients(300, 5, 10, 20, 0, 0, 0, 0, 0)},
		{Name: "High Protein", Category: "Main", Nutrients: nutrients(300, 25, 20, 10, 0, 0, 0, 0, 0)},
		{Name: "Mid Protein", Category: "Main", Nutrients: nutrients(300, 15, 15, 15, 0, 0, 0, 0, 0)},
	}

	got, err := Rank(recipes, domain.RankBalancedFatAsc, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"High Protein", "Mid Protein", "Low Protein"}, rankedNames(got))
	for _, r := range got {
		require.NotNil(t, r.Derived)
		assert.Equal(t, "fat_carbohydrate", r.Derived.Name)
		assert.Equal(t, 30.0, r.Derived.Value)
	}
}

func TestRankDerivedColumn(t *testing.T) {
	source := sampleRecipes()
	before := slices.Clone(source)

	got, err := Rank(source, domain.RankVitaminDesc, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Derived)
	assert.Equal(t, domain.DerivedColumn{Name: "vitamin_a_c", Value: 340}, *got[0].Derived)
	assert.Equal(t, before, source, "source must not be modified")

	plain, err := Rank(source, domain.RankCalorieAsc, 1)
	require.NoError(t, err)
	assert.Nil(t, plain[0].Derived)
}

func TestRankTopN(t *testing.T) {
	source := sampleRecipes()

	for _, n := range []int{0, 1, 3, 5, 50} {
		got, err := Rank(source, domain.RankCalorieAsc, n)
		require.NoError(t, err)
		assert.Len(t, got, min(n, len(source)))
	}

	got, err := Rank(source, domain.RankCalorieAsc, -1)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Rank(nil, domain.RankProteinDesc, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRankIsIdempotent(t *testing.T) {
	for _, c := range domain.RankCriteria {
		t.Run(string(c), func(t *testing.T) {
			once, err := Rank(sampleRecipes(), c, 10)
			require.NoError(t, err)
			twice, err := Rank(unrank(once), c, 10)
			require.NoError(t, err)
			assert.Equal(t, rankedNames(once), rankedNames(twice))
		})
	}
}

func TestRankReverseOrder(t *testing.T) {
	order, err := OrderFor(domain.RankCalorieAsc)
	require.NoError(t, err)
	assert.False(t, order.Descending)

	asc, err := RankBy(sampleRecipes(), order, 10)
	require.NoError(t, err)
	desc, err := RankBy(sampleRecipes(), order.Reverse(), 10)
	require.NoError(t, err)

	reversed := rankedNames(desc)
	slices.Reverse(reversed)
	assert.Equal(t, rankedNames(asc), reversed)
}

func TestRankUnknownCriterion(t *testing.T) {
	_, err := Rank(sampleRecipes(), domain.RankCriterion("sugar_desc"), 3)
	assert.ErrorIs(t, err, domain.ErrUnknownCriterion)

	_, err = OrderFor("nope")
	assert.ErrorIs(t, err, domain.ErrUnknownCriterion)
}
