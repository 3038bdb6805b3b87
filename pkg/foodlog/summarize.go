package foodlog

import (
	"recipe-dashboard/domain"
)

// Summarize totals the nutrients of every log entry against the daily
// targets. Duplicate entries count once per occurrence. Entries missing from
// the catalog are skipped and reported in Missing.
func Summarize(catalog *domain.Catalog, entries []string) domain.NutrientSummary {
	summary := domain.NutrientSummary{
		Entries: make([]domain.SummaryEntry, 0, len(entries)),
		Targets: domain.DailyTargets,
		Missing: make([]domain.MissingRecipeError, 0),
	}

	for _, name := range entries {
		r, ok := catalog.Lookup(name)
		if !ok {
			summary.Missing = append(summary.Missing, domain.MissingRecipeError{Name: name})
			continue
		}
		summary.Entries = append(summary.Entries, domain.SummaryEntry{
			RecipeName: r.Name,
			Nutrients:  r.Nutrients,
		})
		summary.Totals = summary.Totals.Add(r.Nutrients)
	}

	summary.Comparisons = Compare(summary.Totals)
	summary.Empty = len(summary.Entries) == 0
	return summary
}

// Compare lines totals up with DailyTargets, one row per nutrient.
func Compare(totals domain.NutrientValues) []domain.Comparison {
	out := make([]domain.Comparison, 0, domain.NutrientCount)
	for _, n := range domain.Nutrients {
		target := domain.DailyTargets[n]
		c := domain.Comparison{
			Nutrient: n.Key(),
			Unit:     n.Unit(),
			Total:    totals[n],
			Target:   target,
			Over:     totals[n] > target,
		}
		if target > 0 {
			c.Percent = totals[n] / target * 100
		}
		out = append(out, c)
	}
	return out
}
