package handlers

import (
	"math"
	"strconv"
	"strings"

	"recipe-dashboard/domain"

	"github.com/gofiber/fiber/v2"
)

// parseFilterCriteria reads the filter query string:
//
//	category=Main&category=Side  repeatable; absent selects every category
//	q=curry                      case-insensitive name query
//	calorie=0,800                inclusive range; either side may be empty
func parseFilterCriteria(c *fiber.Ctx, allCategories func() []string) (domain.FilterCriteria, error) {
	args := c.Context().QueryArgs()

	criteria := domain.FilterCriteria{
		Query:  strings.TrimSpace(c.Query("q")),
		Ranges: make(map[domain.Nutrient]domain.Range),
	}

	if args.Has("category") {
		criteria.Categories = domain.NewCategorySet()
		for _, v := range args.PeekMulti("category") {
			if s := string(v); s != "" {
				criteria.Categories[s] = struct{}{}
			}
		}
	} else {
		criteria.Categories = domain.NewCategorySet(allCategories()...)
	}

	for _, n := range domain.Nutrients {
		if !args.Has(n.Key()) {
			continue
		}
		rng, err := parseRange(n, string(args.Peek(n.Key())))
		if err != nil {
			return domain.FilterCriteria{}, err
		}
		criteria.Ranges[n] = rng
	}
	return criteria, nil
}

func parseRange(n domain.Nutrient, raw string) (domain.Range, error) {
	lo, hi, ok := strings.Cut(raw, ",")
	if !ok {
		return domain.Range{}, &domain.InvalidRangeError{Nutrient: n.Key(), Reason: "expected min,max"}
	}

	rng := domain.Range{Min: -math.MaxFloat64, Max: math.MaxFloat64}
	var err error
	if lo = strings.TrimSpace(lo); lo != "" {
		if rng.Min, err = strconv.ParseFloat(lo, 64); err != nil {
			return domain.Range{}, &domain.InvalidRangeError{Nutrient: n.Key(), Reason: "min " + strconv.Quote(lo) + " is not a number"}
		}
	}
	if hi = strings.TrimSpace(hi); hi != "" {
		if rng.Max, err = strconv.ParseFloat(hi, 64); err != nil {
			return domain.Range{}, &domain.InvalidRangeError{Nutrient: n.Key(), Reason: "max " + strconv.Quote(hi) + " is not a number"}
		}
	}
	if err := rng.Validate(n); err != nil {
		return domain.Range{}, err
	}
	return rng, nil
}
