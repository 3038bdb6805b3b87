package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"recipe-dashboard/domain"
)

var ErrMissingColumn = errors.New("missing required column")

const (
	columnName     = "name"
	columnCategory = "category"
	columnImage    = "image_url"
)

// headerAliases maps accepted header spellings to canonical column keys.
// Nutrient keys come from domain.Nutrient.Key.
var headerAliases = map[string]string{
	"name":      columnName,
	"料理名":       columnName,
	"category":  columnCategory,
	"カテゴリ":      columnCategory,
	"image":     columnImage,
	"image_url": columnImage,
	"画像url":     columnImage,
	"カロリー":      domain.Calorie.Key(),
	"たんぱく質":     domain.Protein.Key(),
	"脂質":        domain.Fat.Key(),
	"糖質":        domain.Carbohydrate.Key(),
	"食物繊維":      domain.Fiber.Key(),
	"ビタミンa":     domain.VitaminA.Key(),
	"ビタミンc":     domain.VitaminC.Key(),
	"鉄分":        domain.Iron.Key(),
	"カルシウム":     domain.Calcium.Key(),
}

func canonicalHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	if key, ok := headerAliases[h]; ok {
		return key
	}
	if _, ok := domain.ParseNutrient(h); ok {
		return h
	}
	return ""
}

// ParseCSV reads recipes from a header-led CSV. The image column is
// optional; name, category and all nutrient columns are required.
func ParseCSV(r io.Reader) ([]domain.Recipe, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []domain.Recipe{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int)
	for i, h := range header {
		if key := canonicalHeader(h); key != "" {
			if _, dup := columns[key]; !dup {
				columns[key] = i
			}
		}
	}

	required := []string{columnName, columnCategory}
	for _, n := range domain.Nutrients {
		required = append(required, n.Key())
	}
	for _, key := range required {
		if _, ok := columns[key]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, key)
		}
	}

	recipes := make([]domain.Recipe, 0)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		recipe, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func parseRecord(record []string, columns map[string]int) (domain.Recipe, error) {
	cell := func(key string) string {
		i, ok := columns[key]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	recipe := domain.Recipe{
		Name:     cell(columnName),
		Category: cell(columnCategory),
		ImageURL: cell(columnImage),
	}
	if recipe.Name == "" {
		return domain.Recipe{}, errors.New("empty recipe name")
	}

	for _, n := range domain.Nutrients {
		raw := cell(n.Key())
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Recipe{}, fmt.Errorf("%s: %q is not a number", n.Key(), raw)
		}
		recipe.Nutrients[n] = v
	}
	return recipe, nil
}
