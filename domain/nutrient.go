package domain

import (
	"encoding/json"
	"fmt"
)

// Nutrient is one of the nine nutritional measures tracked per recipe.
type Nutrient int

const (
	Calorie Nutrient = iota
	Protein
	Fat
	Carbohydrate
	Fiber
	VitaminA
	VitaminC
	Iron
	Calcium
)

const NutrientCount = 9

// Nutrients lists every nutrient in display order.
var Nutrients = [NutrientCount]Nutrient{
	Calorie, Protein, Fat, Carbohydrate, Fiber, VitaminA, VitaminC, Iron, Calcium,
}

var nutrientKeys = [NutrientCount]string{
	"calorie", "protein", "fat", "carbohydrate", "fiber",
	"vitamin_a", "vitamin_c", "iron", "calcium",
}

var nutrientUnits = [NutrientCount]string{
	"kcal", "g", "g", "g", "g", "µg", "mg", "mg", "mg",
}

// DailyTargets holds the recommended daily amount per nutrient.
var DailyTargets = NutrientValues{
	Calorie:      2000,
	Protein:      60,
	Fat:          65,
	Carbohydrate: 300,
	Fiber:        20,
	VitaminA:     800,
	VitaminC:     100,
	Iron:         10,
	Calcium:      650,
}

func (n Nutrient) Valid() bool {
	return n >= 0 && int(n) < NutrientCount
}

// Key returns the snake_case name used in query params, JSON and CSV headers.
func (n Nutrient) Key() string {
	if !n.Valid() {
		return "unknown"
	}
	return nutrientKeys[n]
}

func (n Nutrient) Unit() string {
	if !n.Valid() {
		return ""
	}
	return nutrientUnits[n]
}

func (n Nutrient) String() string {
	return n.Key()
}

// ParseNutrient resolves a snake_case key to its Nutrient.
func ParseNutrient(key string) (Nutrient, bool) {
	for i, k := range nutrientKeys {
		if k == key {
			return Nutrient(i), true
		}
	}
	return 0, false
}

// NutrientValues stores one amount per nutrient, indexed by Nutrient.
type NutrientValues [NutrientCount]float64

func (v NutrientValues) Get(n Nutrient) float64 {
	return v[n]
}

// Add returns the element-wise sum of v and o.
func (v NutrientValues) Add(o NutrientValues) NutrientValues {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

func (v NutrientValues) MarshalJSON() ([]byte, error) {
	m := make(map[string]float64, NutrientCount)
	for _, n := range Nutrients {
		m[n.Key()] = v[n]
	}
	return json.Marshal(m)
}

func (v *NutrientValues) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out NutrientValues
	for key, value := range m {
		n, ok := ParseNutrient(key)
		if !ok {
			return fmt.Errorf("unknown nutrient %q", key)
		}
		out[n] = value
	}
	*v = out
	return nil
}

type (
	NutrientBound struct {
		Nutrient string  `json:"nutrient"`
		Unit     string  `json:"unit"`
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
	}

	NutrientTarget struct {
		Nutrient string  `json:"nutrient"`
		Unit     string  `json:"unit"`
		Target   float64 `json:"target"`
	}
)

// Targets returns DailyTargets as a display-ordered list.
func Targets() []NutrientTarget {
	out := make([]NutrientTarget, 0, NutrientCount)
	for _, n := range Nutrients {
		out = append(out, NutrientTarget{
			Nutrient: n.Key(),
			Unit:     n.Unit(),
			Target:   DailyTargets[n],
		})
	}
	return out
}
