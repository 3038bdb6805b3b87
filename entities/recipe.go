package entities

import (
	"github.com/google/uuid"
)

// Recipe is one catalog row as stored in the recipes table.
type Recipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null" json:"name"`
	Category     string    `gorm:"index" json:"category"`
	ImageURL     string    `json:"image_url,omitempty"`
	Position     int       `gorm:"index" json:"position"`
	Calorie      float64   `json:"calorie"`
	Protein      float64   `json:"protein"`
	Fat          float64   `json:"fat"`
	Carbohydrate float64   `json:"carbohydrate"`
	Fiber        float64   `json:"fiber"`
	VitaminA     float64   `json:"vitamin_a"`
	VitaminC     float64   `json:"vitamin_c"`
	Iron         float64   `json:"iron"`
	Calcium      float64   `json:"calcium"`

	Timestamp
}
