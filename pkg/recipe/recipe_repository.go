package recipe

import (
	"context"
	"errors"

	"recipe-dashboard/domain"
	"recipe-dashboard/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipeByName(ctx context.Context, name string) (*entities.Recipe, error)
		UpsertRecipes(ctx context.Context, recipes []*entities.Recipe) error
		CountRecipes(ctx context.Context) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Order("position asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeByName(ctx context.Context, name string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// UpsertRecipes inserts the rows, updating existing ones matched by name.
func (r *recipeRepository) UpsertRecipes(ctx context.Context, recipes []*entities.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	for _, recipe := range recipes {
		if recipe.ID == uuid.Nil {
			recipe.ID = uuid.New()
		}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"category", "image_url", "position",
				"calorie", "protein", "fat", "carbohydrate", "fiber",
				"vitamin_a", "vitamin_c", "iron", "calcium",
				"updated_at",
			}),
		}).CreateInBatches(recipes, 100).Error
	})
}

func (r *recipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ToDomain maps a stored row to the catalog representation.
func ToDomain(e *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		Name:     e.Name,
		Category: e.Category,
		ImageURL: e.ImageURL,
		Nutrients: domain.NutrientValues{
			domain.Calorie:      e.Calorie,
			domain.Protein:      e.Protein,
			domain.Fat:          e.Fat,
			domain.Carbohydrate: e.Carbohydrate,
			domain.Fiber:        e.Fiber,
			domain.VitaminA:     e.VitaminA,
			domain.VitaminC:     e.VitaminC,
			domain.Iron:         e.Iron,
			domain.Calcium:      e.Calcium,
		},
	}
}

// FromDomain maps a catalog recipe to a row; position keeps catalog order.
func FromDomain(r domain.Recipe, position int) *entities.Recipe {
	v := r.Nutrients
	return &entities.Recipe{
		Name:         r.Name,
		Category:     r.Category,
		ImageURL:     r.ImageURL,
		Position:     position,
		Calorie:      v[domain.Calorie],
		Protein:      v[domain.Protein],
		Fat:          v[domain.Fat],
		Carbohydrate: v[domain.Carbohydrate],
		Fiber:        v[domain.Fiber],
		VitaminA:     v[domain.VitaminA],
		VitaminC:     v[domain.VitaminC],
		Iron:         v[domain.Iron],
		Calcium:      v[domain.Calcium],
	}
}
