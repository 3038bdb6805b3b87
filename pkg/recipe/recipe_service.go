package recipe

import (
	"context"

	"recipe-dashboard/domain"

	"go.uber.org/zap"
)

const DefaultTopN = 5

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, criteria domain.FilterCriteria) (domain.RecipeListResponse, error)
		RankRecipes(ctx context.Context, criteria domain.FilterCriteria, req domain.RankRequest) (domain.RankingResponse, error)
		GetRecipeDetail(ctx context.Context, name string) (domain.Recipe, error)
		GetCategories(ctx context.Context) []string
		GetBounds(ctx context.Context) []domain.NutrientBound
		GetTargets(ctx context.Context) []domain.NutrientTarget
	}

	recipeService struct {
		catalog     *domain.Catalog
		defaultTopN int
		logger      *zap.Logger
	}
)

func NewRecipeService(catalog *domain.Catalog, defaultTopN int, logger *zap.Logger) RecipeService {
	if defaultTopN <= 0 {
		defaultTopN = DefaultTopN
	}
	return &recipeService{
		catalog:     catalog,
		defaultTopN: defaultTopN,
		logger:      logger,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, criteria domain.FilterCriteria) (domain.RecipeListResponse, error) {
	recipes, err := Filter(s.catalog.Recipes(), criteria)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	s.logger.Debug("filtered recipes",
		zap.Int("categories", len(criteria.Categories)),
		zap.Int("ranges", len(criteria.Ranges)),
		zap.String("query", criteria.Query),
		zap.Int("matched", len(recipes)),
	)

	return domain.RecipeListResponse{
		Recipes: recipes,
		Total:   len(recipes),
	}, nil
}

// RankRecipes filters first, then ranks. An empty criterion means calorie_asc
// and a zero Top means the configured default.
func (s *recipeService) RankRecipes(ctx context.Context, criteria domain.FilterCriteria, req domain.RankRequest) (domain.RankingResponse, error) {
	criterion := domain.RankCalorieAsc
	if req.Criterion != "" {
		c, err := domain.ParseRankCriterion(req.Criterion)
		if err != nil {
			return domain.RankingResponse{}, err
		}
		criterion = c
	}

	top := req.Top
	if top == 0 {
		top = s.defaultTopN
	}

	filtered, err := Filter(s.catalog.Recipes(), criteria)
	if err != nil {
		return domain.RankingResponse{}, err
	}

	order, err := OrderFor(criterion)
	if err != nil {
		return domain.RankingResponse{}, err
	}
	ranked, err := RankBy(filtered, order, top)
	if err != nil {
		return domain.RankingResponse{}, err
	}

	s.logger.Debug("ranked recipes",
		zap.String("criterion", string(criterion)),
		zap.Int("top", top),
		zap.Int("candidates", len(filtered)),
	)

	return domain.RankingResponse{
		Criterion:  criterion,
		Descending: order.Descending,
		Recipes:    ranked,
		Total:      len(ranked),
	}, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, name string) (domain.Recipe, error) {
	r, ok := s.catalog.Lookup(name)
	if !ok {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}
	return r, nil
}

func (s *recipeService) GetCategories(ctx context.Context) []string {
	return Categories(s.catalog.Recipes())
}

func (s *recipeService) GetBounds(ctx context.Context) []domain.NutrientBound {
	return Bounds(s.catalog.Recipes())
}

func (s *recipeService) GetTargets(ctx context.Context) []domain.NutrientTarget {
	return domain.Targets()
}
