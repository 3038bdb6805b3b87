package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"recipe-dashboard/domain"
	"recipe-dashboard/entities"
	"recipe-dashboard/internal/utils/storage"
	"recipe-dashboard/pkg/recipe"

	"go.uber.org/zap"
)

const (
	SourceCSV = "csv"
	SourceS3  = "s3"
	SourceDB  = "db"
)

type (
	CatalogService interface {
		Load(ctx context.Context) (*domain.Catalog, error)
		Import(ctx context.Context, r io.Reader) (int, error)
	}

	catalogService struct {
		source           string
		path             string
		recipeRepository recipe.RecipeRepository
		s3               storage.AwsS3
		logger           *zap.Logger
	}
)

// NewCatalogService reads from source ("csv", "s3" or "db"). path is a
// file path or an object key; it is unused for "db". repo and s3 may be nil
// when the source does not need them.
func NewCatalogService(
	source, path string,
	recipeRepository recipe.RecipeRepository,
	s3 storage.AwsS3,
	logger *zap.Logger,
) CatalogService {
	return &catalogService{
		source:           source,
		path:             path,
		recipeRepository: recipeRepository,
		s3:               s3,
		logger:           logger,
	}
}

func (s *catalogService) Load(ctx context.Context) (*domain.Catalog, error) {
	recipes, err := s.read(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", s.source, err)
	}

	c, err := domain.NewCatalog(recipes)
	if err != nil {
		return nil, err
	}

	if c.IsEmpty() {
		s.logger.Warn("catalog loaded", zap.String("source", s.source), zap.Error(domain.ErrEmptyCatalog))
	} else {
		s.logger.Info("catalog loaded", zap.String("source", s.source), zap.Int("recipes", c.Len()))
	}
	return c, nil
}

func (s *catalogService) read(ctx context.Context) ([]domain.Recipe, error) {
	switch s.source {
	case SourceCSV:
		f, err := os.Open(s.path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ParseCSV(f)

	case SourceS3:
		if s.s3 == nil {
			return nil, storage.ErrBucketNotConfigured
		}
		body, err := s.s3.GetObject(ctx, s.path)
		if err != nil {
			return nil, err
		}
		defer body.Close()
		return ParseCSV(body)

	case SourceDB:
		if s.recipeRepository == nil {
			return nil, fmt.Errorf("no recipe repository configured")
		}
		rows, err := s.recipeRepository.GetRecipes(ctx)
		if err != nil {
			return nil, err
		}
		recipes := make([]domain.Recipe, 0, len(rows))
		for _, row := range rows {
			recipes = append(recipes, recipe.ToDomain(row))
		}
		return recipes, nil

	default:
		return nil, fmt.Errorf("unknown catalog source %q", s.source)
	}
}

// Import parses a CSV and upserts it into the recipes table, keeping file
// order as the catalog position.
func (s *catalogService) Import(ctx context.Context, r io.Reader) (int, error) {
	if s.recipeRepository == nil {
		return 0, fmt.Errorf("no recipe repository configured")
	}

	recipes, err := ParseCSV(r)
	if err != nil {
		return 0, err
	}
	// reject duplicates before touching the database
	if _, err := domain.NewCatalog(recipes); err != nil {
		return 0, err
	}

	rows := make([]*entities.Recipe, 0, len(recipes))
	for i, rec := range recipes {
		rows = append(rows, recipe.FromDomain(rec, i))
	}
	if err := s.recipeRepository.UpsertRecipes(ctx, rows); err != nil {
		return 0, err
	}

	s.logger.Info("catalog imported", zap.Int("recipes", len(rows)))
	return len(rows), nil
}
