package catalog

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"recipe-dashboard/domain"
	"recipe-dashboard/entities"
	"recipe-dashboard/pkg/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRecipeRepository struct {
	rows     []*entities.Recipe
	upserted []*entities.Recipe
	err      error
}

func (f *fakeRecipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	return f.rows, f.err
}

func (f *fakeRecipeRepository) GetRecipeByName(ctx context.Context, name string) (*entities.Recipe, error) {
	for _, r := range f.rows {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

func (f *fakeRecipeRepository) UpsertRecipes(ctx context.Context, recipes []*entities.Recipe) error {
	f.upserted = append(f.upserted, recipes...)
	return f.err
}

func (f *fakeRecipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	return int64(len(f.rows)), f.err
}

type fakeS3 struct {
	objects map[string]string
}

func (f *fakeS3) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	body, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func TestCatalogServiceLoadCSV(t *testing.T) {
	svc := NewCatalogService(SourceCSV, "testdata/recipes.csv", nil, nil, zap.NewNop())

	c, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	r, ok := c.Lookup("Salad")
	require.True(t, ok)
	assert.Equal(t, 120.0, r.Nutrients[domain.Calorie])
}

func TestCatalogServiceLoadS3(t *testing.T) {
	body, err := os.ReadFile("testdata/recipes.csv")
	require.NoError(t, err)
	s3 := &fakeS3{objects: map[string]string{"catalog/recipes.csv": string(body)}}

	svc := NewCatalogService(SourceS3, "catalog/recipes.csv", nil, s3, zap.NewNop())
	c, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = NewCatalogService(SourceS3, "missing.csv", nil, s3, zap.NewNop()).Load(context.Background())
	assert.Error(t, err)
}

func TestCatalogServiceLoadDB(t *testing.T) {
	repo := &fakeRecipeRepository{rows: []*entities.Recipe{
		recipe.FromDomain(domain.Recipe{Name: "Curry", Category: "Main", Nutrients: domain.NutrientValues{650}}, 0),
		recipe.FromDomain(domain.Recipe{Name: "Salad", Category: "Side", Nutrients: domain.NutrientValues{120}}, 1),
	}}

	c, err := NewCatalogService(SourceDB, "", repo, nil, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "Curry", c.Recipes()[0].Name)
}

func TestCatalogServiceLoadEmptyIsValid(t *testing.T) {
	repo := &fakeRecipeRepository{}

	c, err := NewCatalogService(SourceDB, "", repo, nil, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestCatalogServiceLoadErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewCatalogService("ftp", "", nil, nil, zap.NewNop()).Load(ctx)
	assert.ErrorContains(t, err, `unknown catalog source "ftp"`)

	_, err = NewCatalogService(SourceCSV, "testdata/missing.csv", nil, nil, zap.NewNop()).Load(ctx)
	assert.ErrorIs(t, err, os.ErrNotExist)

	dup := &fakeRecipeRepository{rows: []*entities.Recipe{
		{Name: "Curry", Category: "Main"},
		{Name: "Curry", Category: "Side"},
	}}
	_, err = NewCatalogService(SourceDB, "", dup, nil, zap.NewNop()).Load(ctx)
	assert.ErrorIs(t, err, domain.ErrDuplicateRecipe)
}

func TestCatalogServiceImport(t *testing.T) {
	repo := &fakeRecipeRepository{}
	svc := NewCatalogService(SourceDB, "", repo, nil, zap.NewNop())

	f, err := os.Open("testdata/recipes.csv")
	require.NoError(t, err)
	defer f.Close()

	n, err := svc.Import(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Len(t, repo.upserted, 3)
	assert.Equal(t, "Miso Soup", repo.upserted[2].Name)
	assert.Equal(t, 2, repo.upserted[2].Position)
}

func TestCatalogServiceImportRejectsDuplicates(t *testing.T) {
	repo := &fakeRecipeRepository{}
	svc := NewCatalogService(SourceDB, "", repo, nil, zap.NewNop())

	in := "name,category,calorie,protein,fat,carbohydrate,fiber,vitamin_a,vitamin_c,iron,calcium\n" +
		"Curry,Main,1,1,1,1,1,1,1,1,1\n" +
		"Curry,Main,2,2,2,2,2,2,2,2,2\n"

	_, err := svc.Import(context.Background(), strings.NewReader(in))
	assert.ErrorIs(t, err, domain.ErrDuplicateRecipe)
	assert.Empty(t, repo.upserted)
}
