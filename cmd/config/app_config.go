package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"recipe-dashboard/domain"
	"recipe-dashboard/internal/api/handlers"
	"recipe-dashboard/internal/api/routes"
	"recipe-dashboard/internal/middleware"
	"recipe-dashboard/internal/utils"
	"recipe-dashboard/internal/utils/storage"
	"recipe-dashboard/pkg/catalog"
	"recipe-dashboard/pkg/foodlog"
	"recipe-dashboard/pkg/jwt"
	"recipe-dashboard/pkg/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the production zap logger at the given level
// ("debug", "info", "warn" or "error").
func NewLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// LoadCatalog reads the catalog from CATALOG_SOURCE. Only the backing store
// that source needs is opened.
func LoadCatalog(ctx context.Context, zl *zap.Logger) (*domain.Catalog, error) {
	source := utils.GetConfig("CATALOG_SOURCE")

	var (
		recipeRepository recipe.RecipeRepository
		s3               storage.AwsS3
	)
	switch source {
	case catalog.SourceDB:
		db, err := ConnectDB()
		if err != nil {
			return nil, err
		}
		recipeRepository = recipe.NewRecipeRepository(db)
	case catalog.SourceS3:
		var err error
		if s3, err = storage.NewAwsS3(ctx); err != nil {
			return nil, err
		}
	}

	catalogService := catalog.NewCatalogService(source, utils.GetConfig("CATALOG_PATH"), recipeRepository, s3, zl)
	return catalogService.Load(ctx)
}

func NewApp(recipeCatalog *domain.Catalog, zl *zap.Logger) (*fiber.App, error) {
	utils.InitValidator()
	cfg := utils.Current()

	app := fiber.New(fiber.Config{
		EnablePrintRoutes: cfg.LogLevel == "debug",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), os.ModePerm); err != nil {
			log.Errorf("error creating log directory: %v", err)
			return nil, err
		}
		file, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Errorf("error opening log file: %v", err)
			return nil, err
		}
		out = file
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     out,
	}))

	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: 1 * time.Second,
		}))
	}

	secret := cfg.JWTSecret
	if secret == "" {
		// tokens die with the process, as do the sessions they name
		secret = uuid.NewString()
		zl.Warn("JWT_SECRET not set, using a per-process secret")
	}
	sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute

	// Repository
	foodLogRepository := foodlog.NewMemoryFoodLogRepository()

	// Service
	jwtService := jwt.NewJWTService(secret, sessionTTL)
	recipeService := recipe.NewRecipeService(recipeCatalog, cfg.DefaultTopN, zl)
	foodLogService := foodlog.NewFoodLogService(foodLogRepository, recipeCatalog, jwtService, zl)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	foodLogHandler := handlers.NewFoodLogHandler(foodLogService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		RecipeHandler:  recipeHandler,
		FoodLogHandler: foodLogHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	go purgeIdleSessions(ctx, foodLogService, sessionTTL)
	app.Hooks().OnShutdown(func() error {
		cancel()
		return nil
	})

	return app, nil
}

// purgeIdleSessions drops sessions untouched for longer than the token TTL;
// their tokens have expired, so nothing can reach them.
func purgeIdleSessions(ctx context.Context, foodLogService foodlog.FoodLogService, maxIdle time.Duration) {
	if maxIdle <= 0 {
		maxIdle = jwt.DefaultSessionTTL
	}
	interval := maxIdle / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			foodLogService.PurgeIdleSessions(ctx, maxIdle)
		}
	}
}
