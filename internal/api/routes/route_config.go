package routes

import (
	"recipe-dashboard/internal/api/handlers"
	"recipe-dashboard/internal/middleware"
	"recipe-dashboard/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	RecipeHandler  handlers.RecipeHandler
	FoodLogHandler handlers.FoodLogHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Recipes()
	c.Sessions()
	c.FoodLog()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/ranking", c.RecipeHandler.RankRecipes)
		recipes.Get("/categories", c.RecipeHandler.GetCategories)
		recipes.Get("/bounds", c.RecipeHandler.GetBounds)
		recipes.Get("/targets", c.RecipeHandler.GetTargets)
		recipes.Get("/:name", c.RecipeHandler.GetRecipeDetail)
	}
}

func (c *Config) Sessions() {
	sessions := c.App.Group("/api/v1/sessions")
	sessions.Post("", c.FoodLogHandler.StartSession)
	sessions.Delete("", c.Middleware.SessionMiddleware(c.JWTService), c.FoodLogHandler.EndSession)
}

func (c *Config) FoodLog() {
	foodLog := c.App.Group("/api/v1/food-log", c.Middleware.SessionMiddleware(c.JWTService))
	foodLog.Get("", c.FoodLogHandler.GetLog)
	foodLog.Post("", c.FoodLogHandler.LogRecipe)
	foodLog.Delete("", c.FoodLogHandler.ClearLog)
	foodLog.Get("/summary", c.FoodLogHandler.GetSummary)
}
