package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"recipe-dashboard/cmd/config"
	migration "recipe-dashboard/cmd/database/migrate"
	"recipe-dashboard/internal/utils"
	"recipe-dashboard/pkg/catalog"
	"recipe-dashboard/pkg/recipe"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	configPath string
	envFile    string
	importFile string
)

var rootCmd = &cobra.Command{
	Use:   "recipe-dashboard",
	Short: "Recipe catalog, ranking and daily nutrient tracking",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env values feed the environment overrides; a missing file is fine
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
		if err := utils.LoadConfig(configPath); err != nil {
			return err
		}
		var err error
		logger, err = config.NewLogger(utils.GetConfig("LOG_LEVEL"))
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the catalog and serve the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		recipeCatalog, err := config.LoadCatalog(ctx, logger)
		if err != nil {
			return err
		}

		app, err := config.NewApp(recipeCatalog, logger)
		if err != nil {
			return err
		}

		go func() {
			<-ctx.Done()
			logger.Info("shutting down")
			_ = app.Shutdown()
		}()

		addr := ":" + utils.GetConfig("APP_PORT")
		logger.Info("listening", zap.String("addr", addr), zap.Int("recipes", recipeCatalog.Len()))
		return app.Listen(addr)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the recipes table",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB()
		if err != nil {
			return err
		}
		if err := migration.Migrate(db); err != nil {
			return err
		}
		logger.Info("database migration complete")
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Upsert a recipe CSV into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(importFile)
		if err != nil {
			return err
		}
		defer f.Close()

		db, err := config.ConnectDB()
		if err != nil {
			return err
		}

		catalogService := catalog.NewCatalogService(catalog.SourceDB, "", recipe.NewRecipeRepository(db), nil, logger)
		n, err := catalogService.Import(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("import %s: %w", importFile, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d recipes\n", n)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file loaded before the config")

	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file to import")
	_ = importCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(serveCmd, migrateCmd, importCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
