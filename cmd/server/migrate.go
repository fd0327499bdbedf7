package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artem13815/resume-analyzer/pkg/catalog"
	"github.com/artem13815/resume-analyzer/pkg/logger"
	pgrepo "github.com/artem13815/resume-analyzer/pkg/repository/postgres"
	"github.com/artem13815/resume-analyzer/pkg/storage/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and seed the skill catalog",
	Long:  "Apply embedded goose migrations to DATABASE_URL and replace the stored catalog with the built-in one or with a YAML file.",
	RunE:  runMigrate,
}

var (
	migrateSeed     bool
	migrateFromFile string
)

func init() {
	migrateCmd.Flags().BoolVar(&migrateSeed, "seed", true, "Seed the catalog after migrating")
	migrateCmd.Flags().StringVar(&migrateFromFile, "from-file", "", "Seed from a YAML catalog instead of the built-in one")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	ctx := cmd.Context()

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("postgres connect: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return err
	}
	if !migrateSeed {
		return nil
	}

	cat := catalog.Default()
	if migrateFromFile != "" {
		if cat, err = catalog.LoadFile(migrateFromFile); err != nil {
			return err
		}
	}
	if err := pgrepo.NewCatalogRepository(pool).Seed(ctx, cat); err != nil {
		return err
	}
	logger.Info().Int("skills", len(cat.Skills)).Msg("catalog seeded")
	return nil
}
