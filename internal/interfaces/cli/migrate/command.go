package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"itdesk/internal/infrastructure/auth"
	"itdesk/internal/infrastructure/config"
	"itdesk/internal/infrastructure/database"
	"itdesk/internal/infrastructure/migration"
	"itdesk/internal/shared/logger"
)

var (
	env      string
	strategy string
	steps    int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run or roll back database migrations and seed default settings.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&strategy, "strategy", "s", "", "Migration strategy (automigrate, golang-migrate, goose); defaults per environment")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed default settings",
		Long:  `Insert default settings rows and the bootstrap admin password hash. Existing rows are never overwritten.`,
		RunE:  runSeed,
	}
}

func initEnv() (*config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, nil
}

func buildManager() (*migration.Manager, error) {
	if strategy == "" {
		return migration.NewManager(env), nil
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}

	switch strategy {
	case "automigrate":
		return migration.NewManagerWithStrategy(migration.NewGormAutoMigrateStrategy()), nil
	case "golang-migrate":
		return migration.NewManagerWithStrategy(migration.NewGolangMigrateStrategy(scriptsPath)), nil
	case "goose":
		return migration.NewManagerWithStrategy(migration.NewGooseStrategy(scriptsPath)), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy: %s", strategy)
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	if _, err := initEnv(); err != nil {
		return err
	}
	defer database.Close()

	manager, err := buildManager()
	if err != nil {
		return err
	}

	if err := manager.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations applied successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if _, err := initEnv(); err != nil {
		return err
	}
	defer database.Close()

	manager, err := buildManager()
	if err != nil {
		return err
	}

	switch s := manager.GetStrategy().(type) {
	case *migration.GolangMigrateStrategy:
		if err := s.MigrateDown(database.Get(), steps); err != nil {
			return fmt.Errorf("down migration failed: %w", err)
		}
	case *migration.GooseStrategy:
		if err := s.MigrateDown(database.Get(), steps); err != nil {
			return fmt.Errorf("down migration failed: %w", err)
		}
	default:
		return fmt.Errorf("strategy %s does not support down migrations", manager.GetStrategy().GetName())
	}

	logger.Info("down migration completed", "steps", steps)
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	if err := migration.Seed(database.Get(), hasher, cfg.Auth.AdminPassword); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logger.Info("default settings seeded")
	return nil
}
