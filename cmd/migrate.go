package cmd

import (
	"os"

	"github.com/UserHub/userhub-directory-services/db"
	"github.com/UserHub/userhub-directory-services/internal/appconfig"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database schema migrations",
	Long:  `This command scaffolds new goose migrations and applies pending ones.`,
}

var migrateCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Scaffold a new timestamped SQL migration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setLogging(logLevel)

		if err := os.MkdirAll(migrationsDir, 0o755); err != nil {
			log.Fatal().Err(err).Msg("Failed to create migrations directory")
		}

		if err := db.CreateMigration(migrationsDir, args[0]); err != nil {
			log.Fatal().Err(err).Msg("Failed to create migration")
		}
	},
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := migrationConfig()

		// The sqlite backend keeps its schema current whenever the store opens
		if driver := cfg.DatabaseDriver(); driver != "postgres" {
			store, err := db.Open(driver, cfg.DatabaseSource(), &log.Logger)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to initialize user store")
			}
			store.Close()
			log.Info().Str("driver", driver).Msg("Schema migrated automatically on connect")
			return
		}

		userDB := openMigrator(cfg)
		defer userDB.Close()

		// Run the migrations
		log.Info().Msgf("Running migrations...")
		if err := userDB.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}

		log.Info().Msg("Migrations complete")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recently applied migration",
	Run: func(cmd *cobra.Command, args []string) {
		userDB := openMigrator(migrationConfig())
		defer userDB.Close()

		if err := userDB.MigrateDown(); err != nil {
			log.Fatal().Err(err).Msg("Failed to roll back migration")
		}

		log.Info().Msg("Rollback complete")
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the status of all known migrations",
	Run: func(cmd *cobra.Command, args []string) {
		userDB := openMigrator(migrationConfig())
		defer userDB.Close()

		if err := userDB.MigrationStatus(); err != nil {
			log.Fatal().Err(err).Msg("Failed to read migration status")
		}
	},
}

// migrationConfig sets up logging and loads the settings file.
func migrationConfig() *appconfig.Config {
	setLogging(logLevel)

	cfg, err := appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	return cfg
}

// openMigrator connects to PostgreSQL for goose commands. The sqlite
// backend is not goose-managed.
func openMigrator(cfg *appconfig.Config) *db.UserDB {
	if driver := cfg.DatabaseDriver(); driver != "postgres" {
		log.Fatal().Str("driver", driver).Msg("goose migrations require the postgres driver")
	}

	userDB, err := db.NewUserDB(cfg.DatabaseSource(), &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize UserDB")
	}
	return userDB
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateCreateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCreateCmd.Flags().StringVar(&migrationsDir, "dir", "db/migrations",
		"directory for migration files")
}
