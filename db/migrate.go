package db

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func prepareMigrations() error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("error setting migration dialect: %w", err)
	}
	return nil
}

// Migrate applies all pending schema migrations.
func (u *UserDB) Migrate() error {
	if err := prepareMigrations(); err != nil {
		return err
	}
	if err := goose.Up(u.DB.DB, "migrations"); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}
	return nil
}

// MigrateDown rolls back the most recently applied migration.
func (u *UserDB) MigrateDown() error {
	if err := prepareMigrations(); err != nil {
		return err
	}
	if err := goose.Down(u.DB.DB, "migrations"); err != nil {
		return fmt.Errorf("error rolling back migration: %w", err)
	}
	return nil
}

// MigrationStatus prints the state of every known migration.
func (u *UserDB) MigrationStatus() error {
	if err := prepareMigrations(); err != nil {
		return err
	}
	if err := goose.Status(u.DB.DB, "migrations"); err != nil {
		return fmt.Errorf("error reading migration status: %w", err)
	}
	return nil
}

// CreateMigration scaffolds a new timestamped SQL migration file in dir.
// It needs no database connection.
func CreateMigration(dir, name string) error {
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("error creating migration: %w", err)
	}
	return nil
}
