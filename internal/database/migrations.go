package database

import (
	"fmt"
	"log/slog"
)

// Migration is a named group of schema statements. Migrations are embedded
// per dialect (see schema_*.go) and applied in order on startup; each runs
// at most once, tracked in the migrations table.
type Migration struct {
	Name       string
	Statements []string
}

// RunMigrations applies all pending schema migrations for the active dialect
func (db *DB) RunMigrations() error {
	if err := db.createMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, migration := range db.Dialect.Migrations() {
		hasRun, err := db.hasMigrationRun(migration.Name)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}

		if hasRun {
			continue
		}

		if err := db.executeMigration(migration); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", migration.Name, err)
		}

		if err := db.recordMigration(migration.Name); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
		}

		slog.Info("migration completed", "name", migration.Name)
	}

	return nil
}

// createMigrationsTable creates the table to track completed migrations
func (db *DB) createMigrationsTable() error {
	_, err := db.DB.Exec(db.Dialect.CreateMigrationsTableQuery())
	return err
}

// hasMigrationRun checks if a migration has already been executed
func (db *DB) hasMigrationRun(name string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM migrations WHERE name = ?"
	err := db.QueryRow(query, name).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// executeMigration runs all statements of a migration in one transaction
func (db *DB) executeMigration(migration Migration) error {
	tx, err := db.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, statement := range migration.Statements {
		if _, err := tx.Exec(statement); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// recordMigration marks a migration as completed
func (db *DB) recordMigration(name string) error {
	_, err := db.Exec("INSERT INTO migrations (name) VALUES (?)", name)
	return err
}
