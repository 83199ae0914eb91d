package system

import (
	"database/sql"
	"fmt"
	"io/fs"

	"wellspring/internal/cli"
	"wellspring/internal/legacy"
	"wellspring/internal/logger"
	"wellspring/internal/migration"
	"wellspring/internal/storage"
	"wellspring/migrations"
)

// MigrateCmd applies pending schema migrations, then re-attempts the legacy
// data import when it has not completed yet.
type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	var db *sql.DB
	var driver string
	switch s := ctx.Store.(type) {
	case *storage.SQLiteStore:
		db, driver = s.GetDB(), "sqlite"
	case *storage.PostgresStore:
		db, driver = s.GetDB(), "postgres"
	default:
		return fmt.Errorf("unsupported storage backend")
	}
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, driver)
	if err != nil {
		return fmt.Errorf("failed to access %s migrations: %w", driver, err)
	}

	runner := migration.NewRunner(db, subFS)
	count, err := runner.Apply(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("Successfully applied %d migration(s).\n", count)
	}

	if !ctx.Prefs.MigrationCompleted() {
		if err := legacy.Import(ctx.Prefs, ctx.Store); err != nil {
			logger.Warn("Legacy import failed, will retry next session", "error", err)
			fmt.Println("Legacy data import failed; it will be retried automatically.")
		} else {
			fmt.Println("Legacy data import complete.")
		}
	}

	return nil
}
