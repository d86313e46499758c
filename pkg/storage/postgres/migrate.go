package postgres

import (
	root "casino"
	"casino/pkg/storage"
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
)

// Migrate applies the schema migrations and then River's own migrations, both
// up to their latest version. Running it twice is a no-op.
func (p *PgSQL) Migrate(ctx context.Context) error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return fmt.Errorf("could not migrate: %w", storage.ErrAlreadyInTx)
	}

	// goose migrations (domain tables)
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not migrate pgsql: %w", err)
	}

	// migrate riverqueue
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}
	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	currentVersion := 0
	currentMigrations, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(currentMigrations) > 0 {
		currentVersion = currentMigrations[len(currentMigrations)-1].Version
	}
	if latestVersion > currentVersion {
		_, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
			TargetVersion: latestVersion,
		})
		if err != nil {
			return fmt.Errorf("could not migrate river queue: %w", err)
		}
	}

	return nil
}
