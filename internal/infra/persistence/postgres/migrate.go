package postgres

import (
	"context"
	"database/sql"

	"todo/internal/infra/persistence/postgres/migrations"

	"github.com/pressly/goose/v3"
)

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return err
	}

	return nil
}
