package postgres

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/hrkit/employee-service/internal/infrastructure/db/postgres/migrations"
)

// Migrate applies the embedded schema migrations. It runs once at startup;
// request handlers never touch the schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
