// Package migrations aplica el esquema versionado con goose (un juego de archivos por dialecto).
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Dialectos soportados.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// Up aplica todas las migraciones pendientes y devuelve cuántas se ejecutaron.
func Up(ctx context.Context, db *sql.DB, dialect string) (int, error) {
	var gd goose.Dialect
	switch dialect {
	case Postgres:
		gd = goose.DialectPostgres
	case SQLite:
		gd = goose.DialectSQLite3
	default:
		return 0, fmt.Errorf("migrations: dialecto desconocido %q", dialect)
	}

	dir, err := fs.Sub(files, dialect)
	if err != nil {
		return 0, fmt.Errorf("migrations: %w", err)
	}
	provider, err := goose.NewProvider(gd, db, dir)
	if err != nil {
		return 0, fmt.Errorf("migrations: crear provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrations: up: %w", err)
	}
	return len(results), nil
}
