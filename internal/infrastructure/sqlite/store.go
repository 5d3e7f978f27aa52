/*
Package sqlite implementa los puertos de persistencia sobre SQLite (database/sql + go-sqlite3).

CONCURRENCIA:

	El pool se limita a una conexión: SQLite admite un solo escritor y así una
	transacción del motor (leer stock, validar, actualizar, insertar movimiento)
	nunca se intercala con otra. Es el equivalente al SELECT ... FOR UPDATE de PostgreSQL.

FORMATO:

	Montos como TEXT (decimal exacto), fechas como TEXT YYYY-MM-DD.
	Claves foráneas activadas (_foreign_keys=on) para el borrado en cascada.
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/migrations"
)

// Ensure Store implements inventory.TxRunner.
var _ inventory.TxRunner = (*Store)(nil)

// querier API común de *sql.DB y *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store handle del archivo SQLite; se abre al arrancar y se cierra al apagar.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y aplica las migraciones. Usar ":memory:" en tests.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := path + "?_foreign_keys=on&_busy_timeout=5000"
	if path != ":memory:" && !strings.HasPrefix(path, "file::memory:") {
		dsn += "&_journal_mode=WAL"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	if _, err := migrations.Up(ctx, db, migrations.SQLite); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close cierra la conexión.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB expone el *sql.DB (health checks).
func (s *Store) DB() *sql.DB { return s.db }

// Products repositorio de productos sobre la conexión principal.
func (s *Store) Products() *ProductRepo { return &ProductRepo{q: s.db} }

// Movements repositorio del libro sobre la conexión principal.
func (s *Store) Movements() *MovementRepo { return &MovementRepo{q: s.db} }

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (s *Store) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&StockRepo{q: tx}, &MovementRepo{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
