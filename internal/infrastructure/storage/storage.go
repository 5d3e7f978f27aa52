// Package storage elige el backend de persistencia según DB_DRIVER y expone
// los repositorios y el TxRunner que consumen los casos de uso.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/migrations"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Estoque-api/pkg/config"
)

// Backend repositorios listos para usar más el cierre del recurso subyacente.
type Backend struct {
	Driver    string
	Products  repository.ProductRepository
	Movements repository.MovementRepository
	Tx        inventory.TxRunner
	Ping      func(ctx context.Context) error

	closeFn func()
}

// Close libera el pool o el archivo SQLite.
func (b *Backend) Close() {
	if b.closeFn != nil {
		b.closeFn()
	}
}

// Open abre el backend configurado y aplica las migraciones pendientes.
func Open(ctx context.Context, cfg config.DBConfig) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)
	case config.DriverSQLite, "":
		return openSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DBConfig) (*Backend, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	db := postgres.OpenDB(pool)
	if _, err := migrations.Up(ctx, db, migrations.Postgres); err != nil {
		_ = db.Close()
		pool.Close()
		return nil, err
	}
	_ = db.Close()

	return &Backend{
		Driver:    config.DriverPostgres,
		Products:  postgres.NewProductRepository(pool),
		Movements: postgres.NewMovementRepository(pool),
		Tx:        postgres.NewTxRunner(pool),
		Ping:      pool.Ping,
		closeFn:   pool.Close,
	}, nil
}

func openSQLite(ctx context.Context, path string) (*Backend, error) {
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Backend{
		Driver:    config.DriverSQLite,
		Products:  store.Products(),
		Movements: store.Movements(),
		Tx:        store,
		Ping:      store.DB().PingContext,
		closeFn:   func() { _ = store.Close() },
	}, nil
}
