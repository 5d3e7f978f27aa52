package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.StockRepository   = (*StockRepo)(nil)
)

const productColumns = `id, name, category, supplier, cost, price, min_stock, current_stock`

// ProductRepo catálogo sobre SQLite.
type ProductRepo struct {
	q querier
}

// Count cantidad de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// List productos por id ascendente.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return getProduct(ctx, r.q, id)
}

// Create inserta y asigna product.ID.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO products (name, category, supplier, cost, price, min_stock, current_stock)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Category, p.Supplier, p.Cost.String(), p.Price.String(), p.MinStock, p.CurrentStock,
	)
	if err != nil {
		if mapped := mapConstraint(err); mapped != nil {
			return 0, mapped
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	p.ID = id
	return id, nil
}

// Delete elimina el producto; los movimientos caen por ON DELETE CASCADE.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return n > 0, nil
}

// StockRepo lectura/escritura de stock dentro de la transacción del motor.
// El bloqueo lo da la conexión única del Store.
type StockRepo struct {
	q querier
}

// GetForUpdate lee el producto dentro de la tx; (nil, nil) si no existe.
func (r *StockRepo) GetForUpdate(ctx context.Context, productID int64) (*entity.Product, error) {
	return getProduct(ctx, r.q, productID)
}

// SetStock fija current_stock.
func (r *StockRepo) SetStock(ctx context.Context, productID int64, newStock int) error {
	res, err := r.q.ExecContext(ctx, `UPDATE products SET current_stock = ? WHERE id = ?`, newStock, productID)
	if err != nil {
		if mapped := mapConstraint(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update stock: producto %d inexistente", productID)
	}
	return nil
}

func getProduct(ctx context.Context, q querier, id int64) (*entity.Product, error) {
	p, err := scanProduct(q.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Supplier, &p.Cost, &p.Price, &p.MinStock, &p.CurrentStock); err != nil {
		return nil, err
	}
	return &p, nil
}
