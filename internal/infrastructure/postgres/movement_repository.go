package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Append inserta el movimiento y asigna movement.ID.
func (r *MovementRepo) Append(ctx context.Context, m *entity.Movement) (int64, error) {
	query := `
		INSERT INTO movements (product_id, product_name, category, kind, quantity, date, month_index, reason, total_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.ProductID, m.ProductName, m.Category, string(m.Kind), m.Quantity,
		entity.DateOnly(m.Date), m.MonthIndex, m.Reason, m.TotalValue,
	).Scan(&m.ID)
	if err != nil {
		if mapped := mapConstraint(err); mapped != nil {
			return 0, mapped
		}
		return 0, fmt.Errorf("insert movement: %w", err)
	}
	return m.ID, nil
}

// List devuelve los movimientos filtrados, id descendente.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.Kind != "" {
		add("kind = $%d", string(f.Kind))
	}
	if f.ProductID > 0 {
		add("product_id = $%d", f.ProductID)
	}
	if f.MonthIndex != nil {
		add("month_index = $%d", *f.MonthIndex)
	}

	query := `SELECT id, product_id, product_name, category, kind, quantity, date, month_index, reason, total_value FROM movements`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var (
		m    entity.Movement
		kind string
	)
	err := row.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.Category, &kind, &m.Quantity,
		&m.Date, &m.MonthIndex, &m.Reason, &m.TotalValue)
	if err != nil {
		return nil, err
	}
	m.Kind = entity.MovementKind(kind)
	return &m, nil
}
