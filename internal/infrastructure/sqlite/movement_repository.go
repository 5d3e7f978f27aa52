package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const dateLayout = "2006-01-02"

// MovementRepo libro de movimientos sobre SQLite.
type MovementRepo struct {
	q querier
}

// Append inserta el movimiento y asigna m.ID.
func (r *MovementRepo) Append(ctx context.Context, m *entity.Movement) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO movements (product_id, product_name, category, kind, quantity, date, month_index, reason, total_value)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ProductID, m.ProductName, m.Category, string(m.Kind), m.Quantity,
		m.Date.Format(dateLayout), m.MonthIndex, m.Reason, m.TotalValue.String(),
	)
	if err != nil {
		if mapped := mapConstraint(err); mapped != nil {
			return 0, mapped
		}
		return 0, fmt.Errorf("insert movement: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert movement: %w", err)
	}
	m.ID = id
	return id, nil
}

// List movimientos filtrados, id descendente.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	var (
		where []string
		args  []any
	)
	if f.Category != "" {
		where, args = append(where, "category = ?"), append(args, f.Category)
	}
	if f.Kind != "" {
		where, args = append(where, "kind = ?"), append(args, string(f.Kind))
	}
	if f.ProductID > 0 {
		where, args = append(where, "product_id = ?"), append(args, f.ProductID)
	}
	if f.MonthIndex != nil {
		where, args = append(where, "month_index = ?"), append(args, *f.MonthIndex)
	}

	query := `SELECT id, product_id, product_name, category, kind, quantity, date, month_index, reason, total_value FROM movements`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id DESC"

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var (
			m          entity.Movement
			kind, date string
		)
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.Category, &kind, &m.Quantity,
			&date, &m.MonthIndex, &m.Reason, &m.TotalValue); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Kind = entity.MovementKind(kind)
		if m.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("scan movement: fecha %q: %w", date, err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
