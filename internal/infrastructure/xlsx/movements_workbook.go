// Package xlsx exporta el libro de movimientos a planilla Excel con excelize.
package xlsx

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// Nombres de las hojas generadas.
const (
	SheetMovements = "Movimentações"
	SheetSummary   = "Resumo"
)

var movementHeader = []interface{}{
	"ID", "Data", "Produto", "Categoria", "Tipo", "Quantidade", "Motivo", "Valor Total",
}

// Generator implementa report.SpreadsheetGenerator.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator { return &Generator{} }

// MovementsWorkbook arma dos hojas: el detalle de movimientos (en el orden recibido)
// y un resumen por categoría con entradas y salidas valoradas.
func (g *Generator) MovementsWorkbook(_ context.Context, movements []*entity.Movement) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetMovements); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := f.SetSheetRow(SheetMovements, "A1", &movementHeader); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}

	type totals struct{ inbound, outbound decimal.Decimal }
	byCategory := map[string]*totals{}

	for i, m := range movements {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		values := []interface{}{
			m.ID,
			m.Date.Format("02/01/2006"),
			m.ProductName,
			m.Category,
			kindLabel(m.Kind),
			m.Quantity,
			m.Reason,
			m.TotalValue.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetMovements, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}

		t, ok := byCategory[m.Category]
		if !ok {
			t = &totals{}
			byCategory[m.Category] = t
		}
		if m.Kind == entity.MovementInbound {
			t.inbound = t.inbound.Add(m.TotalValue)
		} else {
			t.outbound = t.outbound.Add(m.TotalValue)
		}
	}

	if _, err := f.NewSheet(SheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: hoja resumen: %w", err)
	}
	header := []interface{}{"Categoria", "Entradas (custo)", "Saídas (receita)"}
	if err := f.SetSheetRow(SheetSummary, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado resumen: %w", err)
	}
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for i, c := range categories {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{c, byCategory[c].inbound.InexactFloat64(), byCategory[c].outbound.InexactFloat64()}
		if err := f.SetSheetRow(SheetSummary, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: resumen %q: %w", c, err)
		}
	}

	_ = f.SetColWidth(SheetMovements, "C", "C", 32)
	_ = f.SetColWidth(SheetMovements, "G", "G", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func kindLabel(k entity.MovementKind) string {
	if k == entity.MovementInbound {
		return "Entrada"
	}
	return "Saída"
}
