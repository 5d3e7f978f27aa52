// Package pdf implementa el reporte de posición de stock en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de emisión                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Unidades │ Valor patrimonial │ Productos críticos     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Produto | Categoria | Estoque | Mín | Status | Valor │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de status                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/Estoque-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 30, Blue: 45}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
}

// NewMarotoPDFGenerator construye el generador con formato numérico pt-BR.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{printer: message.NewPrinter(language.BrazilianPortuguese)}
}

// StockReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) StockReportPDF(_ context.Context, rep report.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Posição de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.kpiRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(rep.Lines)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// Money formatea un valor como "R$ 1.234,56".
func (g *MarotoPDFGenerator) Money(v decimal.Decimal) string {
	return "R$ " + g.printer.Sprint(number.Decimal(v.InexactFloat64(), number.Scale(2)))
}

// Units formatea enteros con separador de miles pt-BR.
func (g *MarotoPDFGenerator) Units(n int) string {
	return g.printer.Sprint(number.Decimal(n))
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(rep report.StockReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("POSIÇÃO DE ESTOQUE", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Emitido em: "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoPDFGenerator) kpiRow(rep report.StockReport) core.Row {
	kpi := func(label, value string, color *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Color: color, Top: 6, Align: align.Center}),
		)
	}
	critical := colorPrimary
	if rep.CriticalCount > 0 {
		critical = colorAlert
	}
	return row.New(16).Add(
		kpi("Unidades em estoque", g.Units(rep.TotalUnits), colorPrimary),
		kpi("Valor patrimonial", g.Money(rep.TotalValue), colorPrimary),
		kpi("Produtos críticos", g.Units(rep.CriticalCount), critical),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produto", 4, align.Left),
		h("Categoria", 2, align.Left),
		h("Estoque", 1, align.Center),
		h("Mín.", 1, align.Center),
		h("Status", 2, align.Center),
		h("Valor", 2, align.Right),
	)
}

func (g *MarotoPDFGenerator) tableRows(lines []report.StockLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		statusColor := colorGray
		if l.Status == "out_of_stock" || l.Status == "critical" {
			statusColor = colorAlert
		}
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(l.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.Category, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(g.Units(l.CurrentStock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(g.Units(l.MinStock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(statusLabel(l.Status), props.Text{Size: 8, Align: align.Center, Top: 1, Color: statusColor})),
			col.New(2).Add(text.New(g.Money(l.StockValue), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Status: Esgotado = sem unidades; Crítico = abaixo do mínimo; Baixo = abaixo de 1,5× o mínimo.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(s string) string {
	switch s {
	case "out_of_stock":
		return "Esgotado"
	case "critical":
		return "Crítico"
	case "low":
		return "Baixo"
	default:
		return "Normal"
	}
}
