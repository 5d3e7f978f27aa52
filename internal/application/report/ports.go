package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// StockLine fila del reporte de posición de stock.
type StockLine struct {
	Name         string
	Category     string
	Supplier     string
	CurrentStock int
	MinStock     int
	Status       string
	UnitCost     decimal.Decimal
	StockValue   decimal.Decimal // stock × costo
}

// StockReport datos completos para el PDF.
type StockReport struct {
	GeneratedAt   time.Time
	Lines         []StockLine
	TotalUnits    int
	TotalValue    decimal.Decimal
	CriticalCount int
}

// SpreadsheetGenerator genera el XLSX del libro de movimientos (implementación excelize).
type SpreadsheetGenerator interface {
	MovementsWorkbook(ctx context.Context, movements []*entity.Movement) ([]byte, error)
}

// PDFGenerator genera el PDF de posición de stock (implementación maroto).
type PDFGenerator interface {
	StockReportPDF(ctx context.Context, report StockReport) ([]byte, error)
}
