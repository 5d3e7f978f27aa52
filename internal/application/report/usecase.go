// Package report arma los reportes descargables: libro de movimientos en XLSX
// y posición de stock en PDF.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// UseCase genera reportes a partir de los repositorios de solo lectura.
type UseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	xlsx         SpreadsheetGenerator
	pdf          PDFGenerator
	now          func() time.Time
}

// NewUseCase construye el caso de uso inyectando los generadores.
func NewUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	xlsx SpreadsheetGenerator,
	pdf PDFGenerator,
) *UseCase {
	return &UseCase{productRepo: productRepo, movementRepo: movementRepo, xlsx: xlsx, pdf: pdf, now: time.Now}
}

// MovementsXLSX devuelve (bytes, nombre de archivo) del libro filtrado.
func (uc *UseCase) MovementsXLSX(ctx context.Context, filter repository.MovementFilter) ([]byte, string, error) {
	movements, err := uc.movementRepo.List(ctx, filter)
	if err != nil {
		return nil, "", domain.AsStorage("listar movimientos", err)
	}
	data, err := uc.xlsx.MovementsWorkbook(ctx, movements)
	if err != nil {
		return nil, "", fmt.Errorf("report: xlsx: %w", err)
	}
	return data, fmt.Sprintf("movimentacoes_%s.xlsx", uc.now().Format("20060102")), nil
}

// StockPDF devuelve (bytes, nombre de archivo) de la posición actual de stock.
func (uc *UseCase) StockPDF(ctx context.Context) ([]byte, string, error) {
	rep, err := uc.BuildStockReport(ctx)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.StockReportPDF(ctx, *rep)
	if err != nil {
		return nil, "", fmt.Errorf("report: pdf: %w", err)
	}
	return data, fmt.Sprintf("estoque_%s.pdf", rep.GeneratedAt.Format("20060102")), nil
}

// BuildStockReport calcula las líneas y totales del reporte de stock.
func (uc *UseCase) BuildStockReport(ctx context.Context) (*StockReport, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, domain.AsStorage("listar productos", err)
	}
	rep := &StockReport{GeneratedAt: uc.now(), Lines: make([]StockLine, 0, len(products))}
	for _, p := range products {
		status := inventory.ClassifyStock(p.CurrentStock, p.MinStock)
		value := p.Cost.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
		rep.Lines = append(rep.Lines, StockLine{
			Name:         p.Name,
			Category:     p.Category,
			Supplier:     p.Supplier,
			CurrentStock: p.CurrentStock,
			MinStock:     p.MinStock,
			Status:       string(status),
			UnitCost:     p.Cost,
			StockValue:   value,
		})
		rep.TotalUnits += p.CurrentStock
		rep.TotalValue = rep.TotalValue.Add(value)
		if status.IsCritical() {
			rep.CriticalCount++
		}
	}
	return rep, nil
}
