// Package analytics contiene los casos de uso del tablero: flujo del período,
// ingresos por categoría y KPIs sobre el stock reconstruido al cierre del mes.
package analytics

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// CacheToken generación de la caché leída antes de cargar los datos.
// Vacío = no se pudo leer; SetSummary no guarda nada.
type CacheToken string

// SummaryCache caché opcional de resúmenes (implementación Redis en infrastructure/cache).
// SetSummary guarda bajo la generación del token: un resumen calculado mientras otra
// escritura invalidaba queda en una clave que ya nadie lee.
type SummaryCache interface {
	GetSummary(ctx context.Context, month *int) (*dto.DashboardSummaryDTO, CacheToken, bool)
	SetSummary(ctx context.Context, token CacheToken, month *int, summary *dto.DashboardSummaryDTO)
	Invalidate(ctx context.Context)
}

// DashboardUseCase arma el resumen del tablero a partir del catálogo y del libro.
//
// Fuente de datos: ProductRepository + MovementRepository (solo lectura).
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	cache        SummaryCache
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(productRepo repository.ProductRepository, movementRepo repository.MovementRepository, cache SummaryCache) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, movementRepo: movementRepo, cache: cache}
}

// InventoryChanged invalida la caché tras una escritura confirmada.
func (uc *DashboardUseCase) InventoryChanged(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
}

// Summary construye el resumen del mes indicado (0 = enero) o del año completo si month es nil.
//
// Dos lecturas en paralelo:
//  1. productos → stock actual, mínimo, costo
//  2. movimientos → flujo del período y reversión para el cierre del mes
func (uc *DashboardUseCase) Summary(ctx context.Context, month *int) (*dto.DashboardSummaryDTO, error) {
	if month != nil && (*month < 0 || *month > 11) {
		return nil, domain.NewValidationError("month", "deve estar entre 0 e 11")
	}
	var token CacheToken
	if uc.cache != nil {
		cached, tok, ok := uc.cache.GetSummary(ctx, month)
		if ok {
			return cached, nil
		}
		token = tok
	}

	products, movements, err := uc.load(ctx, repository.MovementFilter{})
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryDTO{
		Month:             month,
		Label:             periodLabel(month),
		RevenueByCategory: []dto.CategoryRevenueDTO{},
		Products:          make([]dto.ProductSnapshotDTO, 0, len(products)),
	}

	// ── Flujo del período ─────────────────────────────────────────────────────
	revenue := map[string]decimal.Decimal{}
	for _, m := range movements {
		if month != nil && m.MonthIndex != *month {
			continue
		}
		if m.Kind == entity.MovementInbound {
			summary.InboundValue = summary.InboundValue.Add(m.TotalValue)
			continue
		}
		summary.OutboundValue = summary.OutboundValue.Add(m.TotalValue)
		revenue[m.Category] = revenue[m.Category].Add(m.TotalValue)
	}
	for cat, v := range revenue {
		summary.RevenueByCategory = append(summary.RevenueByCategory, dto.CategoryRevenueDTO{Category: cat, Revenue: v})
	}
	sort.Slice(summary.RevenueByCategory, func(i, j int) bool {
		a, b := summary.RevenueByCategory[i], summary.RevenueByCategory[j]
		if c := a.Revenue.Cmp(b.Revenue); c != 0 {
			return c > 0
		}
		return a.Category < b.Category
	})

	// ── Stock al cierre ──────────────────────────────────────────────────────
	stock := SnapshotStock(products, movements, month)
	for _, p := range products {
		qty := stock[p.ID]
		status := inventory.ClassifyStock(qty, p.MinStock)
		summary.TotalUnits += qty
		summary.InventoryValue = summary.InventoryValue.Add(p.Cost.Mul(decimal.NewFromInt(int64(qty))))
		if status.IsCritical() {
			summary.CriticalProducts++
		}
		summary.Products = append(summary.Products, dto.ProductSnapshotDTO{
			ProductID:   p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Stock:       qty,
			MinStock:    p.MinStock,
			StockStatus: string(status),
			Critical:    status.IsCritical(),
		})
	}

	if uc.cache != nil {
		uc.cache.SetSummary(ctx, token, month, summary)
	}
	return summary, nil
}

// CategoryDetail ventas (salidas) por producto dentro de una categoría, de mayor a menor ingreso.
func (uc *DashboardUseCase) CategoryDetail(ctx context.Context, category string) (*dto.CategoryDetailDTO, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, domain.NewValidationError("category", "é obrigatória")
	}
	movements, err := uc.movementRepo.List(ctx, repository.MovementFilter{Category: category, Kind: entity.MovementOutbound})
	if err != nil {
		return nil, domain.AsStorage("listar movimientos", err)
	}

	detail := &dto.CategoryDetailDTO{Category: category, Products: []dto.ProductSalesDTO{}}
	index := map[int64]int{}
	for _, m := range movements {
		i, ok := index[m.ProductID]
		if !ok {
			i = len(detail.Products)
			index[m.ProductID] = i
			detail.Products = append(detail.Products, dto.ProductSalesDTO{ProductID: m.ProductID, Name: m.ProductName})
		}
		detail.Products[i].Quantity += m.Quantity
		detail.Products[i].Revenue = detail.Products[i].Revenue.Add(m.TotalValue)
		detail.TotalQuantity += m.Quantity
		detail.TotalRevenue = detail.TotalRevenue.Add(m.TotalValue)
	}
	sort.SliceStable(detail.Products, func(i, j int) bool {
		return detail.Products[i].Revenue.GreaterThan(detail.Products[j].Revenue)
	})
	return detail, nil
}

// SnapshotStock reconstruye el stock de cada producto al cierre del mes deshaciendo los
// movimientos posteriores (MonthIndex > month). Con month nil devuelve el stock actual.
// El resultado nunca es negativo.
func SnapshotStock(products []*entity.Product, movements []*entity.Movement, month *int) map[int64]int {
	stock := make(map[int64]int, len(products))
	for _, p := range products {
		stock[p.ID] = p.CurrentStock
	}
	if month == nil {
		return stock
	}
	for _, m := range movements {
		if m.MonthIndex <= *month {
			continue
		}
		if qty, ok := stock[m.ProductID]; ok {
			stock[m.ProductID] = inventory.Reverse(m.Kind, qty, m.Quantity)
		}
	}
	for id, qty := range stock {
		if qty < 0 {
			stock[id] = 0
		}
	}
	return stock
}

func (uc *DashboardUseCase) load(ctx context.Context, filter repository.MovementFilter) ([]*entity.Product, []*entity.Movement, error) {
	type productsResult struct {
		items []*entity.Product
		err   error
	}
	type movementsResult struct {
		items []*entity.Movement
		err   error
	}
	prodCh := make(chan productsResult, 1)
	movCh := make(chan movementsResult, 1)

	go func() {
		items, err := uc.productRepo.List(ctx)
		prodCh <- productsResult{items, err}
	}()
	go func() {
		items, err := uc.movementRepo.List(ctx, filter)
		movCh <- movementsResult{items, err}
	}()

	prods := <-prodCh
	movs := <-movCh
	if prods.err != nil {
		return nil, nil, domain.AsStorage("dashboard: productos", prods.err)
	}
	if movs.err != nil {
		return nil, nil, domain.AsStorage("dashboard: movimientos", movs.err)
	}
	return prods.items, movs.items, nil
}

// periodLabel etiqueta legible del período, ej: "Março".
func periodLabel(month *int) string {
	if month == nil {
		return "Visão Geral"
	}
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return months[*month]
}
