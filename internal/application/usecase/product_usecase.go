package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// ChangeNotifier recibe aviso tras cada escritura del catálogo (invalidación de caché).
type ChangeNotifier interface {
	InventoryChanged(ctx context.Context)
}

// ProductUseCase casos de uso del catálogo. El stock solo cambia vía movimientos;
// aquí únicamente se fija el stock inicial al crear.
type ProductUseCase struct {
	repo     repository.ProductRepository
	notifier ChangeNotifier
}

// NewProductUseCase construye el caso de uso. notifier puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, notifier ChangeNotifier) *ProductUseCase {
	return &ProductUseCase{repo: repo, notifier: notifier}
}

// List devuelve todos los productos en orden de creación.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, domain.AsStorage("listar productos", err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Count cantidad de productos del catálogo.
func (uc *ProductUseCase) Count(ctx context.Context) (int, error) {
	n, err := uc.repo.Count(ctx)
	if err != nil {
		return 0, domain.AsStorage("contar productos", err)
	}
	return n, nil
}

// Create valida y normaliza el request, aplica valores por defecto e inserta el producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	if _, err := uc.repo.Create(ctx, product); err != nil {
		return nil, domain.AsStorage("crear producto", err)
	}
	uc.changed(ctx)
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete elimina el producto y, en cascada, sus movimientos.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "deve ser um inteiro positivo")
	}
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return domain.AsStorage("eliminar producto", err)
	}
	if !removed {
		return domain.ErrNotFound
	}
	uc.changed(ctx)
	return nil
}

func (uc *ProductUseCase) changed(ctx context.Context) {
	if uc.notifier != nil {
		uc.notifier.InventoryChanged(ctx)
	}
}

func productFromRequest(in dto.CreateProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "é obrigatório")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = entity.DefaultCategory
	}
	supplier := strings.TrimSpace(in.Supplier)
	if supplier == "" {
		supplier = entity.DefaultSupplier
	}

	cost, err := in.Cost.Decimal("cost", decimal.Zero)
	if err != nil {
		return nil, err
	}
	price, err := in.Price.Decimal("price", decimal.Zero)
	if err != nil {
		return nil, err
	}
	if cost.IsNegative() {
		return nil, domain.NewValidationError("cost", "não pode ser negativo")
	}
	if price.IsNegative() {
		return nil, domain.NewValidationError("price", "não pode ser negativo")
	}

	minStock, err := in.MinStock.Int("min_stock", entity.DefaultMinStock)
	if err != nil {
		return nil, err
	}
	initial, err := in.InitialStock.Int("initial_stock", 0)
	if err != nil {
		return nil, err
	}
	if minStock < 0 {
		return nil, domain.NewValidationError("min_stock", "não pode ser negativo")
	}
	if initial < 0 {
		return nil, domain.NewValidationError("initial_stock", "não pode ser negativo")
	}

	return &entity.Product{
		Name:         name,
		Category:     category,
		Supplier:     supplier,
		Cost:         cost,
		Price:        price,
		MinStock:     minStock,
		CurrentStock: initial,
	}, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Supplier:     p.Supplier,
		Cost:         p.Cost,
		Price:        p.Price,
		MinStock:     p.MinStock,
		CurrentStock: p.CurrentStock,
		StockStatus:  string(inventory.ClassifyStock(p.CurrentStock, p.MinStock)),
	}
}
