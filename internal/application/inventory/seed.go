package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// DemoProduct fila del catálogo de demostración.
type DemoProduct struct {
	Name, Category, Supplier string
	Cost, Price              float64
	MinStock, CurrentStock   int
}

// DemoCatalog catálogo de electrónicos usado para poblar una base vacía.
var DemoCatalog = []DemoProduct{
	{"iPhone 15 Pro 128GB", "Smartphones", "Apple Dist.", 5200, 7800, 10, 25},
	{"iPhone 14 128GB", "Smartphones", "Apple Dist.", 3800, 5200, 15, 8},
	{"MacBook Air M2", "Notebooks", "Apple Dist.", 6500, 8900, 5, 3},
	{"AirPods Pro 2", "Acessórios", "Apple Dist.", 1100, 1800, 20, 45},
	{"iPad Air 5ª Ger", "Tablets", "Apple Dist.", 3200, 4900, 8, 12},
	{"Samsung Galaxy S24 Ultra", "Smartphones", "Samsung Electronics", 5800, 8500, 10, 18},
	{"Samsung Galaxy A54", "Smartphones", "Samsung Electronics", 1200, 1900, 25, 50},
	{"Smart TV 55' 4K Crystal", "Televisores", "Samsung Electronics", 2100, 3200, 5, 10},
	{"Monitor Gamer Odyssey 27'", "Monitores", "Samsung Electronics", 1400, 2300, 6, 15},
	{"Galaxy Watch 6", "Wearables", "Samsung Electronics", 900, 1600, 12, 22},
	{"LG OLED TV 65' C3", "Televisores", "LG Brasil", 6800, 9500, 3, 2},
	{"Soundbar JBL 5.1", "Áudio", "JBL Harman", 1800, 2900, 4, 7},
	{"Caixa JBL Charge 5", "Áudio", "JBL Harman", 650, 1100, 15, 30},
	{"Headphone Sony WH-1000XM5", "Áudio", "Sony Latam", 1900, 2800, 5, 9},
	{"Notebook Dell Inspiron i5", "Notebooks", "Dell Computadores", 2800, 3900, 10, 14},
	{"Notebook Lenovo IdeaPad", "Notebooks", "Lenovo Brasil", 2300, 3400, 10, 20},
	{"Monitor LG Ultrawide 29'", "Monitores", "LG Brasil", 950, 1500, 8, 5},
	{"Teclado Mecânico Logitech", "Periféricos", "Logitech", 450, 850, 10, 35},
	{"Mouse Logitech MX Master", "Periféricos", "Logitech", 380, 650, 15, 28},
	{"Roteador TP-Link WiFi 6", "Redes", "TP-Link", 250, 550, 20, 40},
	{"Cabo USB-C 2m Reforçado", "Acessórios", "Baseus", 15, 60, 50, 120},
	{"Carregador Rápido 20W", "Acessórios", "Gorila Shield", 25, 90, 40, 85},
	{"Suporte Notebook Alumínio", "Acessórios", "Importado", 40, 120, 20, 15},
	{"Webcam Full HD Logitech", "Periféricos", "Logitech", 180, 350, 10, 8},
	{"HD Externo 1TB Toshiba", "Armazenamento", "Toshiba", 220, 450, 10, 18},
	{"SSD NVMe 1TB Kingston", "Armazenamento", "Kingston", 280, 580, 15, 25},
	{"PlayStation 5 Slim", "Games", "Sony Latam", 3100, 4200, 8, 12},
	{"Controle DualSense PS5", "Games", "Sony Latam", 300, 480, 20, 35},
	{"Nintendo Switch OLED", "Games", "Nintendo", 1900, 2600, 10, 6},
}

// SeedUseCase inserta el catálogo de demostración.
type SeedUseCase struct {
	productRepo repository.ProductRepository
	notifier    ChangeNotifier
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(productRepo repository.ProductRepository, notifier ChangeNotifier) *SeedUseCase {
	if notifier == nil {
		notifier = NopNotifier
	}
	return &SeedUseCase{productRepo: productRepo, notifier: notifier}
}

// SeedCatalog agrega los productos de DemoCatalog cuyo nombre aún no existe.
// Devuelve cuántos se insertaron.
func (uc *SeedUseCase) SeedCatalog(ctx context.Context) (int, error) {
	existing, err := uc.productRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: listar productos: %w", err)
	}
	names := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		names[p.Name] = struct{}{}
	}

	inserted := 0
	for _, d := range DemoCatalog {
		if _, ok := names[d.Name]; ok {
			continue
		}
		product := &entity.Product{
			Name:         d.Name,
			Category:     d.Category,
			Supplier:     d.Supplier,
			Cost:         decimal.NewFromFloat(d.Cost),
			Price:        decimal.NewFromFloat(d.Price),
			MinStock:     d.MinStock,
			CurrentStock: d.CurrentStock,
		}
		if _, err := uc.productRepo.Create(ctx, product); err != nil {
			return inserted, fmt.Errorf("seed: crear %q: %w", d.Name, err)
		}
		inserted++
	}
	if inserted > 0 {
		uc.notifier.InventoryChanged(ctx)
	}
	return inserted, nil
}
