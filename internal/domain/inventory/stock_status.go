package inventory

// StockStatus clasificación del nivel de stock frente al punto de reorden.
type StockStatus string

const (
	StockOutOfStock StockStatus = "out_of_stock"
	StockCritical   StockStatus = "critical"
	StockLow        StockStatus = "low"
	StockNormal     StockStatus = "normal"
)

// ClassifyStock aplica las reglas del tablero:
// 0 → agotado, < mínimo → crítico, < 1.5 × mínimo → bajo, resto → normal.
func ClassifyStock(qty, minStock int) StockStatus {
	switch {
	case qty <= 0:
		return StockOutOfStock
	case qty < minStock:
		return StockCritical
	case 2*qty < 3*minStock:
		return StockLow
	default:
		return StockNormal
	}
}

// IsCritical agotado o crítico.
func (s StockStatus) IsCritical() bool {
	return s == StockOutOfStock || s == StockCritical
}
