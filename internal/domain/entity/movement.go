package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind tipo cerrado de movimiento de stock.
type MovementKind string

// Tipos de movimiento.
const (
	MovementInbound  MovementKind = "inbound"  // entrada (compra, reposición), valorada al costo
	MovementOutbound MovementKind = "outbound" // salida (venta), valorada al precio
)

// DefaultReason motivo usado cuando el cliente no envía uno.
const DefaultReason = "Geral"

// ParseMovementKind acepta los valores del front-end ("entrada"/"saida")
// y los canónicos ("inbound"/"outbound"). Cualquier otro valor devuelve false.
func ParseMovementKind(s string) (MovementKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inbound", "entrada":
		return MovementInbound, true
	case "outbound", "saida":
		return MovementOutbound, true
	}
	return "", false
}

// Valid indica si el tipo pertenece a la enumeración.
func (k MovementKind) Valid() bool {
	return k == MovementInbound || k == MovementOutbound
}

// Movement registro inmutable del libro de movimientos.
// ProductName y Category son una copia del producto al momento del movimiento.
type Movement struct {
	ID          int64
	ProductID   int64
	ProductName string
	Category    string
	Kind        MovementKind
	Quantity    int
	Date        time.Time // granularidad de día
	MonthIndex  int       // 0 = enero
	Reason      string
	TotalValue  decimal.Decimal
}

// MonthIndexOf devuelve el mes 0-based de t.
func MonthIndexOf(t time.Time) int {
	return int(t.Month()) - 1
}

// DateOnly trunca t a medianoche conservando la zona horaria.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
