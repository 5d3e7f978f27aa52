package dto

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain"
)

// Numeric valor numérico "flexible" de la frontera HTTP: acepta números JSON o strings
// ("12,50", " 7 ", "1.234,56"). Guarda el texto crudo; la conversión ocurre en Decimal/Int
// para que un valor inválido sea un ValidationError con el nombre del campo.
type Numeric struct {
	raw string
	set bool
}

// NumericOf construye un Numeric a partir de texto (formularios, query params, tests).
func NumericOf(s string) Numeric {
	s = strings.TrimSpace(s)
	return Numeric{raw: s, set: s != ""}
}

// UnmarshalJSON implementa json.Unmarshaler.
func (n *Numeric) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = Numeric{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*n = NumericOf(str)
		return nil
	}
	*n = NumericOf(s)
	return nil
}

// MarshalJSON devuelve el texto normalizado (o null).
func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	d, err := ParseDecimal(n.raw)
	if err != nil {
		return json.Marshal(n.raw)
	}
	return []byte(d.String()), nil
}

// IsSet indica si el cliente envió un valor no vacío.
func (n Numeric) IsSet() bool { return n.set }

// Decimal devuelve el valor o def si no fue enviado.
func (n Numeric) Decimal(field string, def decimal.Decimal) (decimal.Decimal, error) {
	if !n.set {
		return def, nil
	}
	d, err := ParseDecimal(n.raw)
	if err != nil {
		return decimal.Zero, domain.NewValidationError(field, "não é um número válido")
	}
	return d, nil
}

// Int devuelve el valor entero o def si no fue enviado. Rechaza fracciones.
func (n Numeric) Int(field string, def int) (int, error) {
	v, err := n.Int64(field, int64(def))
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, domain.NewValidationError(field, "fora do intervalo")
	}
	return int(v), nil
}

// Int64 como Int pero para identificadores.
func (n Numeric) Int64(field string, def int64) (int64, error) {
	if !n.set {
		return def, nil
	}
	d, err := ParseDecimal(n.raw)
	if err != nil {
		return 0, domain.NewValidationError(field, "não é um número válido")
	}
	if !d.IsInteger() {
		return 0, domain.NewValidationError(field, "deve ser um número inteiro")
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || d.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return 0, domain.NewValidationError(field, "fora do intervalo")
	}
	return d.IntPart(), nil
}

// ParseDecimal normaliza separadores: "12,5" → 12.5; "1.234,56" → 1234.56; "1,234.56" → 1234.56.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	comma := strings.LastIndex(s, ",")
	dot := strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot >= 0 && comma > dot:
		// formato pt-BR: punto de miles, coma decimal
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case comma >= 0 && dot >= 0:
		// formato en-US: coma de miles
		s = strings.ReplaceAll(s, ",", "")
	case comma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}
