package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12,50", "12.5"},
		{"12.50", "12.5"},
		{" 7 ", "7"},
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"5200", "5200"},
	}
	for _, tt := range tests {
		got, err := dto.ParseDecimal(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got.String(), tt.in)
	}

	_, err := dto.ParseDecimal("abc")
	assert.Error(t, err)
	_, err = dto.ParseDecimal("1,2,3")
	assert.Error(t, err)
}

func TestNumeric_UnmarshalNumeroYTexto(t *testing.T) {
	var in struct {
		A dto.Numeric `json:"a"`
		B dto.Numeric `json:"b"`
		C dto.Numeric `json:"c"`
		D dto.Numeric `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 10.5, "b": "3,25", "c": null, "d": ""}`), &in))

	a, err := in.A.Decimal("a", decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "10.5", a.String())

	b, err := in.B.Decimal("b", decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "3.25", b.String())

	assert.False(t, in.C.IsSet())
	assert.False(t, in.D.IsSet())
	c, err := in.C.Int("c", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, c)
}

func TestNumeric_ValorInvalidoEsValidationError(t *testing.T) {
	_, err := dto.NumericOf("dez").Decimal("price", decimal.Zero)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "price", vErr.Field)
}

func TestNumeric_IntRechazaFracciones(t *testing.T) {
	_, err := dto.NumericOf("2,5").Int("quantity", 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	v, err := dto.NumericOf("4,0").Int("quantity", 0)
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	id, err := dto.NumericOf("42").Int64("product_id", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}
