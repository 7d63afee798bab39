package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/distribuidora-api/internal/domain/inventory"
)

func TestCostCalculator(t *testing.T) {
	// 10 u a 100 + 10 u a 200 => 150
	got := inventory.CostCalculator(10, decimal.NewFromInt(100), 10, decimal.NewFromInt(200))
	assert.True(t, got.Equal(decimal.NewFromInt(150)), got.String())

	// sin stock previo toma el costo de la entrada
	got = inventory.CostCalculator(0, decimal.Zero, 5, decimal.RequireFromString("12.50"))
	assert.Equal(t, "12.5", got.String())

	// redondeo a 2 decimales: (1*10 + 2*11) / 3 = 10.666...
	got = inventory.CostCalculator(1, decimal.NewFromInt(10), 2, decimal.NewFromInt(11))
	assert.Equal(t, "10.67", got.String())

	assert.True(t, inventory.CostCalculator(0, decimal.Zero, 0, decimal.Zero).IsZero())
}

func TestSaleReason(t *testing.T) {
	assert.Equal(t, "Venta directa", inventory.SaleReason(""))
	assert.Equal(t, "Venta directa", inventory.SaleReason("   "))
	assert.Equal(t, "Venta: mostrador", inventory.SaleReason("mostrador"))
	assert.Equal(t, "Ingreso de mercadería", inventory.EntryReason(""))
	assert.Equal(t, "Entrada: proveedor X", inventory.EntryReason("proveedor X"))
}

func TestDisplaySaleReason(t *testing.T) {
	assert.Equal(t, "mostrador", inventory.DisplaySaleReason("Venta: mostrador"))
	assert.Equal(t, "Venta directa", inventory.DisplaySaleReason("Venta directa"))
	assert.Equal(t, "No especificado", inventory.DisplaySaleReason(""))
	assert.Equal(t, "No especificado", inventory.DisplaySaleReason("Venta: "))
}

func TestSaleTotal(t *testing.T) {
	assert.Equal(t, "60.00", inventory.SaleTotal(decimal.RequireFromString("20.00"), 3))
	assert.Equal(t, "0.30", inventory.SaleTotal(decimal.RequireFromString("0.1"), 3))
	assert.Equal(t, "37.04", inventory.SaleTotal(decimal.RequireFromString("12.345"), 3))
}
