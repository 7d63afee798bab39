package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la distribuidora.
// StockActual solo cambia por movimientos (venta o entrada) o por edición explícita del administrador.
type Product struct {
	ID            int64
	Code          string // código único
	Name          string
	Description   string
	PurchasePrice decimal.Decimal // precio de compra (costo promedio tras entradas con costo)
	SalePrice     decimal.Decimal // precio de venta
	StockActual   int
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Margin diferencia entre precio de venta y precio de compra.
func (p *Product) Margin() decimal.Decimal {
	return p.SalePrice.Sub(p.PurchasePrice)
}
