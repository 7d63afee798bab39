package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement registro inmutable de una entrada o salida de stock. Nunca se actualiza ni se borra.
type Movement struct {
	ID             int64
	ProductID      int64
	UserID         int64
	MovementTypeID int64
	Quantity       int // siempre positiva; el tipo define el sentido
	Date           time.Time
	Reason         string
	CreatedAt      time.Time
}

// SaleRecord venta del historial con los datos unidos de producto y usuario.
type SaleRecord struct {
	MovementID       int64
	ProductCode      string
	ProductName      string
	ProductSalePrice decimal.Decimal
	Quantity         int
	Reason           string
	Date             time.Time
	CreatedAt        time.Time
	Username         string
	UserRole         string
}

// Total precio de venta por cantidad.
func (s *SaleRecord) Total() decimal.Decimal {
	return s.ProductSalePrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
