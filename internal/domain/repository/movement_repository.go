package repository

import (
	"context"
	"time"

	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
)

// SaleFilter rango opcional (inclusivo, por fecha de movimiento) para el historial de ventas.
type SaleFilter struct {
	From *time.Time
	To   *time.Time
}

// MovementRepository persistencia de movimientos. Solo alta y lectura: los movimientos son inmutables.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	CountByProduct(ctx context.Context, productID int64) (int, error)
	// ListSales devuelve los movimientos de tipo Salida, más recientes primero.
	ListSales(ctx context.Context, filter SaleFilter) ([]*entity.SaleRecord, error)
}
