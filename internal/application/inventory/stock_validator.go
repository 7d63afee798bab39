package inventory

import (
	"context"

	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

// ValidateStock bloquea la fila del producto (FOR UPDATE) y verifica que alcance la cantidad.
// Debe llamarse dentro de TxRunner.Run para que el bloqueo dure hasta el descuento.
func ValidateStock(ctx context.Context, repo repository.ProductRepository, productID int64, qty int) (*entity.Product, error) {
	product, err := repo.GetByIDForUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if qty > product.StockActual {
		return nil, &domain.InsufficientStockError{Available: product.StockActual}
	}
	return product, nil
}
