package inventory

import (
	"context"

	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error no queda ningún cambio persistido.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		typeRepo repository.MovementTypeRepository,
		movRepo repository.MovementRepository,
	) error) error
}
