package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Get devuelven (nil, nil) cuando no existe la fila.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción (SELECT ... FOR UPDATE).
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	// List devuelve todos los productos, más recientes primero; search filtra por código o nombre.
	List(ctx context.Context, search string) ([]*entity.Product, error)
	// Search busca en código, nombre y descripción, ordenado por nombre.
	Search(ctx context.Context, term string) ([]*entity.Product, error)
	ListLowStock(ctx context.Context, maxStock int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// DecrementStock descuenta qty solo si hay stock suficiente; si no, domain.ErrInsufficientStock.
	DecrementStock(ctx context.Context, id int64, qty int) (newStock int, err error)
	IncrementStock(ctx context.Context, id int64, qty int) (newStock int, err error)
	UpdatePurchasePrice(ctx context.Context, id int64, price decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}
