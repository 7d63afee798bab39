package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id_producto, codigo, nombre, descripcion, precio_compra, precio_venta, stock_actual, fecha_creacion, fecha_actualizacion`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.PurchasePrice, &p.SalePrice,
		&p.StockActual, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) getOne(ctx context.Context, op, query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (r *ProductRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := []*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste un nuevo producto y completa ID y CreatedAt.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO productos (codigo, nombre, descripcion, precio_compra, precio_venta, stock_actual)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_producto, fecha_creacion`
	err := r.q.QueryRow(ctx, query,
		product.Code, product.Name, product.Description, product.PurchasePrice, product.SalePrice, product.StockActual,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.getOne(ctx, "get product", `SELECT `+productColumns+` FROM productos WHERE id_producto = $1`, id)
}

// GetByIDForUpdate obtiene el producto bloqueando la fila. Solo tiene efecto dentro de una tx.
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.getOne(ctx, "get product for update", `SELECT `+productColumns+` FROM productos WHERE id_producto = $1 FOR UPDATE`, id)
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	return r.getOne(ctx, "get product by code", `SELECT `+productColumns+` FROM productos WHERE codigo = $1`, code)
}

// List lista productos, más recientes primero.
func (r *ProductRepo) List(ctx context.Context, search string) ([]*entity.Product, error) {
	if search == "" {
		return r.list(ctx, "list products",
			`SELECT `+productColumns+` FROM productos ORDER BY fecha_creacion DESC, id_producto DESC`)
	}
	return r.list(ctx, "list products",
		`SELECT `+productColumns+` FROM productos
		WHERE codigo ILIKE $1 OR nombre ILIKE $1
		ORDER BY fecha_creacion DESC, id_producto DESC`, likePattern(search))
}

// Search busca en código, nombre y descripción.
func (r *ProductRepo) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	return r.list(ctx, "search products",
		`SELECT `+productColumns+` FROM productos
		WHERE codigo ILIKE $1 OR nombre ILIKE $1 OR descripcion ILIKE $1
		ORDER BY nombre`, likePattern(term))
}

// ListLowStock productos con stock menor o igual a maxStock.
func (r *ProductRepo) ListLowStock(ctx context.Context, maxStock int) ([]*entity.Product, error) {
	return r.list(ctx, "list low stock",
		`SELECT `+productColumns+` FROM productos WHERE stock_actual <= $1 ORDER BY stock_actual, nombre`, maxStock)
}

// Update actualiza todos los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE productos
		SET codigo = $2, nombre = $3, descripcion = $4, precio_compra = $5, precio_venta = $6,
		    stock_actual = $7, fecha_actualizacion = now()
		WHERE id_producto = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Code, product.Name, product.Description,
		product.PurchasePrice, product.SalePrice, product.StockActual,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementStock descuenta en una sola sentencia condicionada a stock suficiente.
// Sin fila afectada devuelve domain.ErrInsufficientStock (o ErrNotFound si el producto no existe).
func (r *ProductRepo) DecrementStock(ctx context.Context, id int64, qty int) (int, error) {
	var newStock int
	err := r.q.QueryRow(ctx, `
		UPDATE productos
		SET stock_actual = stock_actual - $2, fecha_actualizacion = now()
		WHERE id_producto = $1 AND stock_actual >= $2
		RETURNING stock_actual`, id, qty).Scan(&newStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return 0, getErr
			}
			if p == nil {
				return 0, domain.ErrNotFound
			}
			return 0, &domain.InsufficientStockError{Available: p.StockActual}
		}
		return 0, fmt.Errorf("decrement stock: %w", err)
	}
	return newStock, nil
}

// IncrementStock suma qty al stock y devuelve el nuevo valor.
func (r *ProductRepo) IncrementStock(ctx context.Context, id int64, qty int) (int, error) {
	var newStock int
	err := r.q.QueryRow(ctx, `
		UPDATE productos
		SET stock_actual = stock_actual + $2, fecha_actualizacion = now()
		WHERE id_producto = $1
		RETURNING stock_actual`, id, qty).Scan(&newStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("increment stock: %w", err)
	}
	return newStock, nil
}

// UpdatePurchasePrice actualiza solo el precio de compra (costo promedio tras una entrada).
func (r *ProductRepo) UpdatePurchasePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE productos SET precio_compra = $2, fecha_actualizacion = now() WHERE id_producto = $1`,
		id, price,
	)
	if err != nil {
		return fmt.Errorf("update purchase price: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto. La FK RESTRICT de movimientos se traduce a domain.ErrConflict.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id_producto = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
