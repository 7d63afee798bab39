package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria. Código único como el UNIQUE de la tabla.
type ProductRepo struct {
	v view
}

func codeTaken(st *state, code string, exceptID int64) bool {
	for id, p := range st.products {
		if id != exceptID && p.Code == code {
			return true
		}
	}
	return false
}

// Create asigna ID y fecha de creación.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.v.write(func(st *state) error {
		if codeTaken(st, product.Code, 0) {
			return domain.ErrDuplicate
		}
		st.nextProduct++
		product.ID = st.nextProduct
		product.CreatedAt = r.v.s.now()
		product.UpdatedAt = nil
		st.products[product.ID] = *product
		return nil
	})
}

func (r *ProductRepo) get(id int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.v.read(func(st *state) error {
		if p, ok := st.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return r.get(id)
}

// GetByIDForUpdate igual que GetByID: dentro de Run el mutex ya serializa.
func (r *ProductRepo) GetByIDForUpdate(_ context.Context, id int64) (*entity.Product, error) {
	return r.get(id)
}

// GetByCode busca por código exacto.
func (r *ProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	var out *entity.Product
	err := r.v.read(func(st *state) error {
		for _, p := range st.products {
			if p.Code == code {
				p := p
				out = &p
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) filter(keep func(p entity.Product) bool, less func(a, b *entity.Product) bool) ([]*entity.Product, error) {
	list := []*entity.Product{}
	err := r.v.read(func(st *state) error {
		for _, p := range st.products {
			if keep(p) {
				p := p
				list = append(list, &p)
			}
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return less(list[i], list[j]) })
	return list, err
}

func newestFirst(a, b *entity.Product) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// List más recientes primero; search filtra por código o nombre sin distinguir mayúsculas.
func (r *ProductRepo) List(_ context.Context, search string) ([]*entity.Product, error) {
	return r.filter(func(p entity.Product) bool {
		return search == "" || containsFold(p.Code, search) || containsFold(p.Name, search)
	}, newestFirst)
}

// Search por código, nombre o descripción, ordenado por nombre.
func (r *ProductRepo) Search(_ context.Context, term string) ([]*entity.Product, error) {
	return r.filter(func(p entity.Product) bool {
		return containsFold(p.Code, term) || containsFold(p.Name, term) || containsFold(p.Description, term)
	}, func(a, b *entity.Product) bool { return a.Name < b.Name })
}

// ListLowStock productos con stock <= maxStock.
func (r *ProductRepo) ListLowStock(_ context.Context, maxStock int) ([]*entity.Product, error) {
	return r.filter(func(p entity.Product) bool { return p.StockActual <= maxStock },
		func(a, b *entity.Product) bool {
			if a.StockActual != b.StockActual {
				return a.StockActual < b.StockActual
			}
			return a.Name < b.Name
		})
}

// Update reemplaza los campos editables.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	return r.v.write(func(st *state) error {
		cur, ok := st.products[product.ID]
		if !ok {
			return domain.ErrNotFound
		}
		if codeTaken(st, product.Code, product.ID) {
			return domain.ErrDuplicate
		}
		now := r.v.s.now()
		cur.Code = product.Code
		cur.Name = product.Name
		cur.Description = product.Description
		cur.PurchasePrice = product.PurchasePrice
		cur.SalePrice = product.SalePrice
		cur.StockActual = product.StockActual
		cur.UpdatedAt = &now
		st.products[product.ID] = cur
		product.CreatedAt = cur.CreatedAt
		product.UpdatedAt = cur.UpdatedAt
		return nil
	})
}

// DecrementStock descuenta solo si alcanza; si no, *domain.InsufficientStockError con lo disponible.
func (r *ProductRepo) DecrementStock(_ context.Context, id int64, qty int) (int, error) {
	var newStock int
	err := r.v.write(func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrNotFound
		}
		if p.StockActual < qty {
			return &domain.InsufficientStockError{Available: p.StockActual}
		}
		now := r.v.s.now()
		p.StockActual -= qty
		p.UpdatedAt = &now
		st.products[id] = p
		newStock = p.StockActual
		return nil
	})
	return newStock, err
}

// IncrementStock suma qty al stock.
func (r *ProductRepo) IncrementStock(_ context.Context, id int64, qty int) (int, error) {
	var newStock int
	err := r.v.write(func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrNotFound
		}
		now := r.v.s.now()
		p.StockActual += qty
		p.UpdatedAt = &now
		st.products[id] = p
		newStock = p.StockActual
		return nil
	})
	return newStock, err
}

// UpdatePurchasePrice actualiza el precio de compra.
func (r *ProductRepo) UpdatePurchasePrice(_ context.Context, id int64, price decimal.Decimal) error {
	return r.v.write(func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrNotFound
		}
		now := r.v.s.now()
		p.PurchasePrice = price
		p.UpdatedAt = &now
		st.products[id] = p
		return nil
	})
}

// Delete rechaza con domain.ErrConflict si algún movimiento referencia al producto.
func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	return r.v.write(func(st *state) error {
		if _, ok := st.products[id]; !ok {
			return domain.ErrNotFound
		}
		for _, m := range st.movements {
			if m.ProductID == id {
				return domain.ErrConflict
			}
		}
		delete(st.products, id)
		return nil
	})
}
