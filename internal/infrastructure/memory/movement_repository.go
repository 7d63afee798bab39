package memory

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

var (
	_ repository.MovementTypeRepository = (*MovementTypeRepo)(nil)
	_ repository.MovementRepository     = (*MovementRepo)(nil)
)

// errForeignKey equivale a la violación de llave foránea de la tabla movimientos.
var errForeignKey = errors.New("memory: insert movement: llave foránea inexistente")

// MovementTypeRepo tipos de movimiento en memoria (nombre único).
type MovementTypeRepo struct {
	v view
}

// Ensure busca por nombre y crea si falta, bajo el mismo bloqueo.
func (r *MovementTypeRepo) Ensure(_ context.Context, name, description string) (int64, error) {
	var id int64
	err := r.v.write(func(st *state) error {
		for _, t := range st.types {
			if t.Name == name {
				id = t.ID
				return nil
			}
		}
		st.nextType++
		id = st.nextType
		st.types[id] = entity.MovementType{ID: id, Name: name, Description: description}
		return nil
	})
	return id, err
}

// GetByName devuelve (nil, nil) si no existe.
func (r *MovementTypeRepo) GetByName(_ context.Context, name string) (*entity.MovementType, error) {
	var out *entity.MovementType
	err := r.v.read(func(st *state) error {
		for _, t := range st.types {
			if t.Name == name {
				t := t
				out = &t
				return nil
			}
		}
		return nil
	})
	return out, err
}

// List ordenado por id.
func (r *MovementTypeRepo) List(_ context.Context) ([]*entity.MovementType, error) {
	list := []*entity.MovementType{}
	err := r.v.read(func(st *state) error {
		for _, t := range st.types {
			t := t
			list = append(list, &t)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, err
}

// MovementRepo movimientos en memoria. Solo alta y lectura.
type MovementRepo struct {
	v view
}

// Create valida las referencias como lo harían las FK y asigna ID.
func (r *MovementRepo) Create(_ context.Context, m *entity.Movement) error {
	return r.v.write(func(st *state) error {
		_, okP := st.products[m.ProductID]
		_, okU := st.users[m.UserID]
		_, okT := st.types[m.MovementTypeID]
		if !okP || !okU || !okT {
			return errForeignKey
		}
		st.nextMovement++
		m.ID = st.nextMovement
		m.Date = dateOnly(m.Date)
		m.CreatedAt = r.v.s.now()
		st.movements = append(st.movements, *m)
		return nil
	})
}

// CountByProduct cuenta movimientos del producto.
func (r *MovementRepo) CountByProduct(_ context.Context, productID int64) (int, error) {
	n := 0
	err := r.v.read(func(st *state) error {
		for _, m := range st.movements {
			if m.ProductID == productID {
				n++
			}
		}
		return nil
	})
	return n, err
}

// ListSales movimientos de tipo Salida con producto y usuario, más recientes primero.
func (r *MovementRepo) ListSales(_ context.Context, filter repository.SaleFilter) ([]*entity.SaleRecord, error) {
	list := []*entity.SaleRecord{}
	err := r.v.read(func(st *state) error {
		for _, m := range st.movements {
			t := st.types[m.MovementTypeID]
			if t.Name != entity.MovementTypeSalida {
				continue
			}
			if filter.From != nil && m.Date.Before(dateOnly(*filter.From)) {
				continue
			}
			if filter.To != nil && m.Date.After(dateOnly(*filter.To)) {
				continue
			}
			p, okP := st.products[m.ProductID]
			u, okU := st.users[m.UserID]
			if !okP || !okU {
				continue
			}
			list = append(list, &entity.SaleRecord{
				MovementID:       m.ID,
				ProductCode:      p.Code,
				ProductName:      p.Name,
				ProductSalePrice: p.SalePrice,
				Quantity:         m.Quantity,
				Reason:           m.Reason,
				Date:             m.Date,
				CreatedAt:        m.CreatedAt,
				Username:         u.Username,
				UserRole:         u.Role,
			})
		}
		return nil
	})
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.MovementID > b.MovementID
	})
	return list, err
}
