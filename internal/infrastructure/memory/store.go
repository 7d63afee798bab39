// Package memory implementa los repositorios en memoria de proceso.
// Se usa con DB_DRIVER=memory y como almacenamiento transaccional en los tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

var (
	_ inventory.TxRunner       = (*Store)(nil)
	_ repository.HealthChecker = (*Store)(nil)
)

// Store guarda todas las tablas detrás de un único mutex. Run toma el mutex durante toda la
// transacción y restaura la copia previa si fn falla, así que las transacciones se serializan.
type Store struct {
	mu  sync.Mutex
	st  *state
	now func() time.Time
}

type state struct {
	products  map[int64]entity.Product
	users     map[int64]entity.User
	types     map[int64]entity.MovementType
	movements []entity.Movement

	nextProduct  int64
	nextUser     int64
	nextType     int64
	nextMovement int64
}

func newState() *state {
	return &state{
		products: map[int64]entity.Product{},
		users:    map[int64]entity.User{},
		types:    map[int64]entity.MovementType{},
	}
}

func (s *state) clone() *state {
	c := *s
	c.products = make(map[int64]entity.Product, len(s.products))
	for k, v := range s.products {
		c.products[k] = v
	}
	c.users = make(map[int64]entity.User, len(s.users))
	for k, v := range s.users {
		c.users[k] = v
	}
	c.types = make(map[int64]entity.MovementType, len(s.types))
	for k, v := range s.types {
		c.types[k] = v
	}
	c.movements = append([]entity.Movement(nil), s.movements...)
	return &c
}

// Option configura el Store.
type Option func(*Store)

// WithClock fija el reloj usado para fechas de creación.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore crea un almacenamiento vacío.
func NewStore(opts ...Option) *Store {
	s := &Store{st: newState(), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// view da acceso al estado; dentro de una transacción el mutex ya está tomado por Run.
type view struct {
	s    *Store
	inTx bool
}

func (v view) read(fn func(st *state) error) error {
	if !v.inTx {
		v.s.mu.Lock()
		defer v.s.mu.Unlock()
	}
	return fn(v.s.st)
}

// write fuera de transacción es atómico: si fn falla se descarta lo que haya modificado.
func (v view) write(fn func(st *state) error) error {
	if v.inTx {
		return fn(v.s.st)
	}
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	work := v.s.st.clone()
	if err := fn(work); err != nil {
		return err
	}
	v.s.st = work
	return nil
}

// Run ejecuta fn con repositorios atados a la transacción. Error en fn => se restaura el estado.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	typeRepo repository.MovementTypeRepository,
	movRepo repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	v := view{s: s, inTx: true}
	if err := fn(&ProductRepo{v: v}, &MovementTypeRepo{v: v}, &MovementRepo{v: v}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// Ping siempre responde mientras el contexto siga vivo.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{v: view{s: s}} }

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{v: view{s: s}} }

// MovementTypes repositorio de tipos de movimiento.
func (s *Store) MovementTypes() *MovementTypeRepo { return &MovementTypeRepo{v: view{s: s}} }

// Movements repositorio de movimientos.
func (s *Store) Movements() *MovementRepo { return &MovementRepo{v: view{s: s}} }

// Reports consultas de reporte.
func (s *Store) Reports() *ReportRepo { return &ReportRepo{v: view{s: s}} }

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
