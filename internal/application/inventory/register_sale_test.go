package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
	"github.com/jhoicas/distribuidora-api/internal/infrastructure/memory"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

type fixture struct {
	store   *memory.Store
	user    *entity.User
	product *entity.Product
}

// newFixture producto con stock 10 y precio de venta 20.00, y un empleado activo.
func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	u := &entity.User{Username: "Juan Perez", PasswordHash: "x", Role: entity.RoleEmployee, Status: entity.StatusActive}
	require.NoError(t, s.Users().Create(ctx, u))
	p := &entity.Product{
		Code:          "P-005",
		Name:          "Aceite 1L",
		Description:   "Aceite vegetal",
		PurchasePrice: decimal.RequireFromString("12.00"),
		SalePrice:     decimal.RequireFromString("20.00"),
		StockActual:   10,
	}
	require.NoError(t, s.Products().Create(ctx, p))
	return fixture{store: s, user: u, product: p}
}

func (f fixture) stock(t *testing.T) int {
	t.Helper()
	p, err := f.store.Products().GetByID(context.Background(), f.product.ID)
	require.NoError(t, err)
	return p.StockActual
}

func (f fixture) movements(t *testing.T) int {
	t.Helper()
	n, err := f.store.Movements().CountByProduct(context.Background(), f.product.ID)
	require.NoError(t, err)
	return n
}

func TestRegisterSale_Exito(t *testing.T) {
	f := newFixture(t)
	uc := inventory.NewRegisterSaleUseCase(f.store, logger.Nop())

	out, err := uc.RegisterSale(context.Background(), f.user.ID, dto.RegisterSaleRequest{
		ProductoID: float64(f.product.ID),
		Cantidad:   float64(3),
		Fecha:      "2024-01-01",
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "Venta registrada exitosamente", out.Message)
	assert.Equal(t, 7, out.NuevoStock)
	assert.Equal(t, 3, out.Venta.Cantidad)
	assert.Equal(t, "60.00", out.Venta.Total)
	assert.Equal(t, "Aceite 1L", out.Venta.Producto)
	assert.NotZero(t, out.Venta.ID)

	assert.Equal(t, 7, f.stock(t))
	assert.Equal(t, 1, f.movements(t))

	sales, err := f.store.Movements().ListSales(context.Background(), repository.SaleFilter{})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Venta directa", sales[0].Reason)
	assert.Equal(t, 3, sales[0].Quantity)
}

func TestRegisterSale_AceptaTextoNumerico(t *testing.T) {
	f := newFixture(t)
	uc := inventory.NewRegisterSaleUseCase(f.store, logger.Nop())

	out, err := uc.RegisterSale(context.Background(), f.user.ID, dto.RegisterSaleRequest{
		ProductoID: "1",
		Cantidad:   " 2 ",
		Fecha:      "2024-03-05T10:00:00-05:00",
		Motivo:     "cliente frecuente",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, out.NuevoStock)

	sales, err := f.store.Movements().ListSales(context.Background(), repository.SaleFilter{})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Venta: cliente frecuente", sales[0].Reason)
	assert.Equal(t, "2024-03-05", sales[0].Date.Format("2006-01-02"))
}

func TestRegisterSale_StockInsuficiente(t *testing.T) {
	f := newFixture(t)
	uc := inventory.NewRegisterSaleUseCase(f.store, logger.Nop())

	_, err := uc.RegisterSale(context.Background(), f.user.ID, dto.RegisterSaleRequest{
		ProductoID: float64(f.product.ID),
		Cantidad:   float64(15),
		Fecha:      "2024-01-01",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "Stock insuficiente. Disponible: 10", err.Error())

	assert.Equal(t, 10, f.stock(t))
	assert.Equal(t, 0, f.movements(t))
}

func TestRegisterSale_Validaciones(t *testing.T) {
	f := newFixture(t)
	uc := inventory.NewRegisterSaleUseCase(f.store, logger.Nop())

	cases := []struct {
		name    string
		in      dto.RegisterSaleRequest
		message string
		fields  []string
	}{
		{"sin fecha", dto.RegisterSaleRequest{ProductoID: 1.0, Cantidad: 3.0}, inventory.MsgMissingFields, []string{"fecha"}},
		{"todo vacío", dto.RegisterSaleRequest{ProductoID: "", Cantidad: nil, Fecha: " "}, inventory.MsgMissingFields, []string{"productoId", "cantidad", "fecha"}},
		{"cantidad cero", dto.RegisterSaleRequest{ProductoID: 1.0, Cantidad: 0.0, Fecha: "2024-01-01"}, inventory.MsgInvalidQuantity, []string{"cantidad"}},
		{"cantidad negativa", dto.RegisterSaleRequest{ProductoID: 1.0, Cantidad: "-2", Fecha: "2024-01-01"}, inventory.MsgInvalidQuantity, []string{"cantidad"}},
		{"cantidad decimal", dto.RegisterSaleRequest{ProductoID: 1.0, Cantidad: 1.5, Fecha: "2024-01-01"}, inventory.MsgInvalidQuantity, []string{"cantidad"}},
		{"cantidad texto", dto.RegisterSaleRequest{ProductoID: 1.0, Cantidad: "tres", Fecha: "2024-01-01"}, inventory.MsgInvalidQuantity, []string{"cantidad"}},
		{"producto inválido", dto.RegisterSaleRequest{ProductoID: "abc", Cantidad: 1.0, Fecha: "2024-01-01"}, inventory.MsgInvalidProduct, []string{"productoId"}},
		{"fecha inválida", dto.RegisterSaleRequest{ProductoID: 1.0, Cantidad: 1.0, Fecha: "01/02/2024"}, inventory.MsgInvalidDate, []string{"fecha"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterSale(context.Background(), f.user.ID, tc.in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.message, ve.Message)
			assert.Equal(t, tc.fields, ve.Fields)
		})
	}
	assert.Equal(t, 10, f.stock(t))
	assert.Equal(t, 0, f.movements(t))
}

func TestRegisterSale_ProductoInexistente(t *testing.T) {
	f := newFixture(t)
	uc := inventory.NewRegisterSaleUseCase(f.store, logger.Nop())

	_, err := uc.RegisterSale(context.Background(), f.user.ID, dto.RegisterSaleRequest{
		ProductoID: 999.0, Cantidad: 1.0, Fecha: "2024-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	types, err := f.store.MovementTypes().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, types, "la validación falla antes de resolver el tipo")
}

// runnerWrapper envuelve el repositorio de productos de cada transacción.
type runnerWrapper struct {
	inner inventory.TxRunner
	wrap  func(repository.ProductRepository) repository.ProductRepository
}

func (w runnerWrapper) Run(ctx context.Context, fn func(repository.ProductRepository, repository.MovementTypeRepository, repository.MovementRepository) error) error {
	return w.inner.Run(ctx, func(p repository.ProductRepository, t repository.MovementTypeRepository, m repository.MovementRepository) error {
		return fn(w.wrap(p), t, m)
	})
}

type failingDecrement struct {
	repository.ProductRepository
	err error
}

func (f failingDecrement) DecrementStock(context.Context, int64, int) (int, error) {
	return 0, f.err
}

// staleRead simula una lectura que vio más stock del que realmente queda.
type staleRead struct {
	repository.ProductRepository
}

func (s staleRead) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := s.ProductRepository.GetByIDForUpdate(ctx, id)
	if p != nil {
		p.StockActual = 1000
	}
	return p, err
}

func TestRegisterSale_FallaAlDescontarRevierteMovimiento(t *testing.T) {
	f := newFixture(t)
	dbErr := errors.New("conexión perdida")
	runner := runnerWrapper{inner: f.store, wrap: func(p repository.ProductRepository) repository.ProductRepository {
		return failingDecrement{ProductRepository: p, err: dbErr}
	}}
	uc := inventory.NewRegisterSaleUseCase(runner, logger.Nop())

	_, err := uc.RegisterSale(context.Background(), f.user.ID, dto.RegisterSaleRequest{
		ProductoID: float64(f.product.ID), Cantidad: 2.0, Fecha: "2024-01-01",
	})
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, 10, f.stock(t))
	assert.Equal(t, 0, f.movements(t))
}

func TestRegisterSale_DescuentoCondicionadoRechaza(t *testing.T) {
	f := newFixture(t)
	runner := runnerWrapper{inner: f.store, wrap: func(p repository.ProductRepository) repository.ProductRepository {
		return staleRead{ProductRepository: p}
	}}
	uc := inventory.NewRegisterSaleUseCase(runner, logger.Nop())

	_, err := uc.RegisterSale(context.Background(), f.user.ID, dto.RegisterSaleRequest{
		ProductoID: float64(f.product.ID), Cantidad: 50.0, Fecha: "2024-01-01",
	})
	var ise *domain.InsufficientStockError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, 10, ise.Available)
	assert.Equal(t, 10, f.stock(t), "el stock nunca queda negativo")
	assert.Equal(t, 0, f.movements(t))
}

func TestRegisterSale_Concurrentes(t *testing.T) {
	f := newFixture(t)
	uc := inventory.NewRegisterSaleUseCase(f.store, logger.Nop())

	const requests = 25
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		rejected int
	)
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RegisterSale(context.Background(), f.user.ID, dto.RegisterSaleRequest{
				ProductoID: float64(f.product.ID), Cantidad: 1.0, Fecha: "2024-01-01",
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errors.Is(err, domain.ErrInsufficientStock) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, ok)
	assert.Equal(t, requests-10, rejected)
	assert.Equal(t, 0, f.stock(t))
	assert.Equal(t, 10, f.movements(t))

	types, err := f.store.MovementTypes().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, types, 1, "un solo tipo Salida aun con primer uso concurrente")
}

func TestResolveMovementType_Idempotente(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	id1, err := inventory.ResolveMovementType(ctx, s.MovementTypes(), entity.MovementTypeSalida)
	require.NoError(t, err)
	id2, err := inventory.ResolveMovementType(ctx, s.MovementTypes(), entity.MovementTypeSalida)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	mt, err := s.MovementTypes().GetByName(ctx, entity.MovementTypeSalida)
	require.NoError(t, err)
	assert.Equal(t, "Salida de productos por venta u otros", mt.Description)

	_, err = inventory.ResolveMovementType(ctx, s.MovementTypes(), " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
