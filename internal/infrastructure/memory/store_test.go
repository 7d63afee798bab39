package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
	"github.com/jhoicas/distribuidora-api/internal/infrastructure/memory"
)

func newProduct(code string, stock int) *entity.Product {
	return &entity.Product{
		Code:          code,
		Name:          "Producto " + code,
		Description:   "desc",
		PurchasePrice: decimal.RequireFromString("10.00"),
		SalePrice:     decimal.RequireFromString("20.00"),
		StockActual:   stock,
	}
}

func TestRun_ErrorRestauraEstado(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	p := newProduct("P1", 10)
	require.NoError(t, s.Products().Create(ctx, p))

	boom := errors.New("falla")
	err := s.Run(ctx, func(pr repository.ProductRepository, _ repository.MovementTypeRepository, _ repository.MovementRepository) error {
		_, err := pr.DecrementStock(ctx, p.ID, 4)
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.StockActual)
}

func TestProductRepo_CodigoUnico(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Products().Create(ctx, newProduct("P1", 1)))

	err := s.Products().Create(ctx, newProduct("P1", 1))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductRepo_DecrementStockCondicionado(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	p := newProduct("P1", 3)
	require.NoError(t, s.Products().Create(ctx, p))

	_, err := s.Products().DecrementStock(ctx, p.ID, 4)
	var ise *domain.InsufficientStockError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, 3, ise.Available)

	n, err := s.Products().DecrementStock(ctx, p.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestProductRepo_DeleteConMovimientos(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	p := newProduct("P1", 3)
	require.NoError(t, s.Products().Create(ctx, p))
	u := &entity.User{Username: "ana", PasswordHash: "x", Role: entity.RoleEmployee, Status: entity.StatusActive}
	require.NoError(t, s.Users().Create(ctx, u))
	typeID, err := s.MovementTypes().Ensure(ctx, entity.MovementTypeSalida, entity.MovementTypeSalidaDesc)
	require.NoError(t, err)
	require.NoError(t, s.Movements().Create(ctx, &entity.Movement{ProductID: p.ID, UserID: u.ID, MovementTypeID: typeID, Quantity: 1}))

	assert.ErrorIs(t, s.Products().Delete(ctx, p.ID), domain.ErrConflict)

	libre := newProduct("P2", 0)
	require.NoError(t, s.Products().Create(ctx, libre))
	assert.NoError(t, s.Products().Delete(ctx, libre.ID))
	assert.ErrorIs(t, s.Products().Delete(ctx, libre.ID), domain.ErrNotFound)
}

func TestMovementRepo_ReferenciasInexistentes(t *testing.T) {
	s := memory.NewStore()
	err := s.Movements().Create(context.Background(), &entity.Movement{ProductID: 99, UserID: 1, MovementTypeID: 1, Quantity: 1})
	assert.Error(t, err)
}

func TestMovementTypeRepo_EnsureConcurrente(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	const n = 20
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := s.MovementTypes().Ensure(ctx, entity.MovementTypeSalida, entity.MovementTypeSalidaDesc)
			assert.NoError(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	types, err := s.MovementTypes().List(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 1)
}

func TestProductRepo_ListYSearch(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	a := newProduct("ARZ-1", 5)
	a.Name = "Arroz"
	b := newProduct("FRJ-1", 1)
	b.Name = "Frijol"
	b.Description = "grano rojo"
	require.NoError(t, s.Products().Create(ctx, a))
	require.NoError(t, s.Products().Create(ctx, b))

	all, err := s.Products().List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "FRJ-1", all[0].Code, "más reciente primero")

	byCode, err := s.Products().List(ctx, "arz")
	require.NoError(t, err)
	require.Len(t, byCode, 1)

	byDesc, err := s.Products().Search(ctx, "ROJO")
	require.NoError(t, err)
	require.Len(t, byDesc, 1)
	assert.Equal(t, "Frijol", byDesc[0].Name)

	low, err := s.Products().ListLowStock(ctx, 2)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "FRJ-1", low[0].Code)
}
