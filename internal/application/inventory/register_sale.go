package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	inv "github.com/jhoicas/distribuidora-api/internal/domain/inventory"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// MsgSaleRegistered mensaje de éxito de POST /api/ventas.
const MsgSaleRegistered = "Venta registrada exitosamente"

// RegisterSaleUseCase registra una venta: bloqueo del producto, tipo "Salida", movimiento y
// descuento de stock, todo en una única transacción.
type RegisterSaleUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewRegisterSaleUseCase construye el caso de uso.
func NewRegisterSaleUseCase(txRunner TxRunner, log *logger.Logger) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{txRunner: txRunner, log: log}
}

// RegisterSale valida la entrada y ejecuta la venta.
// Errores: *domain.ValidationError, domain.ErrNotFound, *domain.InsufficientStockError o error de BD.
// Si cualquier paso falla no queda movimiento ni descuento persistido.
func (uc *RegisterSaleUseCase) RegisterSale(ctx context.Context, userID int64, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	input, err := parseMovementInput(in.ProductoID, in.Cantidad, in.Fecha)
	if err != nil {
		return nil, err
	}

	var out *dto.SaleResponse
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		typeRepo repository.MovementTypeRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := ValidateStock(ctx, productRepo, input.productID, input.qty)
		if err != nil {
			return err
		}
		typeID, err := ResolveMovementType(ctx, typeRepo, entity.MovementTypeSalida)
		if err != nil {
			return err
		}
		mov := &entity.Movement{
			ProductID:      product.ID,
			UserID:         userID,
			MovementTypeID: typeID,
			Quantity:       input.qty,
			Date:           input.date,
			Reason:         inv.SaleReason(in.Motivo),
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		// Descuento condicionado: si otro proceso consumió el stock, se rechaza y se revierte el movimiento.
		newStock, err := productRepo.DecrementStock(ctx, product.ID, input.qty)
		if err != nil {
			return err
		}
		out = &dto.SaleResponse{
			Success:    true,
			Message:    MsgSaleRegistered,
			NuevoStock: newStock,
			Venta: dto.SaleDTO{
				ID:       mov.ID,
				Producto: product.Name,
				Cantidad: input.qty,
				Total:    inv.SaleTotal(product.SalePrice, input.qty),
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("venta_id", out.Venta.ID).
		Int64("producto_id", input.productID).
		Int64("usuario_id", userID).
		Int("cantidad", input.qty).
		Int("nuevo_stock", out.NuevoStock).
		Str("fecha", input.date.Format(time.DateOnly)).
		Msg("venta registrada")
	return out, nil
}
