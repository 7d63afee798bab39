package inventory

import (
	"context"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	inv "github.com/jhoicas/distribuidora-api/internal/domain/inventory"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// MsgEntryRegistered mensaje de éxito de POST /api/inventario/entradas.
const MsgEntryRegistered = "Entrada registrada exitosamente"

// RegisterEntryUseCase ingreso de mercadería: tipo "Entrada", movimiento, suma de stock y,
// si viene costo unitario, recálculo del precio de compra por promedio ponderado.
type RegisterEntryUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewRegisterEntryUseCase construye el caso de uso.
func NewRegisterEntryUseCase(txRunner TxRunner, log *logger.Logger) *RegisterEntryUseCase {
	return &RegisterEntryUseCase{txRunner: txRunner, log: log}
}

// RegisterEntry valida y registra la entrada en una transacción.
func (uc *RegisterEntryUseCase) RegisterEntry(ctx context.Context, userID int64, in dto.RegisterEntryRequest) (*dto.EntryResponse, error) {
	input, err := parseMovementInput(in.ProductoID, in.Cantidad, in.Fecha)
	if err != nil {
		return nil, err
	}
	unitCost, err := parseOptionalCost(in.CostoUnitario)
	if err != nil {
		return nil, err
	}

	var out *dto.EntryResponse
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		typeRepo repository.MovementTypeRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetByIDForUpdate(ctx, input.productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		typeID, err := ResolveMovementType(ctx, typeRepo, entity.MovementTypeEntrada)
		if err != nil {
			return err
		}
		mov := &entity.Movement{
			ProductID:      product.ID,
			UserID:         userID,
			MovementTypeID: typeID,
			Quantity:       input.qty,
			Date:           input.date,
			Reason:         inv.EntryReason(in.Motivo),
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}

		purchasePrice := product.PurchasePrice
		if unitCost != nil {
			purchasePrice = inv.CostCalculator(product.StockActual, product.PurchasePrice, input.qty, *unitCost)
			if err := productRepo.UpdatePurchasePrice(ctx, product.ID, purchasePrice); err != nil {
				return err
			}
		}
		newStock, err := productRepo.IncrementStock(ctx, product.ID, input.qty)
		if err != nil {
			return err
		}
		out = &dto.EntryResponse{
			Success:    true,
			Message:    MsgEntryRegistered,
			NuevoStock: newStock,
			Entrada: dto.EntryDTO{
				ID:           mov.ID,
				Producto:     product.Name,
				Cantidad:     input.qty,
				PrecioCompra: purchasePrice.StringFixed(2),
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("entrada_id", out.Entrada.ID).
		Int64("producto_id", input.productID).
		Int64("usuario_id", userID).
		Int("cantidad", input.qty).
		Int("nuevo_stock", out.NuevoStock).
		Msg("entrada registrada")
	return out, nil
}
