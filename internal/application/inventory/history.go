package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	inv "github.com/jhoicas/distribuidora-api/internal/domain/inventory"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

// Dominio usado para armar el email de presentación del vendedor.
const historyEmailDomain = "@empresa.com"

// SalesHistoryUseCase consulta el historial de ventas (movimientos de tipo Salida).
type SalesHistoryUseCase struct {
	movRepo repository.MovementRepository
}

// NewSalesHistoryUseCase construye el caso de uso.
func NewSalesHistoryUseCase(movRepo repository.MovementRepository) *SalesHistoryUseCase {
	return &SalesHistoryUseCase{movRepo: movRepo}
}

// List devuelve las ventas entre fechaDesde y fechaHasta (inclusive, ambas opcionales, YYYY-MM-DD).
func (uc *SalesHistoryUseCase) List(ctx context.Context, fechaDesde, fechaHasta string) ([]dto.SaleHistoryItem, error) {
	var filter repository.SaleFilter
	if strings.TrimSpace(fechaDesde) != "" {
		d, err := time.Parse(dateLayout, strings.TrimSpace(fechaDesde))
		if err != nil {
			return nil, domain.NewValidationError(MsgInvalidDate, "fechaDesde")
		}
		filter.From = &d
	}
	if strings.TrimSpace(fechaHasta) != "" {
		d, err := time.Parse(dateLayout, strings.TrimSpace(fechaHasta))
		if err != nil {
			return nil, domain.NewValidationError(MsgInvalidDate, "fechaHasta")
		}
		filter.To = &d
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domain.NewValidationError("fechaDesde no puede ser posterior a fechaHasta", "fechaDesde", "fechaHasta")
	}

	records, err := uc.movRepo.ListSales(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleHistoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, toSaleHistoryItem(r))
	}
	return items, nil
}

func toSaleHistoryItem(r *entity.SaleRecord) dto.SaleHistoryItem {
	return dto.SaleHistoryItem{
		ID: r.MovementID,
		Producto: dto.SaleHistoryProduct{
			Codigo:      r.ProductCode,
			Nombre:      r.ProductName,
			PrecioVenta: r.ProductSalePrice.StringFixed(2),
		},
		Cantidad: r.Quantity,
		Motivo:   inv.DisplaySaleReason(r.Reason),
		Fecha:    r.Date.Format(dateLayout),
		Usuario: dto.SaleHistoryUser{
			Nombre: r.Username,
			Email:  displayEmail(r.Username),
			Rol:    r.UserRole,
		},
		Total: r.Total().StringFixed(2),
	}
}

// displayEmail nombre de usuario en minúsculas y sin espacios + dominio de la empresa.
func displayEmail(username string) string {
	return strings.ToLower(strings.Join(strings.Fields(username), "")) + historyEmailDomain
}
