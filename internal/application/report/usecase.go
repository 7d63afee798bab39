// Package report arma los reportes de movimientos (resumen, por producto y detalle)
// que se sirven como JSON, PDF o Excel.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

// Límites del detalle.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// TypeAll incluye entradas y salidas.
const TypeAll = "todos"

// Mensajes de validación.
const (
	MsgInvalidFrom   = "fechaDesde no es válida (use YYYY-MM-DD)"
	MsgInvalidTo     = "fechaHasta no es válida (use YYYY-MM-DD)"
	MsgInvalidPeriod = "fechaDesde no puede ser posterior a fechaHasta"
	MsgInvalidType   = "tipo inválido (Salida, Entrada o todos)"
)

var hundred = decimal.NewFromInt(100)

// ReportUseCase genera el reporte del período.
type ReportUseCase struct {
	repo repository.ReportRepository
	now  func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo, now: time.Now}
}

// Generate valida el filtro y lanza las tres consultas en paralelo.
func (uc *ReportUseCase) Generate(ctx context.Context, in dto.ReportRequest) (*dto.ReportResponse, error) {
	from, to, err := uc.parsePeriod(in.FechaDesde, in.FechaHasta)
	if err != nil {
		return nil, err
	}
	typeName, label, err := parseType(in.Tipo)
	if err != nil {
		return nil, err
	}
	f := repository.ReportFilter{From: from, To: to, TypeName: typeName, Limit: clampLimit(in.Limite)}

	var (
		totals    repository.ReportTotals
		products  []repository.ProductReportRow
		movements []repository.MovementReportRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if totals, err = uc.repo.GetTotals(gctx, f); err != nil {
			return fmt.Errorf("reporte: totales: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if products, err = uc.repo.GetProductRows(gctx, f); err != nil {
			return fmt.Errorf("reporte: productos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if movements, err = uc.repo.GetMovementRows(gctx, f); err != nil {
			return fmt.Errorf("reporte: movimientos: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.ReportResponse{
		Success: true,
		Periodo: dto.ReportPeriodDTO{
			Desde: from,
			Hasta: to.Add(24*time.Hour - time.Second),
		},
		Tipo:        label,
		Resumen:     toSummary(totals),
		Productos:   toProductRows(products, totals.Revenue),
		Movimientos: toMovementRows(movements),
		GeneradoEn:  uc.now(),
	}, nil
}

// parsePeriod por defecto del día 1 del mes en curso a hoy.
func (uc *ReportUseCase) parsePeriod(desde, hasta string) (time.Time, time.Time, error) {
	now := uc.now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if strings.TrimSpace(desde) != "" {
		t, err := inventory.ParseDate(desde)
		if err != nil {
			return from, to, domain.NewValidationError(MsgInvalidFrom, "fechaDesde")
		}
		from = t
	}
	if strings.TrimSpace(hasta) != "" {
		t, err := inventory.ParseDate(hasta)
		if err != nil {
			return from, to, domain.NewValidationError(MsgInvalidTo, "fechaHasta")
		}
		to = t
	}
	if from.After(to) {
		return from, to, domain.NewValidationError(MsgInvalidPeriod, "fechaDesde", "fechaHasta")
	}
	return from, to, nil
}

// parseType devuelve el nombre a filtrar (vacío = todos) y la etiqueta del reporte.
func parseType(tipo string) (string, string, error) {
	switch strings.ToLower(strings.TrimSpace(tipo)) {
	case "", "salida":
		return entity.MovementTypeSalida, entity.MovementTypeSalida, nil
	case "entrada":
		return entity.MovementTypeEntrada, entity.MovementTypeEntrada, nil
	case TypeAll:
		return "", TypeAll, nil
	default:
		return "", "", domain.NewValidationError(MsgInvalidType, "tipo")
	}
}

func clampLimit(n int) int {
	switch {
	case n <= 0:
		return DefaultLimit
	case n > MaxLimit:
		return MaxLimit
	default:
		return n
	}
}

// pct devuelve part/whole·100 con 2 decimales; 0 si whole es 0.
func pct(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).DivRound(whole, 2)
}

func toSummary(t repository.ReportTotals) dto.ReportSummaryDTO {
	profit := t.Revenue.Sub(t.Cost)
	return dto.ReportSummaryDTO{
		Movimientos:   t.Movements,
		Unidades:      t.Units,
		Ingresos:      t.Revenue.Round(2),
		Costo:         t.Cost.Round(2),
		GananciaBruta: profit.Round(2),
		MargenPct:     pct(profit, t.Revenue),
	}
}

func toProductRows(rows []repository.ProductReportRow, totalRevenue decimal.Decimal) []dto.ProductReportDTO {
	out := make([]dto.ProductReportDTO, 0, len(rows))
	for _, r := range rows {
		profit := r.Revenue.Sub(r.Cost)
		out = append(out, dto.ProductReportDTO{
			ProductoID:       r.ProductID,
			Codigo:           r.Code,
			Nombre:           r.Name,
			Unidades:         r.Units,
			Ingresos:         r.Revenue.Round(2),
			Costo:            r.Cost.Round(2),
			Ganancia:         profit.Round(2),
			MargenPct:        pct(profit, r.Revenue),
			ParticipacionPct: pct(r.Revenue, totalRevenue),
		})
	}
	return out
}

func toMovementRows(rows []repository.MovementReportRow) []dto.MovementReportDTO {
	out := make([]dto.MovementReportDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MovementReportDTO{
			ID:             r.MovementID,
			Fecha:          r.Date,
			Tipo:           r.TypeName,
			Codigo:         r.ProductCode,
			Producto:       r.ProductName,
			Cantidad:       r.Quantity,
			PrecioUnitario: r.UnitPrice.Round(2),
			Total:          r.Total.Round(2),
			Usuario:        r.Username,
			Motivo:         r.Reason,
		})
	}
	return out
}
