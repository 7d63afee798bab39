package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
)

func sampleReport() *dto.ReportResponse {
	desde := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &dto.ReportResponse{
		Success: true,
		Periodo: dto.ReportPeriodDTO{Desde: desde, Hasta: desde.AddDate(0, 1, 0).Add(-time.Second)},
		Tipo:    "Salida",
		Resumen: dto.ReportSummaryDTO{
			Movimientos:   2,
			Unidades:      5,
			Ingresos:      decimal.RequireFromString("1234.5"),
			Costo:         decimal.RequireFromString("900"),
			GananciaBruta: decimal.RequireFromString("334.5"),
			MargenPct:     decimal.RequireFromString("27.10"),
		},
		Productos: []dto.ProductReportDTO{
			{ProductoID: 1, Codigo: "AZ-1", Nombre: "Azúcar 1kg", Unidades: 5, Ingresos: decimal.RequireFromString("1234.5")},
		},
		Movimientos: []dto.MovementReportDTO{
			{ID: 1, Fecha: desde, Tipo: "Salida", Codigo: "AZ-1", Producto: "Azúcar 1kg", Cantidad: 5, Usuario: "caja"},
		},
		GeneradoEn: desde,
	}
}

func TestRenderReportPDF(t *testing.T) {
	g := NewMarotoPDFGenerator()

	b, err := g.RenderReportPDF(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestRenderReportPDF_SinFilas(t *testing.T) {
	r := sampleReport()
	r.Productos = nil
	r.Movimientos = nil

	b, err := NewMarotoPDFGenerator().RenderReportPDF(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestMoneyFormat(t *testing.T) {
	g := NewMarotoPDFGenerator()
	assert.Equal(t, "$1,234.50", g.money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$0.00", g.money(decimal.Zero))
	assert.Equal(t, "27.10%", g.percent(decimal.RequireFromString("27.1")))
}
