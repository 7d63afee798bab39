// Package pdf dibuja el reporte de movimientos en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Distribuidora Martín  │  Tipo + Período             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Movimientos / Unidades / Ingresos / Costo / Margen │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA PRODUCTOS: Código | Producto | Unid. | Ingresos | ... │
//	│  TABLA DETALLE: Fecha | Producto | Cant. | P.Unit | Total    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Generado el ...                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/application/report"
)

const businessName = "Distribuidora Martín"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

var _ report.PDFRenderer = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.PDFRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
}

// NewMarotoPDFGenerator construye el generador. Los montos se formatean en es-419 (1,234.50).
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{printer: message.NewPrinter(language.LatinAmericanSpanish)}
}

// RenderReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderReportPDF(_ context.Context, r *dto.ReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de "+typeTitle(r.Tipo), true).
		WithAuthor(businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRows(r.Resumen)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Por producto"))
	m.AddRows(productHeaderRow())
	m.AddRows(g.productRows(r.Productos)...)

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionTitle("Detalle de movimientos"))
	m.AddRows(movementHeaderRow())
	m.AddRows(g.movementRows(r.Movimientos)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y tipo + período (der).
func headerRow(r *dto.ReportResponse) core.Row {
	period := fmt.Sprintf("%s al %s",
		r.Periodo.Desde.Format("02/01/2006"), r.Periodo.Hasta.Format("02/01/2006"))

	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Control de inventario y ventas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE "+strings.ToUpper(typeTitle(r.Tipo)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRows: dos filas de indicadores.
func (g *MarotoPDFGenerator) summaryRows(s dto.ReportSummaryDTO) []core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	return []core.Row{
		row.New(13).Add(
			kpi("Movimientos", g.printer.Sprint(s.Movimientos)),
			kpi("Unidades", g.printer.Sprint(s.Unidades)),
			kpi("Ingresos", g.money(s.Ingresos)),
		),
		row.New(13).Add(
			kpi("Costo", g.money(s.Costo)),
			kpi("Ganancia bruta", g.money(s.GananciaBruta)),
			kpi("Margen", g.percent(s.MargenPct)),
		),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

// headerCell celda de cabecera sobre fondo primario.
func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorWhite, Top: 2, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func productHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Código", 2, align.Left),
		headerCell("Producto", 3, align.Left),
		headerCell("Unid.", 1, align.Center),
		headerCell("Ingresos", 2, align.Right),
		headerCell("Ganancia", 2, align.Right),
		headerCell("Margen", 1, align.Right),
		headerCell("Part.", 1, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func (g *MarotoPDFGenerator) productRows(items []dto.ProductReportDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(items))
	for i, p := range items {
		r := row.New(7).Add(
			cell(p.Codigo, 2, align.Left),
			cell(p.Nombre, 3, align.Left),
			cell(g.printer.Sprint(p.Unidades), 1, align.Center),
			cell(g.money(p.Ingresos), 2, align.Right),
			cell(g.money(p.Ganancia), 2, align.Right),
			cell(g.percent(p.MargenPct), 1, align.Right),
			cell(g.percent(p.ParticipacionPct), 1, align.Right),
		)
		rows = append(rows, striped(r, i))
	}
	return rows
}

func movementHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Fecha", 2, align.Left),
		headerCell("Producto", 3, align.Left),
		headerCell("Cant.", 1, align.Center),
		headerCell("P. Unit.", 2, align.Right),
		headerCell("Total", 2, align.Right),
		headerCell("Usuario", 2, align.Left),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func (g *MarotoPDFGenerator) movementRows(items []dto.MovementReportDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(items))
	for i, mv := range items {
		r := row.New(7).Add(
			cell(mv.Fecha.Format("02/01/2006"), 2, align.Left),
			cell(mv.Producto, 3, align.Left),
			cell(g.printer.Sprint(mv.Cantidad), 1, align.Center),
			cell(g.money(mv.PrecioUnitario), 2, align.Right),
			cell(g.money(mv.Total), 2, align.Right),
			cell(mv.Usuario, 2, align.Left),
		)
		rows = append(rows, striped(r, i))
	}
	return rows
}

func striped(r core.Row, i int) core.Row {
	if i%2 == 1 {
		return r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

func emptyRow() core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New("Sin movimientos en el período", props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 1,
		}),
	))
}

func footerRow(r *dto.ReportResponse) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Generado el "+r.GeneradoEn.Format("02/01/2006 15:04"), props.Text{
			Size: 6.5, Color: colorGray, Top: 2, Align: align.Right,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea con separador de miles y 2 decimales, ej. "$1,234.50".
func (g *MarotoPDFGenerator) money(d decimal.Decimal) string {
	return "$" + g.printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

func (g *MarotoPDFGenerator) percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

func typeTitle(tipo string) string {
	switch tipo {
	case "Entrada":
		return "Entradas"
	case report.TypeAll:
		return "Movimientos"
	default:
		return "Ventas"
	}
}
