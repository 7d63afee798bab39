// Package excel exporta el reporte de movimientos como libro .xlsx con excelize.
package excel

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/application/report"
)

// Nombres de hoja.
const (
	SheetSummary   = "Resumen"
	SheetProducts  = "Productos"
	SheetMovements = "Movimientos"
)

// Formatos numéricos integrados de Excel.
const (
	numFmtThousands = 3 // #,##0
	numFmtMoney     = 4 // #,##0.00
	numFmtDate      = 14
)

var (
	productHeaders  = []string{"Código", "Producto", "Unidades", "Ingresos", "Costo", "Ganancia", "Margen %", "Participación %"}
	movementHeaders = []string{"ID", "Fecha", "Tipo", "Código", "Producto", "Cantidad", "Precio unitario", "Total", "Usuario", "Motivo"}
)

var _ report.ExcelRenderer = (*ReportWorkbook)(nil)

// ReportWorkbook implementa report.ExcelRenderer.
type ReportWorkbook struct{}

// NewReportWorkbook construye el exportador.
func NewReportWorkbook() *ReportWorkbook { return &ReportWorkbook{} }

type styles struct {
	header, money, integer, date int
}

// RenderReportExcel arma las tres hojas con cabecera fija y autofiltro.
func (w *ReportWorkbook) RenderReportExcel(_ context.Context, r *dto.ReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("excel: estilos: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("excel: hoja resumen: %w", err)
	}
	for _, name := range []string{SheetProducts, SheetMovements} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("excel: hoja %s: %w", name, err)
		}
	}

	if err := writeSummary(f, st, r); err != nil {
		return nil, err
	}
	if err := writeProducts(f, st, r.Productos); err != nil {
		return nil, err
	}
	if err := writeMovements(f, st, r.Movimientos); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return st, err
	}
	if st.money, err = f.NewStyle(&excelize.Style{NumFmt: numFmtMoney}); err != nil {
		return st, err
	}
	if st.integer, err = f.NewStyle(&excelize.Style{NumFmt: numFmtThousands}); err != nil {
		return st, err
	}
	if st.date, err = f.NewStyle(&excelize.Style{NumFmt: numFmtDate}); err != nil {
		return st, err
	}
	return st, nil
}

func writeSummary(f *excelize.File, st styles, r *dto.ReportResponse) error {
	s := r.Resumen
	rows := [][]any{
		{"Reporte", r.Tipo},
		{"Desde", r.Periodo.Desde.Format("2006-01-02")},
		{"Hasta", r.Periodo.Hasta.Format("2006-01-02")},
		{"Movimientos", s.Movimientos},
		{"Unidades", s.Unidades},
		{"Ingresos", money(s.Ingresos)},
		{"Costo", money(s.Costo)},
		{"Ganancia bruta", money(s.GananciaBruta)},
		{"Margen %", money(s.MargenPct)},
		{"Generado", r.GeneradoEn.Format("2006-01-02 15:04")},
	}
	if err := writeHeader(f, SheetSummary, []string{"Indicador", "Valor"}, st.header); err != nil {
		return err
	}
	for i, vals := range rows {
		if err := writeRow(f, SheetSummary, i+2, vals); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetSummary, "B7", "B10", st.money); err != nil {
		return err
	}
	return f.SetColWidth(SheetSummary, "A", "B", 20)
}

func writeProducts(f *excelize.File, st styles, items []dto.ProductReportDTO) error {
	if err := writeHeader(f, SheetProducts, productHeaders, st.header); err != nil {
		return err
	}
	for i, p := range items {
		if err := writeRow(f, SheetProducts, i+2, []any{
			p.Codigo, p.Nombre, p.Unidades,
			money(p.Ingresos), money(p.Costo), money(p.Ganancia),
			money(p.MargenPct), money(p.ParticipacionPct),
		}); err != nil {
			return err
		}
	}
	if last := len(items) + 1; last > 1 {
		if err := f.SetCellStyle(SheetProducts, "C2", fmt.Sprintf("C%d", last), st.integer); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetProducts, "D2", fmt.Sprintf("H%d", last), st.money); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetProducts, "B", "B", 32); err != nil {
		return err
	}
	return freezeAndFilter(f, SheetProducts, len(productHeaders), len(items))
}

func writeMovements(f *excelize.File, st styles, items []dto.MovementReportDTO) error {
	if err := writeHeader(f, SheetMovements, movementHeaders, st.header); err != nil {
		return err
	}
	for i, m := range items {
		if err := writeRow(f, SheetMovements, i+2, []any{
			m.ID, m.Fecha, m.Tipo, m.Codigo, m.Producto, m.Cantidad,
			money(m.PrecioUnitario), money(m.Total), m.Usuario, m.Motivo,
		}); err != nil {
			return err
		}
	}
	if last := len(items) + 1; last > 1 {
		if err := f.SetCellStyle(SheetMovements, "B2", fmt.Sprintf("B%d", last), st.date); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetMovements, "G2", fmt.Sprintf("H%d", last), st.money); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetMovements, "E", "E", 32); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetMovements, "J", "J", 28); err != nil {
		return err
	}
	return freezeAndFilter(f, SheetMovements, len(movementHeaders), len(items))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeRow(f *excelize.File, sheet string, rowNum int, vals []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &vals)
}

// freezeAndFilter fija la fila de cabecera y agrega autofiltro sobre la tabla.
func freezeAndFilter(f *excelize.File, sheet string, cols, rows int) error {
	last, err := excelize.CoordinatesToCellName(cols, rows+1)
	if err != nil {
		return err
	}
	if err := f.AutoFilter(sheet, "A1:"+last, []excelize.AutoFilterOptions{}); err != nil {
		return fmt.Errorf("excel: autofiltro %s: %w", sheet, err)
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// money convierte a float64 para que Excel lo trate como número.
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
