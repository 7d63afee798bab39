package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
)

// ExportUseCase genera el reporte y lo entrega como archivo descargable.
type ExportUseCase struct {
	reports *ReportUseCase
	pdf     PDFRenderer
	excel   ExcelRenderer
}

// NewExportUseCase construye el caso de uso inyectando los renderizadores.
func NewExportUseCase(reports *ReportUseCase, pdf PDFRenderer, excel ExcelRenderer) *ExportUseCase {
	return &ExportUseCase{reports: reports, pdf: pdf, excel: excel}
}

// PDF devuelve bytes y nombre de archivo, ej. reporte_ventas_2026-03-01_2026-03-31.pdf.
func (uc *ExportUseCase) PDF(ctx context.Context, in dto.ReportRequest) ([]byte, string, error) {
	r, err := uc.reports.Generate(ctx, in)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.RenderReportPDF(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: pdf: %w", err)
	}
	return b, fileName(r, "pdf"), nil
}

// Excel igual que PDF pero .xlsx.
func (uc *ExportUseCase) Excel(ctx context.Context, in dto.ReportRequest) ([]byte, string, error) {
	r, err := uc.reports.Generate(ctx, in)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.excel.RenderReportExcel(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: excel: %w", err)
	}
	return b, fileName(r, "xlsx"), nil
}

func fileName(r *dto.ReportResponse, ext string) string {
	kind := "ventas"
	switch r.Tipo {
	case "Entrada":
		kind = "entradas"
	case TypeAll:
		kind = "movimientos"
	}
	return fmt.Sprintf("reporte_%s_%s_%s.%s", kind,
		r.Periodo.Desde.Format("2006-01-02"), r.Periodo.Hasta.Format("2006-01-02"), ext)
}
