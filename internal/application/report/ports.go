package report

import (
	"context"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
)

// PDFRenderer dibuja el reporte como PDF.
type PDFRenderer interface {
	RenderReportPDF(ctx context.Context, r *dto.ReportResponse) ([]byte, error)
}

// ExcelRenderer exporta el reporte como libro .xlsx.
type ExcelRenderer interface {
	RenderReportExcel(ctx context.Context, r *dto.ReportResponse) ([]byte, error)
}
