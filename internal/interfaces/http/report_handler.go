package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/application/report"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// Content types de exportación.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler expone el reporte como JSON, PDF y Excel.
type ReportHandler struct {
	reports *report.ReportUseCase
	export  *report.ExportUseCase
	log     *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *report.ReportUseCase, export *report.ExportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, export: export, log: log}
}

var reportErrors = errorMessages{Server: "Error al generar el reporte"}

// Summary godoc
// @Summary      Reporte de movimientos
// @Description  Por defecto ventas del mes en curso.
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        fechaDesde  query  string  false  "YYYY-MM-DD (defecto: día 1 del mes)"
// @Param        fechaHasta  query  string  false  "YYYY-MM-DD (defecto: hoy)"
// @Param        tipo        query  string  false  "Salida | Entrada | todos"  default(Salida)
// @Param        limite      query  int     false  "Máximo de filas (1-1000)"   default(100)
// @Success      200         {object}  dto.ReportResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /api/reportes/resumen [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.reports.Generate(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, reportErrors)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Reporte en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        fechaDesde  query  string  false  "YYYY-MM-DD"
// @Param        fechaHasta  query  string  false  "YYYY-MM-DD"
// @Param        tipo        query  string  false  "Salida | Entrada | todos"
// @Param        limite      query  int     false  "Máximo de filas"
// @Success      200         {file}    binary
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /api/reportes/ventas/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	b, name, err := h.export.PDF(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, reportErrors)
	}
	return sendFile(c, b, name, ContentTypePDF)
}

// Excel godoc
// @Summary      Reporte en Excel
// @Tags         reportes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        fechaDesde  query  string  false  "YYYY-MM-DD"
// @Param        fechaHasta  query  string  false  "YYYY-MM-DD"
// @Param        tipo        query  string  false  "Salida | Entrada | todos"
// @Param        limite      query  int     false  "Máximo de filas"
// @Success      200         {file}    binary
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /api/reportes/ventas/excel [get]
func (h *ReportHandler) Excel(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	b, name, err := h.export.Excel(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, reportErrors)
	}
	return sendFile(c, b, name, ContentTypeXLSX)
}

func sendFile(c *fiber.Ctx, b []byte, name, contentType string) error {
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(b)
}
