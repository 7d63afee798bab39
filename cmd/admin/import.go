package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/application/usecase"
)

// Columnas esperadas en la cabecera del CSV. stock_actual es opcional.
var importColumns = []string{"codigo", "nombre", "descripcion", "precio_compra", "precio_venta", "stock_actual"}

var errMissingColumn = errors.New("falta la columna")

// importRow una fila del archivo ya convertida a la petición de creación.
type importRow struct {
	Line int
	Req  dto.CreateProductRequest
	Err  error
}

// importResult resumen de la importación.
type importResult struct {
	Created int
	Failed  []importRow
}

func newImportProductsCmd(e *env) *cobra.Command {
	var (
		latin1 bool
		sep    string
	)

	cmd := &cobra.Command{
		Use:   "importar-productos <archivo.csv>",
		Short: "Crea productos en lote desde un CSV",
		Long: "Cabecera: " + strings.Join(importColumns, ",") + ".\n" +
			"Cada fila pasa por las mismas validaciones que POST /api/productos/nuevo.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			comma, _ := utf8.DecodeRuneInString(sep)
			rows, err := parseProductCSV(f, latin1, comma)
			if err != nil {
				return err
			}
			uc := usecase.NewProductUseCase(e.store.Products, e.store.Movements)
			res := importProducts(cmd.Context(), uc, rows)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "productos creados: %d, con error: %d\n", res.Created, len(res.Failed))
			if len(res.Failed) > 0 {
				renderImportErrors(out, res.Failed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&latin1, "latin1", false, "el archivo está en Windows-1252 (exportado desde Excel)")
	cmd.Flags().StringVar(&sep, "separador", ",", "separador de columnas")
	return cmd
}

// parseProductCSV lee la cabecera y convierte cada fila. Los errores de conversión quedan en la fila
// para reportarlos junto con los de validación.
func parseProductCSV(r io.Reader, latin1 bool, comma rune) ([]importRow, error) {
	if latin1 {
		r = charmap.Windows1252.NewDecoder().Reader(r)
	}
	cr := csv.NewReader(r)
	if comma != 0 && comma != utf8.RuneError {
		cr.Comma = comma
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range importColumns[:5] {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w %q", errMissingColumn, col)
		}
	}

	var rows []importRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		field := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if strings.Join(rec, "") == "" {
			continue
		}

		row := importRow{Line: line, Req: dto.CreateProductRequest{
			Codigo:      field("codigo"),
			Nombre:      field("nombre"),
			Descripcion: field("descripcion"),
		}}
		row.Req.PrecioCompra, row.Err = parseMoney(field("precio_compra"))
		if row.Err == nil {
			row.Req.PrecioVenta, row.Err = parseMoney(field("precio_venta"))
		}
		if s := field("stock_actual"); row.Err == nil && s != "" {
			var n int
			if n, row.Err = cast.ToIntE(s); row.Err == nil {
				row.Req.StockActual = &n
			} else {
				row.Err = fmt.Errorf("stock_actual inválido %q", s)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseMoney acepta "1234.5" y el formato de hoja de cálculo local "1234,5". Vacío es cero.
func parseMoney(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.TrimPrefix(s, "$")
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("precio inválido %q", s)
	}
	return d, nil
}

// importProducts crea cada fila por separado; una fila con error no detiene el resto.
func importProducts(ctx context.Context, uc *usecase.ProductUseCase, rows []importRow) importResult {
	var res importResult
	for _, row := range rows {
		if row.Err == nil {
			_, row.Err = uc.Create(ctx, row.Req)
		}
		if row.Err != nil {
			res.Failed = append(res.Failed, row)
			continue
		}
		res.Created++
	}
	return res
}

func renderImportErrors(w io.Writer, failed []importRow) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Línea", "Código", "Error"})
	for _, row := range failed {
		t.AppendRow(table.Row{row.Line, row.Req.Codigo, row.Err.Error()})
	}
	t.Render()
}
