package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distribuidora-api/internal/application/usecase"
	"github.com/jhoicas/distribuidora-api/internal/infrastructure/memory"
)

func TestParseProductCSV(t *testing.T) {
	in := "codigo,nombre,descripcion,precio_compra,precio_venta,stock_actual\n" +
		"P-001,Arroz,Bolsa 1kg,12.50,20,8\n" +
		"\n" +
		"P-002,Frijol,,\"9,5\",15,\n" +
		"P-003,Lenteja,,abc,15,2\n"

	rows, err := parseProductCSV(strings.NewReader(in), false, ',')
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "P-001", rows[0].Req.Codigo)
	assert.Equal(t, "12.5", rows[0].Req.PrecioCompra.String())
	require.NotNil(t, rows[0].Req.StockActual)
	assert.Equal(t, 8, *rows[0].Req.StockActual)

	assert.NoError(t, rows[1].Err)
	assert.Equal(t, "9.5", rows[1].Req.PrecioCompra.String())
	assert.Nil(t, rows[1].Req.StockActual)

	assert.Error(t, rows[2].Err)
	assert.Equal(t, 5, rows[2].Line)
}

func TestParseProductCSV_Latin1YSeparador(t *testing.T) {
	// "Azúcar" en Windows-1252
	in := []byte("codigo;nombre;descripcion;precio_compra;precio_venta\nP-010;Az\xfacar;;3;4\n")

	rows, err := parseProductCSV(bytes.NewReader(in), true, ';')
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Azúcar", rows[0].Req.Nombre)
}

func TestParseProductCSV_FaltaColumna(t *testing.T) {
	_, err := parseProductCSV(strings.NewReader("codigo,nombre\nA,B\n"), false, ',')
	assert.ErrorIs(t, err, errMissingColumn)
}

func TestImportProducts(t *testing.T) {
	st := memory.NewStore()
	uc := usecase.NewProductUseCase(st.Products(), st.Movements())

	in := "codigo,nombre,descripcion,precio_compra,precio_venta,stock_actual\n" +
		"P-001,Arroz,,10,15,4\n" +
		"P-001,Arroz repetido,,10,15,4\n" +
		"P-002,Aceite,,20,18,1\n" +
		"P-003,Sal,,1,2,\n"
	rows, err := parseProductCSV(strings.NewReader(in), false, ',')
	require.NoError(t, err)

	res := importProducts(context.Background(), uc, rows)
	assert.Equal(t, 2, res.Created)
	require.Len(t, res.Failed, 2)
	assert.Equal(t, 3, res.Failed[0].Line)
	assert.Equal(t, 4, res.Failed[1].Line)

	list, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	var out bytes.Buffer
	renderImportErrors(&out, res.Failed)
	assert.Contains(t, out.String(), "P-002")
}

func TestRenderStock(t *testing.T) {
	st := memory.NewStore()
	uc := usecase.NewProductUseCase(st.Products(), st.Movements())
	rows, err := parseProductCSV(strings.NewReader("codigo,nombre,descripcion,precio_compra,precio_venta\nP-001,Arroz,,10,15\n"), false, ',')
	require.NoError(t, err)
	importProducts(context.Background(), uc, rows)

	list, err := uc.List(context.Background(), "")
	require.NoError(t, err)

	var out bytes.Buffer
	renderStock(&out, list)
	assert.Contains(t, out.String(), "Arroz")
	assert.Contains(t, out.String(), "15.00")
}
