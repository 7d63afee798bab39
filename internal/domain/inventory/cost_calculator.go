package inventory

import "github.com/shopspring/decimal"

// CostCalculator implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// El resultado se redondea a 2 decimales, la escala de precio_compra.
func CostCalculator(stockActual int, costoActual decimal.Decimal, cantEntrada int, costoEntrada decimal.Decimal) decimal.Decimal {
	stock := decimal.NewFromInt(int64(stockActual))
	cant := decimal.NewFromInt(int64(cantEntrada))
	sum := stock.Add(cant)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stock.Mul(costoActual).Add(cant.Mul(costoEntrada))
	return num.DivRound(sum, 2)
}
