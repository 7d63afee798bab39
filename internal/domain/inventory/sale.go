package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Motivos por defecto y prefijos de los movimientos.
const (
	DefaultSaleReason  = "Venta directa"
	SaleReasonPrefix   = "Venta: "
	DefaultEntryReason = "Ingreso de mercadería"
	EntryReasonPrefix  = "Entrada: "
	UnspecifiedReason  = "No especificado"
)

// SaleReason motivo a guardar para una venta.
func SaleReason(motivo string) string {
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return DefaultSaleReason
	}
	return SaleReasonPrefix + motivo
}

// EntryReason motivo a guardar para una entrada de mercadería.
func EntryReason(motivo string) string {
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return DefaultEntryReason
	}
	return EntryReasonPrefix + motivo
}

// DisplaySaleReason motivo para mostrar en el historial (sin el prefijo de venta).
func DisplaySaleReason(stored string) string {
	r := strings.TrimSpace(strings.TrimPrefix(stored, SaleReasonPrefix))
	if r == "" {
		return UnspecifiedReason
	}
	return r
}

// SaleTotal precio unitario por cantidad, con exactamente dos decimales.
func SaleTotal(unitPrice decimal.Decimal, qty int) string {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty))).StringFixed(2)
}
