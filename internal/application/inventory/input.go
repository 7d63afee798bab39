package inventory

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/jhoicas/distribuidora-api/internal/domain"
)

// Mensajes de validación compartidos por ventas y entradas.
const (
	MsgMissingFields   = "Faltan datos requeridos (producto, cantidad, fecha)"
	MsgInvalidQuantity = "La cantidad debe ser un número mayor a 0"
	MsgInvalidProduct  = "El producto indicado no es válido"
	MsgInvalidDate     = "La fecha no es válida (use YYYY-MM-DD)"
	MsgInvalidCost     = "El costo unitario debe ser un número mayor a 0"
)

const dateLayout = "2006-01-02"

// movementInput entrada ya validada de una venta o entrada.
type movementInput struct {
	productID int64
	qty       int
	date      time.Time
}

// parseMovementInput valida presencia y formato de productoId, cantidad y fecha.
func parseMovementInput(productoID, cantidad any, fecha string) (movementInput, error) {
	var missing []string
	if isBlank(productoID) {
		missing = append(missing, "productoId")
	}
	if isBlank(cantidad) {
		missing = append(missing, "cantidad")
	}
	if strings.TrimSpace(fecha) == "" {
		missing = append(missing, "fecha")
	}
	if len(missing) > 0 {
		return movementInput{}, domain.NewValidationError(MsgMissingFields, missing...)
	}

	productID, ok := parsePositiveInt(productoID)
	if !ok {
		return movementInput{}, domain.NewValidationError(MsgInvalidProduct, "productoId")
	}
	qty, ok := parsePositiveInt(cantidad)
	if !ok || qty > math.MaxInt32 {
		return movementInput{}, domain.NewValidationError(MsgInvalidQuantity, "cantidad")
	}
	date, err := ParseDate(fecha)
	if err != nil {
		return movementInput{}, domain.NewValidationError(MsgInvalidDate, "fecha")
	}
	return movementInput{productID: productID, qty: int(qty), date: date}, nil
}

// ParseDate acepta YYYY-MM-DD o RFC 3339 y devuelve la fecha calendario (medianoche UTC).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// parsePositiveInt acepta números JSON enteros o texto numérico en base 10.
func parsePositiveInt(v any) (int64, bool) {
	switch t := v.(type) {
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return n, err == nil && n > 0
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
	case bool:
		return 0, false
	}
	n, err := cast.ToInt64E(v)
	return n, err == nil && n > 0
}

// parseOptionalCost devuelve nil cuando el costo no viene; si viene debe ser > 0.
func parseOptionalCost(v any) (*decimal.Decimal, error) {
	if isBlank(v) {
		return nil, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, domain.NewValidationError(MsgInvalidCost, "costoUnitario")
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsPositive() {
		return nil, domain.NewValidationError(MsgInvalidCost, "costoUnitario")
	}
	d = d.Round(2)
	return &d, nil
}
