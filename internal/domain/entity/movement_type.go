package entity

// Nombres canónicos de tipos de movimiento.
const (
	MovementTypeEntrada = "Entrada"
	MovementTypeSalida  = "Salida"
)

// Descripciones por defecto al crear el tipo de forma perezosa.
const (
	MovementTypeEntradaDesc = "Entrada de productos al inventario"
	MovementTypeSalidaDesc  = "Salida de productos por venta u otros"
)

// MovementType categoría de un movimiento (entrada o salida).
type MovementType struct {
	ID          int64
	Name        string
	Description string
}

// DefaultMovementTypeDescription descripción usada cuando el tipo no existe y se crea.
func DefaultMovementTypeDescription(name string) string {
	switch name {
	case MovementTypeEntrada:
		return MovementTypeEntradaDesc
	case MovementTypeSalida:
		return MovementTypeSalidaDesc
	default:
		return name
	}
}
