package dto

// ErrorResponse cuerpo de error HTTP. Detalles lista campos faltantes o errores de validación.
type ErrorResponse struct {
	Success  bool     `json:"success"`
	Code     string   `json:"code"`
	Error    string   `json:"error"`
	Detalles []string `json:"detalles,omitempty"`
}

// MessageResponse respuesta de éxito sin datos.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListResponse envoltorio estándar de listados.
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
	Total   int  `json:"total"`
}

// NewListResponse arma el envoltorio; nunca serializa data como null.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Success: true, Data: items, Total: len(items)}
}
