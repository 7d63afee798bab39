package repository

import (
	"context"

	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
)

// MovementTypeRepository persistencia de tipos de movimiento (nombre único).
type MovementTypeRepository interface {
	// Ensure devuelve el id del tipo con ese nombre, creándolo si no existe, en una sola operación atómica.
	Ensure(ctx context.Context, name, description string) (int64, error)
	GetByName(ctx context.Context, name string) (*entity.MovementType, error)
	List(ctx context.Context) ([]*entity.MovementType, error)
}
