package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

// ResolveMovementType devuelve el id del tipo de movimiento, creándolo con la descripción por
// defecto si todavía no existe. Se apoya en el upsert del repositorio (nombre único), por lo que
// llamadas repetidas o concurrentes obtienen siempre el mismo id.
func ResolveMovementType(ctx context.Context, repo repository.MovementTypeRepository, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, domain.ErrInvalidInput
	}
	id, err := repo.Ensure(ctx, name, entity.DefaultMovementTypeDescription(name))
	if err != nil {
		return 0, fmt.Errorf("resolver tipo de movimiento %q: %w", name, err)
	}
	return id, nil
}
