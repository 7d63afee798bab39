package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

var _ repository.MovementTypeRepository = (*MovementTypeRepo)(nil)

// MovementTypeRepo tipos de movimiento sobre PostgreSQL.
type MovementTypeRepo struct {
	q Querier
}

// NewMovementTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementTypeRepository(q Querier) *MovementTypeRepo {
	return &MovementTypeRepo{q: q}
}

// Ensure busca el tipo por nombre y solo si falta lo inserta con ON CONFLICT DO NOTHING.
// Si otra transacción lo insertó primero, RETURNING viene vacío y se vuelve a leer: ambos usos
// obtienen el mismo id. En el caso normal es un SELECT, sin bloquear la fila del tipo.
func (r *MovementTypeRepo) Ensure(ctx context.Context, name, description string) (int64, error) {
	id, err := r.lookupID(ctx, name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("ensure movement type %q: %w", name, err)
	}

	err = r.q.QueryRow(ctx, `
		INSERT INTO tipos_movimiento (nombre, descripcion)
		VALUES ($1, $2)
		ON CONFLICT (nombre) DO NOTHING
		RETURNING id_tipo_movimiento`, name, description).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		id, err = r.lookupID(ctx, name)
	}
	if err != nil {
		return 0, fmt.Errorf("ensure movement type %q: %w", name, err)
	}
	return id, nil
}

func (r *MovementTypeRepo) lookupID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`SELECT id_tipo_movimiento FROM tipos_movimiento WHERE nombre = $1`, name,
	).Scan(&id)
	return id, err
}

// GetByName obtiene un tipo por nombre.
func (r *MovementTypeRepo) GetByName(ctx context.Context, name string) (*entity.MovementType, error) {
	var t entity.MovementType
	err := r.q.QueryRow(ctx,
		`SELECT id_tipo_movimiento, nombre, descripcion FROM tipos_movimiento WHERE nombre = $1`, name,
	).Scan(&t.ID, &t.Name, &t.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement type: %w", err)
	}
	return &t, nil
}

// List devuelve todos los tipos ordenados por id.
func (r *MovementTypeRepo) List(ctx context.Context) ([]*entity.MovementType, error) {
	rows, err := r.q.Query(ctx, `SELECT id_tipo_movimiento, nombre, descripcion FROM tipos_movimiento ORDER BY id_tipo_movimiento`)
	if err != nil {
		return nil, fmt.Errorf("list movement types: %w", err)
	}
	defer rows.Close()
	list := []*entity.MovementType{}
	for rows.Next() {
		var t entity.MovementType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("scan movement type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
