package repository

import (
	"context"

	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Update cambia nombre, rol y hash. Devuelve domain.ErrNotFound si el usuario no existe.
	Update(ctx context.Context, user *entity.User) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}
