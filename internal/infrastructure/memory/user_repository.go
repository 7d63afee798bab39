package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria. nombre_usuario único.
type UserRepo struct {
	v view
}

func usernameTaken(st *state, username string, exceptID int64) bool {
	for id, u := range st.users {
		if id != exceptID && u.Username == username {
			return true
		}
	}
	return false
}

// Create asigna ID y fecha de creación.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.v.write(func(st *state) error {
		if usernameTaken(st, user.Username, 0) {
			return domain.ErrDuplicate
		}
		st.nextUser++
		user.ID = st.nextUser
		user.CreatedAt = r.v.s.now()
		st.users[user.ID] = *user
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	var out *entity.User
	err := r.v.read(func(st *state) error {
		if u, ok := st.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

// GetByUsername busca por nombre exacto.
func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	var out *entity.User
	err := r.v.read(func(st *state) error {
		for _, u := range st.users {
			if u.Username == username {
				u := u
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

// List más recientes primero.
func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	list := []*entity.User{}
	err := r.v.read(func(st *state) error {
		for _, u := range st.users {
			u := u
			list = append(list, &u)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, err
}

// Update cambia nombre, rol y hash.
func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	return r.v.write(func(st *state) error {
		cur, ok := st.users[user.ID]
		if !ok {
			return domain.ErrNotFound
		}
		if usernameTaken(st, user.Username, user.ID) {
			return domain.ErrDuplicate
		}
		cur.Username = user.Username
		cur.Role = user.Role
		cur.PasswordHash = user.PasswordHash
		st.users[user.ID] = cur
		return nil
	})
}

// UpdateStatus activa o desactiva.
func (r *UserRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	return r.v.write(func(st *state) error {
		cur, ok := st.users[id]
		if !ok {
			return domain.ErrNotFound
		}
		cur.Status = status
		st.users[id] = cur
		return nil
	})
}
