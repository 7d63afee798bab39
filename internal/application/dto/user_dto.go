package dto

import "time"

// CreateUserRequest cuerpo de POST /api/usuarios/nuevo (password en texto, se hashea en use case).
type CreateUserRequest struct {
	NombreUsuario string `json:"nombre_usuario"`
	Password      string `json:"contraseña"`
	Rol           string `json:"rol"`    // por defecto Empleado
	Estado        string `json:"estado"` // por defecto activo
}

// UpdateUserRequest cuerpo de PUT /api/usuarios/:id. Password vacío no cambia la contraseña.
type UpdateUserRequest struct {
	NombreUsuario string `json:"nombre_usuario"`
	Rol           string `json:"rol"`
	Password      string `json:"contraseña"`
}

// UpdateUserStatusRequest cuerpo de PUT /api/usuarios/:id/estado.
type UpdateUserStatusRequest struct {
	Estado string `json:"estado"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID            int64     `json:"id_usuario"`
	NombreUsuario string    `json:"nombre_usuario"`
	Rol           string    `json:"rol"`
	Estado        string    `json:"estado"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// UserCreatedResponse respuesta 201 de creación.
type UserCreatedResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	IDUsuario int64  `json:"id_usuario"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionUser identidad de la sesión expuesta al frontend.
type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// LoginResponse respuesta de login: token (también enviado en cookie) y usuario.
type LoginResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	User      SessionUser `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// SessionResponse respuesta de /api/auth/verify y /api/auth/me.
type SessionResponse struct {
	Success bool        `json:"success"`
	User    SessionUser `json:"user"`
}
