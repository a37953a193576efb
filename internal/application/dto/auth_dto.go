package dto

// LoginRequest entrada para login (usuario + password, sensible a mayúsculas).
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse identidad de la sesión (sin password).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// LoginResponse token firmado más la identidad resultante.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expiresAt"` // epoch segundos
	User      UserResponse `json:"user"`
}

// SessionResponse estado de sesión para el arranque del cliente.
// Authenticated=false con User vacío significa "sin sesión" (token ausente,
// inválido o expirado; nunca se reporta como error).
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	ExpiresAt     int64         `json:"expiresAt,omitempty"`
	User          *UserResponse `json:"user,omitempty"`
}
