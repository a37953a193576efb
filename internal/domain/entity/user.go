package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RolePOS   = "pos"
)

// User representa una identidad de la tabla estática de credenciales.
// No se persiste: la sesión vive en el token firmado.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano después de cargar la tabla
	Role         string // admin, pos
	Name         string // nombre para mostrar
}

// ValidRole indica si el rol pertenece al catálogo.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RolePOS
}
