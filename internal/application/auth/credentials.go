package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/soulsisters/joyeria-api/internal/domain/entity"
	"github.com/soulsisters/joyeria-api/pkg/config"
)

// CredentialStore abstrae la tabla de credenciales para poder cambiarla por
// un backend persistente sin tocar la lógica de autenticación.
type CredentialStore interface {
	FindByUsername(username string) *entity.User
}

// StaticCredentialStore tabla estática en memoria cargada desde la
// configuración. Los passwords se hashean con bcrypt al construir la tabla;
// el texto plano no se retiene.
type StaticCredentialStore struct {
	users map[string]*entity.User
}

var _ CredentialStore = (*StaticCredentialStore)(nil)

// NewStaticCredentialStore construye la tabla. Falla si algún rol no es
// válido o si hay usuarios duplicados.
func NewStaticCredentialStore(creds []config.Credential) (*StaticCredentialStore, error) {
	users := make(map[string]*entity.User, len(creds))
	for _, c := range creds {
		if c.Username == "" || c.Password == "" {
			return nil, fmt.Errorf("credencial incompleta para %q", c.Username)
		}
		if !entity.ValidRole(c.Role) {
			return nil, fmt.Errorf("rol desconocido %q para %q", c.Role, c.Username)
		}
		if _, dup := users[c.Username]; dup {
			return nil, fmt.Errorf("usuario duplicado %q", c.Username)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashear password de %q: %w", c.Username, err)
		}
		users[c.Username] = &entity.User{
			ID:           c.ID,
			Username:     c.Username,
			PasswordHash: string(hash),
			Role:         c.Role,
			Name:         c.Name,
		}
	}
	return &StaticCredentialStore{users: users}, nil
}

// FindByUsername busca por coincidencia exacta (sensible a mayúsculas).
// Devuelve nil si el usuario no existe.
func (s *StaticCredentialStore) FindByUsername(username string) *entity.User {
	return s.users[username]
}
