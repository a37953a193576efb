package auth

import "sync"

// Session almacenamiento local del token en un cliente. El servidor no
// guarda sesiones: descartar el token ES el logout.
type Session struct {
	mu    sync.Mutex
	token string
}

// Set guarda el token vigente (tras login o extensión).
func (s *Session) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token devuelve el token vigente, o "" si no hay sesión.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Logout descarta el token. Idempotente: llamarlo sin sesión no hace nada.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
