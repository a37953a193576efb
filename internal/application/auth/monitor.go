package auth

import (
	"context"
	"sync"
	"time"

	"github.com/soulsisters/joyeria-api/pkg/jwt"
)

// Parámetros del monitor de sesión: revisión cada minuto, aviso renovable
// cuando quedan 15 minutos o menos.
const (
	monitorInterval = time.Minute
	warningWindow   = 15 * time.Minute
)

// Monitor vigila la vigencia del token activo en un cliente (terminal POS,
// CLI). En cada revisión decodifica el token SIN verificar firma — solo se
// usa para la cuenta regresiva, nunca para autorizar — y:
//
//	restante <= 0           → fuerza logout (OnExpired)
//	restante <= 15 minutos  → levanta el aviso "por expirar" (OnWarning)
//	restante > 15 minutos   → limpia el aviso (p. ej. tras ExtendSession)
//
// Las revisiones no bloquean la interacción: corren en su propia goroutine.
type Monitor struct {
	Token     func() string                 // fuente del token vigente; "" = sin sesión
	OnWarning func(remaining time.Duration) // sesión por expirar
	OnExpired func()                        // logout forzado
	Now       func() time.Time              // inyectable en tests

	mu      sync.Mutex
	warning bool
}

// NewMonitor construye el monitor para una fuente de token.
func NewMonitor(token func() string) *Monitor {
	return &Monitor{Token: token, Now: time.Now}
}

// Start revisa la sesión una vez por minuto hasta que el contexto se cancele.
func (m *Monitor) Start(ctx context.Context) {
	ticker := time.NewTicker(monitorInterval)
	go func() {
		defer ticker.Stop()
		m.Check()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check()
			}
		}
	}()
}

// Check ejecuta una revisión. Exportado para dispararla también ante acciones
// del usuario (además del tick periódico).
func (m *Monitor) Check() {
	token := m.Token()
	if token == "" {
		m.setWarning(false, 0)
		return
	}

	claims, err := jwt.Decode(token)
	if err != nil {
		// Token corrupto en el almacenamiento local: tratar como expirado.
		m.expire()
		return
	}

	remaining := claims.Remaining(m.Now())
	switch {
	case remaining <= 0:
		m.expire()
	case remaining <= warningWindow:
		m.setWarning(true, remaining)
	default:
		m.setWarning(false, 0)
	}
}

// Warning indica si el aviso "sesión por expirar" está levantado.
func (m *Monitor) Warning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.warning
}

func (m *Monitor) expire() {
	m.setWarning(false, 0)
	if m.OnExpired != nil {
		m.OnExpired()
	}
}

func (m *Monitor) setWarning(on bool, remaining time.Duration) {
	m.mu.Lock()
	m.warning = on
	m.mu.Unlock()
	if on && m.OnWarning != nil {
		m.OnWarning(remaining)
	}
}
