package auth

import (
	"sync"
	"time"
)

// Política fija del limitador: 5 fallos consecutivos bloquean la cuenta
// durante 5 minutos. No configurable en runtime.
const (
	maxFailedAttempts = 5
	lockoutWindow     = 5 * time.Minute
)

// AttemptLimiter abstrae el registro de intentos fallidos por usuario para
// poder cambiarlo por un backend persistente sin tocar el login.
type AttemptLimiter interface {
	// CheckLocked reporta si el usuario está bloqueado y cuánto falta.
	CheckLocked(username string, now time.Time) (locked bool, remaining time.Duration)
	// RecordFailure suma un fallo; devuelve true si este intento disparó el bloqueo.
	RecordFailure(username string, now time.Time) bool
	// RecordSuccess limpia todo el estado del usuario.
	RecordSuccess(username string)
}

type attemptState struct {
	count       int
	lockedUntil time.Time
}

// MemoryLimiter limitador en memoria de proceso, clave por username (no por
// IP). El estado no sobrevive reinicios; suficiente para la escala del
// sistema pero es una debilidad conocida.
type MemoryLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptState
}

var _ AttemptLimiter = (*MemoryLimiter)(nil)

// NewMemoryLimiter construye el limitador.
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{attempts: make(map[string]*attemptState)}
}

// CheckLocked reporta bloqueo vigente. Un bloqueo vencido no se limpia aquí:
// lo limpia el siguiente RecordSuccess o lo pisa el siguiente RecordFailure.
func (l *MemoryLimiter) CheckLocked(username string, now time.Time) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.attempts[username]
	if !ok || !st.lockedUntil.After(now) {
		return false, 0
	}
	return true, st.lockedUntil.Sub(now)
}

// RecordFailure incrementa el contador; al llegar al umbral fija el bloqueo
// y reinicia el contador (el bloqueo es el disuasivo, no un contador eterno).
func (l *MemoryLimiter) RecordFailure(username string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.attempts[username]
	if !ok {
		st = &attemptState{}
		l.attempts[username] = st
	}
	st.count++
	if st.count >= maxFailedAttempts {
		st.lockedUntil = now.Add(lockoutWindow)
		st.count = 0
		return true
	}
	return false
}

// RecordSuccess elimina el estado del usuario.
func (l *MemoryLimiter) RecordSuccess(username string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, username)
}
