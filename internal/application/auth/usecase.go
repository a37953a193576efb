package auth

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/soulsisters/joyeria-api/internal/application/dto"
	"github.com/soulsisters/joyeria-api/internal/domain"
	"github.com/soulsisters/joyeria-api/internal/domain/entity"
	"github.com/soulsisters/joyeria-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// LockedOutError login rechazado por bloqueo vigente. El mensaje es el que
// ve el usuario; Unwrap permite errors.Is(err, domain.ErrLockedOut).
type LockedOutError struct {
	Remaining time.Duration
}

func (e *LockedOutError) Error() string {
	minutes := int(math.Ceil(e.Remaining.Minutes()))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("Cuenta bloqueada. Intente nuevamente en %d minutos.", minutes)
}

func (e *LockedOutError) Unwrap() error { return domain.ErrLockedOut }

// ThresholdError el intento que acaba de disparar el bloqueo. Mensaje
// distinto al de credenciales inválidas para avisar del castigo.
type ThresholdError struct{}

func (e *ThresholdError) Error() string {
	return "Demasiados intentos fallidos. Cuenta bloqueada por 5 minutos."
}

func (e *ThresholdError) Unwrap() error { return domain.ErrLockedOut }

// AuthUseCase casos de uso de sesión: login con limitación de intentos,
// restauración, extensión y logout. Sin estado de sesión en servidor:
// la sesión es el token firmado.
type AuthUseCase struct {
	creds   CredentialStore
	limiter AttemptLimiter
	jwtCfg  JWTConfig
	now     func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(creds CredentialStore, limiter AttemptLimiter, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{creds: creds, limiter: limiter, jwtCfg: jwtCfg, now: time.Now}
}

// Login verifica usuario/password contra la tabla estática, respetando el
// bloqueo por intentos fallidos, y emite el token de sesión.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	now := uc.now()

	if locked, remaining := uc.limiter.CheckLocked(in.Username, now); locked {
		return nil, &LockedOutError{Remaining: remaining}
	}

	user := uc.creds.FindByUsername(in.Username)
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		if uc.limiter.RecordFailure(in.Username, now) {
			return nil, &ThresholdError{}
		}
		return nil, domain.ErrInvalidCredentials
	}

	uc.limiter.RecordSuccess(in.Username)
	return uc.issue(user)
}

// RestoreSession verifica un token almacenado y reconstruye la identidad.
// Un token inválido o expirado se descarta en silencio: (nil, nil) significa
// "sin sesión, requiere login", nunca un error para el llamador.
func (uc *AuthUseCase) RestoreSession(token string) (*dto.SessionResponse, error) {
	if token == "" {
		return &dto.SessionResponse{Authenticated: false}, nil
	}
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return &dto.SessionResponse{Authenticated: false}, nil
	}
	return &dto.SessionResponse{
		Authenticated: true,
		ExpiresAt:     claims.ExpiresAt.Unix(),
		User: &dto.UserResponse{
			ID:       claims.Subject,
			Username: claims.Username,
			Role:     claims.Role,
			Name:     claims.Name,
		},
	}, nil
}

// ExtendSession re-emite un token con vigencia fresca para una identidad ya
// autenticada (la verificación del token vigente es del middleware; aquí no
// se vuelve a pedir password).
func (uc *AuthUseCase) ExtendSession(identity dto.UserResponse) (*dto.LoginResponse, error) {
	user := uc.creds.FindByUsername(identity.Username)
	if user == nil {
		// La credencial fue retirada de la tabla: no renovar.
		return nil, domain.ErrInvalidCredentials
	}
	return uc.issue(user)
}

func (uc *AuthUseCase) issue(user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.TTL)
	if err != nil {
		return nil, err
	}
	// La expiración reportada sale del propio token para que cliente y
	// servidor vean el mismo instante.
	claims, err := jwt.Decode(token)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Unix(),
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
			Name:     user.Name,
		},
	}, nil
}
