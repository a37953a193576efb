package jwt_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/soulsisters/joyeria-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "joyeria-pos-test"
	sessionTTL = 4 * time.Hour
)

func issueToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testSecret, "1", "admin", "admin", "Administrador", testIssuer, sessionTTL)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// atTime fija el reloj del parser para verificar la expiración sin esperar.
func atTime(offset time.Duration) jwtlib.ParserOption {
	return jwtlib.WithTimeFunc(func() time.Time { return time.Now().Add(offset) })
}

// Ciclo de vida del token: válido durante las 4 horas, expirado después.
func TestParse_CicloDeVida(t *testing.T) {
	tok := issueToken(t)

	// Recién emitido.
	claims, err := pkgjwt.Parse(testSecret, tok, atTime(time.Second))
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "Administrador", claims.Name)

	// A un minuto de expirar sigue siendo válido.
	_, err = pkgjwt.Parse(testSecret, tok, atTime(3*time.Hour+59*time.Minute))
	assert.NoError(t, err, "el token debe ser válido a las 3h59m")

	// Pasada la vigencia de 4 horas falla la verificación.
	_, err = pkgjwt.Parse(testSecret, tok, atTime(4*time.Hour+time.Second))
	assert.Error(t, err, "el token debe estar expirado a las 4h1s")
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok := issueToken(t)
	_, err := pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err, "un secreto distinto debe invalidar la firma")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "1", "admin", "admin", "Administrador", testIssuer, sessionTTL)
	assert.Error(t, err)
}

// Decode no verifica firma: sirve solo para la cuenta regresiva local.
func TestDecode_SoloLectura(t *testing.T) {
	tok := issueToken(t)

	claims, err := pkgjwt.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	// El tiempo restante es positivo recién emitido y negativo tras expirar.
	assert.Greater(t, claims.Remaining(time.Now()), 3*time.Hour)
	assert.Negative(t, claims.Remaining(time.Now().Add(5*time.Hour)))
}
