package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinident/clinica-api/internal/application/auth"
	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/domain"
)

const testSecret = "clave-secreta-de-tests"

func TestVerifyKey_EnClaro(t *testing.T) {
	uc := auth.NewUseCase(auth.Config{APIKey: testSecret})

	assert.True(t, uc.VerifyKey(testSecret))
	assert.False(t, uc.VerifyKey("otra-clave"))
	assert.False(t, uc.VerifyKey(""))
}

func TestVerifyKey_HashBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte(testSecret), bcrypt.MinCost)
	require.NoError(t, err)

	uc := auth.NewUseCase(auth.Config{APIKey: string(hash)})

	assert.True(t, uc.VerifyKey(testSecret))
	assert.False(t, uc.VerifyKey("otra-clave"))
}

// Sin API_KEY configurado la API queda abierta (modo desarrollo).
func TestVerifyKey_SinSecretoConfigurado(t *testing.T) {
	uc := auth.NewUseCase(auth.Config{})

	assert.False(t, uc.Enabled())
	assert.True(t, uc.VerifyKey("cualquier-cosa"))
	assert.True(t, uc.VerifyKey(""))
}

func TestIssueToken_YVerify(t *testing.T) {
	uc := auth.NewUseCase(auth.Config{
		APIKey:     testSecret,
		JWTSecret:  "jwt-secret-de-tests",
		ExpMinutes: 30,
		Issuer:     "clinica-api-test",
	})

	resp, err := uc.IssueToken(dto.TokenRequest{APIKey: testSecret})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 30*60, resp.ExpiresIn)

	assert.True(t, uc.VerifyToken(resp.Token))
	assert.False(t, uc.VerifyToken("token.invalido.aqui"))
}

func TestIssueToken_ClaveIncorrecta(t *testing.T) {
	uc := auth.NewUseCase(auth.Config{
		APIKey:    testSecret,
		JWTSecret: "jwt-secret-de-tests",
	})

	_, err := uc.IssueToken(dto.TokenRequest{APIKey: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
