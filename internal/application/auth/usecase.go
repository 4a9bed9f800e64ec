package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/domain"
	"github.com/clinident/clinica-api/pkg/jwt"
)

// Config parámetros de autenticación del API.
type Config struct {
	// APIKey secreto compartido con el frontend. En claro o hasheado con
	// bcrypt (prefijo "$2"). Vacío desactiva la comprobación.
	APIKey     string
	JWTSecret  string
	ExpMinutes int
	Issuer     string
}

// UseCase verificación del secreto compartido y emisión de tokens JWT
// para las sesiones del frontend.
type UseCase struct {
	cfg Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(cfg Config) *UseCase {
	return &UseCase{cfg: cfg}
}

// Enabled indica si hay secreto configurado.
func (uc *UseCase) Enabled() bool {
	return uc.cfg.APIKey != ""
}

// VerifyKey comprueba el secreto compartido. Con hash bcrypt usa la
// comparación de la librería; en claro compara en tiempo constante.
func (uc *UseCase) VerifyKey(provided string) bool {
	if !uc.Enabled() {
		return true
	}
	if provided == "" {
		return false
	}
	if strings.HasPrefix(uc.cfg.APIKey, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(uc.cfg.APIKey), []byte(provided)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(uc.cfg.APIKey), []byte(provided)) == 1
}

// IssueToken intercambia el secreto compartido por un JWT de corta vida.
func (uc *UseCase) IssueToken(req dto.TokenRequest) (*dto.TokenResponse, error) {
	if !uc.VerifyKey(req.APIKey) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, jwt.ScopeFrontend, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token, ExpiresIn: uc.cfg.ExpMinutes * 60}, nil
}

// VerifyToken valida un JWT emitido por IssueToken.
func (uc *UseCase) VerifyToken(token string) bool {
	scope, err := jwt.Parse(uc.cfg.JWTSecret, token)
	return err == nil && scope == jwt.ScopeFrontend
}
