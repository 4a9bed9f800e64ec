package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinident/clinica-api/internal/application/auth"
	"github.com/clinident/clinica-api/internal/application/dto"
)

// AuthHandler intercambio del secreto compartido por un token JWT.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Token godoc
// @Summary      Emitir token de sesión para el frontend
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "apiKey"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.IssueToken(req)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}
