package dto

// TokenRequest cuerpo de POST /auth/token: intercambio de api_key por JWT.
type TokenRequest struct {
	APIKey string `json:"apiKey"`
}

// TokenResponse token emitido para el frontend.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"` // segundos
}
