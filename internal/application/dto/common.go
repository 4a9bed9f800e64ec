package dto

// ErrorResponse cuerpo de error HTTP. Detail lleva el mensaje de bajo nivel
// cuando existe; se omite en errores de autorización.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// StatusResponse respuesta genérica de operaciones sin payload propio.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
