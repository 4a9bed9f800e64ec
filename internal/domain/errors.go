package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrPatientNotFound   = errors.New("paciente no encontrado")
	ErrVisitNotFound     = errors.New("visita no encontrada")
	ErrUnitNotFound      = errors.New("producto no encontrado en almacén")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
