package repository

import "github.com/clinident/clinica-api/internal/domain/entity"

// ServiceRepository catálogo de servicios dentales (solo lectura).
type ServiceRepository interface {
	// List catálogo completo ordenado por nombre.
	List() ([]entity.DentalService, error)
}
