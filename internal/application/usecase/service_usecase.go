package usecase

import (
	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/domain/repository"
)

// ServiceUseCase catálogo de servicios dentales (solo lectura).
type ServiceUseCase struct {
	serviceRepo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(serviceRepo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{serviceRepo: serviceRepo}
}

// List catálogo completo para el formulario de visitas.
func (uc *ServiceUseCase) List() ([]dto.DentalServiceItem, error) {
	services, err := uc.serviceRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.DentalServiceItem, 0, len(services))
	for _, s := range services {
		items = append(items, dto.DentalServiceItem{
			ID:          s.ID,
			Name:        s.Name,
			Price:       s.Price.String(),
			Warranty:    s.Warranty,
			Description: s.Description,
			CategoryID:  s.CategoryID,
		})
	}
	return items, nil
}
