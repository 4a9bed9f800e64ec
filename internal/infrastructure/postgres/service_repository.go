package postgres

import (
	"context"
	"fmt"

	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo catálogo de servicios dentales sobre PostgreSQL.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// List catálogo completo ordenado por nombre.
func (r *ServiceRepo) List() ([]entity.DentalService, error) {
	query := `
		SELECT id, name, price, warranty, description, category_id
		FROM dental_services
		ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var list []entity.DentalService
	for rows.Next() {
		var s entity.DentalService
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.Warranty, &s.Description, &s.CategoryID); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
