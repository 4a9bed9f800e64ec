package postgres

import (
	"context"
	"fmt"

	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/internal/domain/repository"
)

var _ repository.VisitServiceRepository = (*VisitServiceRepo)(nil)

// VisitServiceRepo líneas de servicio de una visita sobre PostgreSQL (usable con pool o tx).
type VisitServiceRepo struct {
	q Querier
}

// NewVisitServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVisitServiceRepository(q Querier) *VisitServiceRepo {
	return &VisitServiceRepo{q: q}
}

// DeleteByVisit elimina todas las líneas de la visita. Borrar cero filas no es error.
func (r *VisitServiceRepo) DeleteByVisit(visitID int64) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM visit_services WHERE visit_id = $1`, visitID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete visit services: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Insert añade una línea de servicio.
func (r *VisitServiceRepo) Insert(s *entity.VisitService) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO visit_services (visit_id, service_id, quantity, discount, total)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.VisitID, s.ServiceID, s.Quantity, s.Discount, s.Total,
	)
	if err != nil {
		return fmt.Errorf("insert visit service: %w", err)
	}
	return nil
}

// ListByVisit líneas actuales de la visita, ordenadas por id.
func (r *VisitServiceRepo) ListByVisit(visitID int64) ([]entity.VisitService, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, visit_id, service_id, quantity, discount, total
		 FROM visit_services WHERE visit_id = $1 ORDER BY id`, visitID,
	)
	if err != nil {
		return nil, fmt.Errorf("list visit services: %w", err)
	}
	defer rows.Close()

	var list []entity.VisitService
	for rows.Next() {
		var s entity.VisitService
		if err := rows.Scan(&s.ID, &s.VisitID, &s.ServiceID, &s.Quantity, &s.Discount, &s.Total); err != nil {
			return nil, fmt.Errorf("scan visit service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// FindDuplicateGroups grupos (servicio, cantidad) con más de una fila en la visita.
func (r *VisitServiceRepo) FindDuplicateGroups(visitID int64) ([]repository.DuplicateGroup, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT service_id, quantity, COUNT(*)
		 FROM visit_services
		 WHERE visit_id = $1
		 GROUP BY service_id, quantity
		 HAVING COUNT(*) > 1`, visitID,
	)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}
	defer rows.Close()

	var list []repository.DuplicateGroup
	for rows.Next() {
		var g repository.DuplicateGroup
		if err := rows.Scan(&g.ServiceID, &g.Quantity, &g.Count); err != nil {
			return nil, fmt.Errorf("scan duplicate group: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// DeleteDuplicates borra todas las filas del grupo menos la de menor id (gana la más antigua).
func (r *VisitServiceRepo) DeleteDuplicates(visitID, serviceID, quantity int64) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM visit_services
		 WHERE visit_id = $1 AND service_id = $2 AND quantity = $3
		   AND id <> (
		     SELECT MIN(id) FROM visit_services
		     WHERE visit_id = $1 AND service_id = $2 AND quantity = $3
		   )`,
		visitID, serviceID, quantity,
	)
	if err != nil {
		return 0, fmt.Errorf("delete duplicates: %w", err)
	}
	return tag.RowsAffected(), nil
}
