package postgres

import (
	"context"
	"fmt"

	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/internal/domain/repository"
)

var _ repository.VisitProductRepository = (*VisitProductRepo)(nil)

// VisitProductRepo consumos de almacén de una visita sobre PostgreSQL (usable con pool o tx).
type VisitProductRepo struct {
	q Querier
}

// NewVisitProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVisitProductRepository(q Querier) *VisitProductRepo {
	return &VisitProductRepo{q: q}
}

// ListByVisit consumos actuales de la visita, ordenados por id.
func (r *VisitProductRepo) ListByVisit(visitID int64) ([]entity.VisitProduct, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, visit_id, unit_id, quantity, created_at
		 FROM visit_products WHERE visit_id = $1 ORDER BY id`, visitID,
	)
	if err != nil {
		return nil, fmt.Errorf("list visit products: %w", err)
	}
	defer rows.Close()

	var list []entity.VisitProduct
	for rows.Next() {
		var p entity.VisitProduct
		if err := rows.Scan(&p.ID, &p.VisitID, &p.UnitID, &p.Quantity, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan visit product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// DeleteByVisit elimina todos los consumos de la visita. Borrar cero filas no es error.
func (r *VisitProductRepo) DeleteByVisit(visitID int64) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM visit_products WHERE visit_id = $1`, visitID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete visit products: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Insert añade un consumo de producto.
func (r *VisitProductRepo) Insert(p *entity.VisitProduct) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO visit_products (visit_id, unit_id, quantity) VALUES ($1, $2, $3)`,
		p.VisitID, p.UnitID, p.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert visit product: %w", err)
	}
	return nil
}

// CountByVisit número de consumos registrados para la visita.
func (r *VisitProductRepo) CountByVisit(visitID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM visit_products WHERE visit_id = $1`, visitID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count visit products: %w", err)
	}
	return n, nil
}
