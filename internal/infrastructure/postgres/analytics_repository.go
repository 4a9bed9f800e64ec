package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinident/clinica-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para los paneles del frontend.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// RevenueByMonth ingresos por mes natural de los últimos `months` meses.
// Solo cuenta visitas con importe final positivo; mes más reciente primero.
func (r *AnalyticsRepo) RevenueByMonth(ctx context.Context, months int) ([]repository.MonthRevenue, error) {
	const query = `
	SELECT
	    EXTRACT(YEAR FROM v.visit_date)::int  AS year,
	    EXTRACT(MONTH FROM v.visit_date)::int AS month,
	    SUM(COALESCE(v.final_amount, 0))      AS revenue
	FROM visits v
	WHERE v.visit_date >= CURRENT_DATE - make_interval(months => $1)
	  AND v.final_amount IS NOT NULL
	  AND v.final_amount > 0
	GROUP BY 1, 2
	ORDER BY 1 DESC, 2 DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, months, months)
	if err != nil {
		return nil, fmt.Errorf("analytics.RevenueByMonth: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthRevenue
	for rows.Next() {
		var row repository.MonthRevenue
		if err := rows.Scan(&row.Year, &row.Month, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.RevenueByMonth scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// VisitsByDoctor visitas por doctor en los últimos tres meses, ordenado por volumen.
// Solo cargos marcados is_doctor; los sin visitas en el período no aparecen.
func (r *AnalyticsRepo) VisitsByDoctor(ctx context.Context) ([]repository.EmployeeVisits, error) {
	const query = `
	SELECT
	    TRIM(e.last_name || ' ' || e.first_name || ' ' || COALESCE(e.patronymic, '')) AS name,
	    p.name                                                                        AS position,
	    COUNT(v.id)                                                                   AS visits
	FROM employees e
	JOIN positions p ON p.id = e.position_id
	JOIN visits v    ON v.employee_id = e.id
	WHERE p.is_doctor
	  AND v.visit_date >= CURRENT_DATE - INTERVAL '3 months'
	GROUP BY e.id, e.last_name, e.first_name, e.patronymic, p.name
	ORDER BY visits DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.VisitsByDoctor: %w", err)
	}
	defer rows.Close()

	var results []repository.EmployeeVisits
	for rows.Next() {
		var row repository.EmployeeVisits
		if err := rows.Scan(&row.Name, &row.Position, &row.Visits); err != nil {
			return nil, fmt.Errorf("analytics.VisitsByDoctor scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
