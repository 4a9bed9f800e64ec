package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// MonthRevenue ingresos agregados de un mes natural.
type MonthRevenue struct {
	Year    int
	Month   int
	Revenue decimal.Decimal
}

// EmployeeVisits número de visitas atendidas por un doctor en el período.
type EmployeeVisits struct {
	Name     string
	Position string
	Visits   int64
}

// AnalyticsRepository consultas de solo lectura para los paneles del frontend.
type AnalyticsRepository interface {
	// RevenueByMonth ingresos por mes de los últimos `months` meses, más reciente primero.
	RevenueByMonth(ctx context.Context, months int) ([]MonthRevenue, error)
	// VisitsByDoctor visitas por doctor en los últimos tres meses, ordenado desc.
	VisitsByDoctor(ctx context.Context) ([]EmployeeVisits, error)
}
