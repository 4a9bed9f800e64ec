package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/application/i18n"
	"github.com/clinident/clinica-api/internal/domain/repository"
)

// Ventana de los paneles del frontend.
const revenueMonths = 3

// AnalyticsUseCase consultas agregadas para los paneles del frontend.
// Las consultas corren bajo el deadline de BD configurado.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	locale        i18n.Locale
	queryTimeout  time.Duration
	now           func() (year int, month int)
}

// NewAnalyticsUseCase construye el caso de uso (queryTimeout 0 desactiva el límite).
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository, locale i18n.Locale, queryTimeout time.Duration) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo, locale: locale, queryTimeout: queryTimeout, now: currentYearMonth}
}

func (uc *AnalyticsUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, uc.queryTimeout)
}

// RevenueLastMonths ingresos de los últimos tres meses naturales, el actual
// incluido. Los meses sin pagos salen con ingreso cero, más reciente primero.
func (uc *AnalyticsUseCase) RevenueLastMonths(ctx context.Context) ([]dto.MonthRevenueItem, error) {
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	rows, err := uc.analyticsRepo.RevenueByMonth(ctx, revenueMonths)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[[2]int]decimal.Decimal, len(rows))
	for _, r := range rows {
		byMonth[[2]int{r.Year, r.Month}] = r.Revenue
	}

	year, month := uc.now()
	items := make([]dto.MonthRevenueItem, 0, revenueMonths)
	for i := 0; i < revenueMonths; i++ {
		revenue := decimal.Zero
		if v, ok := byMonth[[2]int{year, month}]; ok {
			revenue = v
		}
		items = append(items, dto.MonthRevenueItem{
			Month:   i18n.MonthName(uc.locale, month),
			Year:    year,
			Revenue: revenue.StringFixed(2),
		})
		month--
		if month == 0 {
			month = 12
			year--
		}
	}
	return items, nil
}

// VisitsByDoctor visitas atendidas por cada doctor en el período.
func (uc *AnalyticsUseCase) VisitsByDoctor(ctx context.Context) ([]dto.EmployeeVisitsItem, error) {
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	rows, err := uc.analyticsRepo.VisitsByDoctor(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeVisitsItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.EmployeeVisitsItem{Name: r.Name, Position: r.Position, Visits: r.Visits})
	}
	return items, nil
}

func currentYearMonth() (int, int) {
	now := time.Now()
	return now.Year(), int(now.Month())
}
