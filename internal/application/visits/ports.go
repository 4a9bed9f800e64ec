package visits

import (
	"context"

	"github.com/clinident/clinica-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el flujo de
// guardado de visitas: upsert de la visita, reemplazo de líneas de servicio
// y ajuste de stock se confirman o deshacen juntos.
type TxRunner interface {
	RunVisit(ctx context.Context, fn func(
		visitRepo repository.VisitRepository,
		serviceRepo repository.VisitServiceRepository,
		productRepo repository.VisitProductRepository,
		stockRepo repository.StockRepository,
	) error) error
}
