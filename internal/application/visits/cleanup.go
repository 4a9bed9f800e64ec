package visits

import (
	"context"
	"fmt"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/domain"
	"github.com/clinident/clinica-api/internal/domain/repository"
	"github.com/clinident/clinica-api/pkg/logger"
)

// CleanupDuplicatesUseCase utilidad de reparación: elimina líneas de servicio
// repetidas (mismo servicio y cantidad) conservando la de menor id.
// Independiente del flujo de guardado; nunca toca stock.
type CleanupDuplicatesUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewCleanupDuplicatesUseCase construye el caso de uso.
func NewCleanupDuplicatesUseCase(txRunner TxRunner, log *logger.Logger) *CleanupDuplicatesUseCase {
	return &CleanupDuplicatesUseCase{txRunner: txRunner, log: log}
}

// Cleanup busca grupos duplicados y borra todas las filas menos la más
// antigua de cada grupo. Ejecutarlo de nuevo sobre la misma visita no borra
// nada más.
func (uc *CleanupDuplicatesUseCase) Cleanup(ctx context.Context, req dto.CleanupDuplicatesRequest) (*dto.CleanupDuplicatesResponse, error) {
	if req.VisitID <= 0 {
		return nil, fmt.Errorf("%w: visitId es obligatorio", domain.ErrInvalidInput)
	}

	resp := &dto.CleanupDuplicatesResponse{Status: "ok"}
	err := uc.txRunner.RunVisit(ctx, func(
		visitRepo repository.VisitRepository,
		serviceRepo repository.VisitServiceRepository,
		_ repository.VisitProductRepository,
		_ repository.StockRepository,
	) error {
		exists, err := visitRepo.Exists(req.VisitID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrVisitNotFound
		}

		groups, err := serviceRepo.FindDuplicateGroups(req.VisitID)
		if err != nil {
			return err
		}
		for _, g := range groups {
			deleted, err := serviceRepo.DeleteDuplicates(req.VisitID, g.ServiceID, g.Quantity)
			if err != nil {
				return err
			}
			resp.DeletedCount += deleted
		}

		remaining, err := serviceRepo.ListByVisit(req.VisitID)
		if err != nil {
			return err
		}
		resp.RemainingServices = int64(len(remaining))
		resp.Services = make([]dto.CleanupServiceLine, 0, len(remaining))
		for _, s := range remaining {
			resp.Services = append(resp.Services, dto.CleanupServiceLine{
				ID:        s.ID,
				ServiceID: s.ServiceID,
				Quantity:  s.Quantity,
				Total:     s.Total,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resp.DeletedCount > 0 {
		uc.log.Info().
			Int64("visitId", req.VisitID).
			Int64("deleted", resp.DeletedCount).
			Msg("líneas de servicio duplicadas eliminadas")
		resp.Message = fmt.Sprintf("Se eliminaron %d líneas duplicadas", resp.DeletedCount)
	} else {
		resp.Message = "No se encontraron líneas duplicadas"
	}
	return resp, nil
}
