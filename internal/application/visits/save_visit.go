package visits

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/domain"
	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/internal/domain/repository"
	"github.com/clinident/clinica-api/pkg/logger"
)

// SaveVisitUseCase guarda una visita de forma transaccional: upsert de la
// visita, reemplazo completo de las líneas de servicio y de los consumos de
// producto, con restauración y decremento de stock bajo bloqueo de fila.
type SaveVisitUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewSaveVisitUseCase construye el caso de uso.
func NewSaveVisitUseCase(txRunner TxRunner, log *logger.Logger) *SaveVisitUseCase {
	return &SaveVisitUseCase{txRunner: txRunner, log: log}
}

// SaveVisitResult resultado del guardado. Los contadores se recalculan
// consultando la BD dentro de la misma transacción.
type SaveVisitResult struct {
	VisitID       int64
	Created       bool
	ServicesCount int64
	ProductsCount int64
}

// Save ejecuta el flujo completo dentro de una sola transacción.
// Cualquier error (producto inexistente, stock insuficiente, fallo SQL)
// deshace todas las escrituras, incluida la propia visita.
func (uc *SaveVisitUseCase) Save(ctx context.Context, req dto.SaveVisitRequest) (*SaveVisitResult, error) {
	if req.PatientID <= 0 || req.DoctorID <= 0 {
		return nil, fmt.Errorf("%w: patientId y doctorId son obligatorios", domain.ErrInvalidInput)
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de visita inválida", domain.ErrInvalidInput)
	}
	if req.StartTime == "" || req.EndTime == "" {
		return nil, fmt.Errorf("%w: startTime y endTime son obligatorios", domain.ErrInvalidInput)
	}

	// El importe final se confía tal como llega del frontend; si difiere de la
	// suma de líneas se deja constancia en el log sin rechazar la petición.
	if sum := sumLineTotals(req.Services); !req.FinalAmount.IsZero() && !sum.Equal(req.FinalAmount) {
		uc.log.Warn().
			Str("finalAmount", req.FinalAmount.String()).
			Str("lineSum", sum.String()).
			Msg("importe final declarado no coincide con la suma de líneas")
	}

	edit := req.VisitID != nil && *req.VisitID > 0

	result := &SaveVisitResult{Created: !edit}
	err = uc.txRunner.RunVisit(ctx, func(
		visitRepo repository.VisitRepository,
		serviceRepo repository.VisitServiceRepository,
		productRepo repository.VisitProductRepository,
		stockRepo repository.StockRepository,
	) error {
		visit := &entity.Visit{
			PatientID:   req.PatientID,
			EmployeeID:  req.DoctorID,
			Date:        date,
			TimeStart:   req.StartTime,
			TimeEnd:     req.EndTime,
			Discount:    req.Discount,
			FinalAmount: req.FinalAmount,
			Note:        req.Note,
		}

		if edit {
			visit.ID = *req.VisitID
			exists, err := visitRepo.Exists(visit.ID)
			if err != nil {
				return err
			}
			if !exists {
				return domain.ErrVisitNotFound
			}
			if err := visitRepo.Update(visit); err != nil {
				return err
			}
			// Antes de borrar los consumos anteriores se devuelve cada
			// cantidad al almacén; de lo contrario el stock se perdería
			// en cada edición.
			if err := restoreStock(productRepo, stockRepo, visit.ID); err != nil {
				return err
			}
			if _, err := productRepo.DeleteByVisit(visit.ID); err != nil {
				return err
			}
		} else {
			visit.TypeID = entity.DefaultVisitTypeID
			visit.StatusID = entity.DefaultVisitStatusID
			id, err := visitRepo.Create(visit)
			if err != nil {
				return err
			}
			visit.ID = id
		}
		result.VisitID = visit.ID

		if err := replaceServices(serviceRepo, visit.ID, req.Services); err != nil {
			return err
		}
		if err := uc.consumeProducts(productRepo, stockRepo, visit.ID, req.Products); err != nil {
			return err
		}

		// Recuento final contra la BD, dentro de la transacción, como guardia
		// frente a aplicaciones parciales silenciosas.
		lines, err := serviceRepo.ListByVisit(visit.ID)
		if err != nil {
			return err
		}
		result.ServicesCount = int64(len(lines))
		result.ProductsCount, err = productRepo.CountByVisit(visit.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// restoreStock devuelve al almacén las cantidades de todos los consumos
// registrados de la visita. Debe ejecutarse antes de borrarlos.
func restoreStock(productRepo repository.VisitProductRepository, stockRepo repository.StockRepository, visitID int64) error {
	usages, err := productRepo.ListByVisit(visitID)
	if err != nil {
		return err
	}
	for _, u := range usages {
		if err := stockRepo.Restock(u.UnitID, u.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// replaceServices borra todas las líneas de la visita e inserta el conjunto
// recibido. Cantidad por defecto 1; total = total recibido o precio × cantidad.
func replaceServices(serviceRepo repository.VisitServiceRepository, visitID int64, entries []dto.SaveVisitServiceEntry) error {
	if _, err := serviceRepo.DeleteByVisit(visitID); err != nil {
		return err
	}
	for _, e := range entries {
		serviceID := e.EffectiveServiceID()
		if serviceID <= 0 {
			return fmt.Errorf("%w: línea de servicio sin serviceId", domain.ErrInvalidInput)
		}
		qty := int64(1)
		if e.Quantity != nil {
			qty = *e.Quantity
		}
		total := decimal.Zero
		switch {
		case e.Total != nil:
			total = *e.Total
		case e.Price != nil:
			total = e.Price.Mul(decimal.NewFromInt(qty))
		}
		line := &entity.VisitService{
			VisitID:   visitID,
			ServiceID: serviceID,
			Quantity:  qty,
			Total:     total,
		}
		if err := serviceRepo.Insert(line); err != nil {
			return err
		}
	}
	return nil
}

// consumeProducts inserta los consumos nuevos descontando stock. La fila de
// storage_units queda bloqueada (SELECT FOR UPDATE) hasta el commit, de modo
// que dos guardados concurrentes sobre la misma unidad no pueden pasar ambos
// la comprobación de disponibilidad.
func (uc *SaveVisitUseCase) consumeProducts(
	productRepo repository.VisitProductRepository,
	stockRepo repository.StockRepository,
	visitID int64,
	entries []dto.SaveVisitProductEntry,
) error {
	now := time.Now()
	for _, e := range entries {
		if e.ID <= 0 {
			return fmt.Errorf("%w: consumo de producto sin id", domain.ErrInvalidInput)
		}
		unit, err := stockRepo.GetForUpdate(e.ID)
		if err != nil {
			return err
		}
		if unit == nil {
			return fmt.Errorf("%w: unidad %d", domain.ErrUnitNotFound, e.ID)
		}
		if unit.Amount.LessThan(e.Quantity) {
			return fmt.Errorf("%w: %s (disponible %s, solicitado %s)",
				domain.ErrInsufficientStock, unit.Name, unit.Amount.String(), e.Quantity.String())
		}
		usage := &entity.VisitProduct{
			VisitID:   visitID,
			UnitID:    e.ID,
			Quantity:  e.Quantity,
			CreatedAt: now,
		}
		if err := productRepo.Insert(usage); err != nil {
			return err
		}
		if err := stockRepo.SetAmount(e.ID, unit.Amount.Sub(e.Quantity)); err != nil {
			return err
		}
	}
	return nil
}

func sumLineTotals(entries []dto.SaveVisitServiceEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		qty := int64(1)
		if e.Quantity != nil {
			qty = *e.Quantity
		}
		switch {
		case e.Total != nil:
			sum = sum.Add(*e.Total)
		case e.Price != nil:
			sum = sum.Add(e.Price.Mul(decimal.NewFromInt(qty)))
		}
	}
	return sum
}
