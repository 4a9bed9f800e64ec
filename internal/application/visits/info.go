package visits

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/application/i18n"
	"github.com/clinident/clinica-api/internal/domain"
	"github.com/clinident/clinica-api/internal/domain/repository"
)

// InfoUseCase consulta de solo lectura del historial de visitas de un
// paciente, identificado por apellido, nombre y patronímico opcional.
type InfoUseCase struct {
	visitRepo repository.VisitRepository
	locale    i18n.Locale
}

// NewInfoUseCase construye el caso de uso.
func NewInfoUseCase(visitRepo repository.VisitRepository, locale i18n.Locale) *InfoUseCase {
	return &InfoUseCase{visitRepo: visitRepo, locale: locale}
}

// ByPatientName devuelve el detalle de visitas del paciente identificado por
// apellido+nombre (+patronímico opcional). Una fila por línea de servicio;
// visitas sin líneas salen con los campos de servicio vacíos.
func (uc *InfoUseCase) ByPatientName(lastName, firstName string, patronymic *string) ([]dto.VisitInfoItem, error) {
	if lastName == "" || firstName == "" {
		return nil, fmt.Errorf("%w: faltan apellido y nombre", domain.ErrInvalidInput)
	}
	rows, err := uc.visitRepo.InfoByPatientName(lastName, firstName, patronymic)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VisitInfoItem, 0, len(rows))
	for _, r := range rows {
		item := dto.VisitInfoItem{
			VisitID:       r.VisitID,
			PatientName:   r.PatientName,
			Date:          r.Date.Format("2006-01-02"),
			TimeStart:     r.TimeStart,
			TimeEnd:       r.TimeEnd,
			DoctorName:    r.DoctorName,
			DoctorID:      r.DoctorID,
			ServiceID:     r.ServiceID,
			Discount:      r.Discount.String(),
			FinalAmount:   r.FinalAmount.String(),
			PaymentAmount: r.PaymentAmount.String(),
			PaymentMethod: r.PaymentMethod,
			Status:        r.Status,
			VisitType:     r.VisitType,
		}
		if r.ServiceName != nil {
			item.ServiceName = *r.ServiceName
		}
		if r.Quantity != nil {
			item.Quantity = *r.Quantity
		}
		item.ServicePrice = decimalOrZero(r.ServicePrice)
		item.ServiceTotal = decimalOrZero(r.ServiceTotal)
		if r.Note != nil {
			item.Note = *r.Note
		}
		if item.PaymentMethod == "" {
			item.PaymentMethod = i18n.UnpaidLabel(uc.locale)
		}
		items = append(items, item)
	}
	return items, nil
}

func decimalOrZero(d *decimal.Decimal) string {
	if d == nil {
		return "0"
	}
	return d.String()
}
