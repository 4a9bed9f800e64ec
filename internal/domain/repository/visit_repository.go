package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinident/clinica-api/internal/domain/entity"
)

// VisitInfoRow fila del join de detalle de visitas de un paciente
// (visita + servicio + pago; los campos de servicio/pago son NULL en visitas sin líneas).
type VisitInfoRow struct {
	VisitID       int64
	PatientName   string
	Date          time.Time
	TimeStart     string
	TimeEnd       string
	DoctorName    string
	DoctorID      int64
	ServiceID     *int64
	ServiceName   *string
	Quantity      *int64
	ServicePrice  *decimal.Decimal
	ServiceTotal  *decimal.Decimal
	Discount      decimal.Decimal
	FinalAmount   decimal.Decimal
	PaymentAmount decimal.Decimal
	PaymentMethod string // vacío cuando la visita no tiene pago registrado
	Note          *string
	Status        string
	VisitType     string
}

// VisitRepository puerto de persistencia de visitas.
type VisitRepository interface {
	// InfoByPatientName join completo de visitas por nombre de paciente, ordenado por fecha desc.
	InfoByPatientName(lastName, firstName string, patronymic *string) ([]VisitInfoRow, error)
	// Create inserta la visita con estado/tipo por defecto y devuelve el id asignado.
	Create(v *entity.Visit) (int64, error)
	// Update actualiza fecha, horario, doctor, descuento e importe final.
	Update(v *entity.Visit) error
	// Exists indica si la visita existe.
	Exists(id int64) (bool, error)
	// SetReceipt asocia el recibo de pago a la visita.
	SetReceipt(visitID, receiptID int64) error
}

// DuplicateGroup grupo de líneas de servicio repetidas (mismo servicio y cantidad).
type DuplicateGroup struct {
	ServiceID int64
	Quantity  int64
	Count     int64
}

// VisitServiceRepository puerto de las líneas de servicio de una visita.
// El flujo de guardado reemplaza siempre el conjunto completo (delete + insert).
type VisitServiceRepository interface {
	// DeleteByVisit elimina todas las líneas de la visita; devuelve filas afectadas.
	DeleteByVisit(visitID int64) (int64, error)
	// Insert añade una línea.
	Insert(s *entity.VisitService) error
	// ListByVisit líneas actuales de la visita, ordenadas por id.
	ListByVisit(visitID int64) ([]entity.VisitService, error)
	// FindDuplicateGroups grupos (servicio, cantidad) con más de una fila.
	FindDuplicateGroups(visitID int64) ([]DuplicateGroup, error)
	// DeleteDuplicates borra todas las filas del grupo menos la de menor id; devuelve filas borradas.
	DeleteDuplicates(visitID, serviceID, quantity int64) (int64, error)
}

// VisitProductRepository puerto del consumo de productos de una visita.
type VisitProductRepository interface {
	// ListByVisit consumos actuales de la visita.
	ListByVisit(visitID int64) ([]entity.VisitProduct, error)
	// DeleteByVisit elimina todos los consumos de la visita; devuelve filas afectadas.
	DeleteByVisit(visitID int64) (int64, error)
	// Insert añade un consumo.
	Insert(p *entity.VisitProduct) error
	// CountByVisit número de consumos registrados.
	CountByVisit(visitID int64) (int64, error)
}
