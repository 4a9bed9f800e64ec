package repository

import (
	"time"

	"github.com/clinident/clinica-api/internal/domain/entity"
)

// PatientSummary fila del listado agregado de pacientes.
type PatientSummary struct {
	ID          int64
	FullName    string
	Phone       *string
	VisitCount  int64
	BirthDate   *time.Time
	LastVisitOn *time.Time
	CreatedOn   time.Time
}

// PatientRepository puerto de persistencia de pacientes.
// Los métodos de escritura se usan dentro de transacciones (TxRunner).
type PatientRepository interface {
	// ListSummaries listado agregado: visitas totales y fecha de última visita por paciente.
	ListSummaries() ([]PatientSummary, error)
	// CreateContract crea el documento de contrato y devuelve su id.
	CreateContract() (int64, error)
	// Create inserta el paciente y devuelve el id asignado.
	Create(p *entity.Patient) (int64, error)
	// AttachCategory vincula el paciente a una categoría.
	AttachCategory(patientID, categoryID int64) error
	// AttachDocument guarda un documento adjunto (PDF o foto en base64).
	AttachDocument(doc *entity.PatientDocument) error
	// Update actualiza la ficha completa del paciente.
	Update(p *entity.Patient) error
	// GetFullByName ficha completa por apellido+nombre (+patronímico opcional). nil si no existe.
	GetFullByName(lastName, firstName string, patronymic *string) (*entity.Patient, error)
	// GetIDByName id del paciente por nombre. 0 si no existe.
	GetIDByName(lastName, firstName string, patronymic *string) (int64, error)
}
