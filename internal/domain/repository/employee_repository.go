package repository

import (
	"time"

	"github.com/clinident/clinica-api/internal/domain/entity"
)

// EmployeeListItem fila del listado de empleados.
type EmployeeListItem struct {
	ID        int64
	FullName  string
	Position  string
	Phone     *string
	BirthDate *time.Time
	StatusID  int64
}

// DoctorListItem fila del listado de doctores para la agenda.
type DoctorListItem struct {
	ID       int64
	FullName string
	Position string
}

// EmployeeRepository puerto de persistencia de empleados y cargos.
type EmployeeRepository interface {
	// FindPositionByName devuelve el id del cargo o 0 si no existe.
	FindPositionByName(name string) (int64, error)
	// CreatePosition crea el cargo y devuelve su id.
	CreatePosition(name string, isDoctor bool) (int64, error)
	// Create inserta el empleado y devuelve el id asignado.
	Create(e *entity.Employee) (int64, error)
	// CreateWorkSchedule crea una franja de trabajo y devuelve su id.
	CreateWorkSchedule(ws *entity.WorkSchedule) (int64, error)
	// LinkSchedule vincula la franja con el empleado.
	LinkSchedule(scheduleID, employeeID int64) error
	// List listado de empleados con cargo.
	List() ([]EmployeeListItem, error)
	// ListDoctors empleados cuyo cargo está marcado is_doctor.
	ListDoctors() ([]DoctorListItem, error)
}
