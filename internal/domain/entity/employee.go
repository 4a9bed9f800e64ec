package entity

import "time"

// Estados de empleado (seed de la migración inicial).
const (
	EmployeeStatusInactive int64 = 1
	EmployeeStatusActive   int64 = 2
)

// Employee empleado de la clínica.
type Employee struct {
	ID          int64
	LastName    string
	FirstName   string
	Patronymic  *string
	Photo       *string
	PositionID  int64
	SNILS       *string
	BirthDate   *time.Time
	Phone       *string
	Email       *string
	INN         *string
	Description *string
	StatusID    int64
}

// Position cargo; IsDoctor marca los cargos médicos que aparecen en agenda.
type Position struct {
	ID       int64
	Name     string
	IsDoctor bool
}

// WorkSchedule franja de trabajo de un día concreto.
type WorkSchedule struct {
	ID       int64
	Date     time.Time
	Start    string // HH:MM
	End      string // HH:MM
	StatusID int64
}
