package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/domain"
	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/internal/domain/repository"
	"github.com/clinident/clinica-api/pkg/logger"
)

// Horario laboral generado automáticamente en el alta de un empleado.
const (
	defaultShiftStart = "09:00"
	defaultShiftEnd   = "18:00"
)

// EmployeeTxRunner transacción del alta de empleado (cargo + ficha + agenda).
type EmployeeTxRunner interface {
	RunEmployee(ctx context.Context, fn func(repository.EmployeeRepository) error) error
}

// EmployeeUseCase casos de uso de empleados: alta con generación de agenda,
// listados y doctores para la agenda del frontend.
type EmployeeUseCase struct {
	txRunner     EmployeeTxRunner
	employeeRepo repository.EmployeeRepository
	log          *logger.Logger
	now          func() time.Time
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(txRunner EmployeeTxRunner, employeeRepo repository.EmployeeRepository, log *logger.Logger) *EmployeeUseCase {
	return &EmployeeUseCase{txRunner: txRunner, employeeRepo: employeeRepo, log: log, now: time.Now}
}

// Add da de alta al empleado: resuelve o crea el cargo, inserta la ficha y,
// si debe aparecer en el horario y no está despedido, genera la agenda laboral
// (lunes a viernes) del mes siguiente, todo en una transacción.
func (uc *EmployeeUseCase) Add(ctx context.Context, req dto.AddEmployeeRequest) (*dto.AddEmployeeResponse, error) {
	if req.LastName == "" || req.FirstName == "" {
		return nil, fmt.Errorf("%w: lastName y firstName son obligatorios", domain.ErrInvalidInput)
	}
	if req.Position == "" {
		return nil, fmt.Errorf("%w: position es obligatorio", domain.ErrInvalidInput)
	}

	status := entity.EmployeeStatusActive
	if req.Dismissed {
		status = entity.EmployeeStatusInactive
	}
	emp := &entity.Employee{
		LastName:    req.LastName,
		FirstName:   req.FirstName,
		Patronymic:  req.Patronymic,
		Photo:       req.Photo,
		SNILS:       normalizeDigits(req.SNILS),
		Phone:       normalizePhone(req.Phone),
		Email:       req.Email,
		INN:         normalizeDigits(req.INN),
		Description: req.Description,
		StatusID:    status,
	}
	if req.BirthDate != "" {
		birth, err := dto.ParseDate(req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha de nacimiento inválida", domain.ErrInvalidInput)
		}
		emp.BirthDate = &birth
	}

	// La agenda solo se genera para empleados visibles en el horario y no despedidos.
	var scheduleDates []time.Time
	if req.ShowInSchedule && !req.Dismissed {
		scheduleDates = weekdaysOfNextMonth(uc.now())
	}

	var employeeID int64
	err := uc.txRunner.RunEmployee(ctx, func(repo repository.EmployeeRepository) error {
		positionID, err := repo.FindPositionByName(req.Position)
		if err != nil {
			return err
		}
		if positionID == 0 {
			positionID, err = repo.CreatePosition(req.Position, req.IsDoctor)
			if err != nil {
				return err
			}
		}
		emp.PositionID = positionID

		employeeID, err = repo.Create(emp)
		if err != nil {
			return err
		}

		for _, day := range scheduleDates {
			ws := &entity.WorkSchedule{
				Date:     day,
				Start:    defaultShiftStart,
				End:      defaultShiftEnd,
				StatusID: 1,
			}
			scheduleID, err := repo.CreateWorkSchedule(ws)
			if err != nil {
				return err
			}
			if err := repo.LinkSchedule(scheduleID, employeeID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("employeeId", employeeID).
		Int("scheduleDays", len(scheduleDates)).
		Msg("empleado dado de alta")

	return &dto.AddEmployeeResponse{
		Status:       "ok",
		Message:      "Empleado creado",
		EmployeeID:   employeeID,
		ScheduleDays: len(scheduleDates),
	}, nil
}

// List listado de empleados.
func (uc *EmployeeUseCase) List() ([]dto.EmployeeListItem, error) {
	rows, err := uc.employeeRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.EmployeeListItem{
			ID:        r.ID,
			FullName:  r.FullName,
			Position:  r.Position,
			Phone:     r.Phone,
			BirthDate: formatDate(r.BirthDate),
			Active:    r.StatusID == entity.EmployeeStatusActive,
		})
	}
	return items, nil
}

// ListDoctors empleados con cargo médico, para el selector de la agenda.
func (uc *EmployeeUseCase) ListDoctors() ([]dto.DoctorListItem, error) {
	rows, err := uc.employeeRepo.ListDoctors()
	if err != nil {
		return nil, err
	}
	items := make([]dto.DoctorListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.DoctorListItem{ID: r.ID, FullName: r.FullName, Position: r.Position})
	}
	return items, nil
}

// weekdaysOfNextMonth días laborables (lunes a viernes) del mes natural
// siguiente al de referencia.
func weekdaysOfNextMonth(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	var days []time.Time
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		default:
			days = append(days, d)
		}
	}
	return days
}
