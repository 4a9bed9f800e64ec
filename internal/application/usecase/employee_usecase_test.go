package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/domain"
	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/internal/domain/repository"
	"github.com/clinident/clinica-api/pkg/logger"
)

// fakeEmployeeRepo repo en memoria; también actúa de TxRunner pasándose a sí
// mismo al callback.
type fakeEmployeeRepo struct {
	positions   map[string]int64
	positionSeq int64
	employees   []entity.Employee
	schedules   []entity.WorkSchedule
	links       [][2]int64 // (scheduleID, employeeID)
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{positions: map[string]int64{}, positionSeq: 1}
}

func (f *fakeEmployeeRepo) RunEmployee(_ context.Context, fn func(repository.EmployeeRepository) error) error {
	return fn(f)
}

func (f *fakeEmployeeRepo) FindPositionByName(name string) (int64, error) {
	return f.positions[name], nil
}

func (f *fakeEmployeeRepo) CreatePosition(name string, _ bool) (int64, error) {
	id := f.positionSeq
	f.positionSeq++
	f.positions[name] = id
	return id, nil
}

func (f *fakeEmployeeRepo) Create(e *entity.Employee) (int64, error) {
	e.ID = int64(len(f.employees) + 1)
	f.employees = append(f.employees, *e)
	return e.ID, nil
}

func (f *fakeEmployeeRepo) CreateWorkSchedule(ws *entity.WorkSchedule) (int64, error) {
	ws.ID = int64(len(f.schedules) + 1)
	f.schedules = append(f.schedules, *ws)
	return ws.ID, nil
}

func (f *fakeEmployeeRepo) LinkSchedule(scheduleID, employeeID int64) error {
	f.links = append(f.links, [2]int64{scheduleID, employeeID})
	return nil
}

func (f *fakeEmployeeRepo) List() ([]repository.EmployeeListItem, error) { return nil, nil }

func (f *fakeEmployeeRepo) ListDoctors() ([]repository.DoctorListItem, error) { return nil, nil }

func newEmployeeUC(repo *fakeEmployeeRepo) *EmployeeUseCase {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewEmployeeUseCase(repo, repo, log)
}

func TestWeekdaysOfNextMonth(t *testing.T) {
	// referencia en enero 2024 -> febrero 2024 tiene 21 días laborables
	ref := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	days := weekdaysOfNextMonth(ref)

	assert.Len(t, days, 21)
	for _, d := range days {
		assert.Equal(t, time.February, d.Month())
		assert.NotEqual(t, time.Saturday, d.Weekday())
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}
	// primer laborable de febrero 2024: jueves 1
	assert.Equal(t, 1, days[0].Day())
}

func TestAdd_CreaEmpleadoConAgenda(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := newEmployeeUC(repo)
	uc.now = func() time.Time {
		return time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	}

	snils := "123-456-789 01"
	phone := "+7 (999) 123-45-67"
	resp, err := uc.Add(context.Background(), dto.AddEmployeeRequest{
		LastName:       "Петрова",
		FirstName:      "Анна",
		Position:       "Стоматолог-терапевт",
		IsDoctor:       true,
		BirthDate:      "15.03.1990",
		SNILS:          &snils,
		Phone:          &phone,
		ShowInSchedule: true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.EmployeeID)
	assert.Equal(t, 21, resp.ScheduleDays, "febrero 2024 tiene 21 laborables")
	assert.Len(t, repo.schedules, 21)
	assert.Len(t, repo.links, 21)

	emp := repo.employees[0]
	assert.Equal(t, entity.EmployeeStatusActive, emp.StatusID)
	require.NotNil(t, emp.SNILS)
	assert.Equal(t, "12345678901", *emp.SNILS, "el SNILS se normaliza a dígitos")
	require.NotNil(t, emp.Phone)
	assert.Equal(t, "79991234567", *emp.Phone)
	require.NotNil(t, emp.BirthDate)
	assert.Equal(t, 1990, emp.BirthDate.Year())

	// franjas con el horario por defecto
	assert.Equal(t, "09:00", repo.schedules[0].Start)
	assert.Equal(t, "18:00", repo.schedules[0].End)
}

func TestAdd_SinAgendaCuandoNoSeMuestraEnHorario(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := newEmployeeUC(repo)

	resp, err := uc.Add(context.Background(), dto.AddEmployeeRequest{
		LastName:  "Иванова",
		FirstName: "Мария",
		Position:  "Администратор",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.ScheduleDays)
	assert.Empty(t, repo.schedules, "sin show_in_schedule no se genera agenda")
	assert.Empty(t, repo.links)
	assert.Equal(t, entity.EmployeeStatusActive, repo.employees[0].StatusID)
}

func TestAdd_DespedidoQuedaInactivoYSinAgenda(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := newEmployeeUC(repo)

	resp, err := uc.Add(context.Background(), dto.AddEmployeeRequest{
		LastName:       "Смирнов",
		FirstName:      "Олег",
		Position:       "Хирург",
		IsDoctor:       true,
		ShowInSchedule: true,
		Dismissed:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EmployeeStatusInactive, repo.employees[0].StatusID)
	assert.Equal(t, 0, resp.ScheduleDays, "despedido no entra en el horario aunque lo pida")
	assert.Empty(t, repo.schedules)
	assert.Empty(t, repo.links)
}

func TestAdd_ReutilizaCargoExistente(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.positions["Ортодонт"] = 7
	uc := newEmployeeUC(repo)

	resp, err := uc.Add(context.Background(), dto.AddEmployeeRequest{
		LastName:  "Сидоров",
		FirstName: "Пётр",
		Position:  "Ортодонт",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.EmployeeID)
	assert.Equal(t, int64(7), repo.employees[0].PositionID)
	assert.Len(t, repo.positions, 1, "no debe crearse un cargo duplicado")
}

func TestAdd_Validaciones(t *testing.T) {
	uc := newEmployeeUC(newFakeEmployeeRepo())

	_, err := uc.Add(context.Background(), dto.AddEmployeeRequest{FirstName: "Анна", Position: "Доктор"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Add(context.Background(), dto.AddEmployeeRequest{LastName: "Петрова", FirstName: "Анна"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Add(context.Background(), dto.AddEmployeeRequest{
		LastName: "Петрова", FirstName: "Анна", Position: "Доктор", BirthDate: "fecha-mala",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
