package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de empleados. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// FindPositionByName devuelve el id del cargo o 0 si no existe.
func (r *EmployeeRepo) FindPositionByName(name string) (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`SELECT id FROM positions WHERE name = $1`, name,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("find position: %w", err)
	}
	return id, nil
}

// CreatePosition crea el cargo; si otro request lo creó a la vez, devuelve el existente.
func (r *EmployeeRepo) CreatePosition(name string, isDoctor bool) (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO positions (name, is_doctor) VALUES ($1, $2) RETURNING id`,
		name, isDoctor,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return r.FindPositionByName(name)
		}
		return 0, fmt.Errorf("create position: %w", err)
	}
	return id, nil
}

// Create inserta el empleado y devuelve el id asignado.
func (r *EmployeeRepo) Create(e *entity.Employee) (int64, error) {
	query := `
		INSERT INTO employees (
			last_name, first_name, patronymic, photo, position_id, snils,
			birth_date, phone, email, inn, description, status_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		e.LastName, e.FirstName, e.Patronymic, e.Photo, e.PositionID, e.SNILS,
		e.BirthDate, e.Phone, e.Email, e.INN, e.Description, e.StatusID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create employee: %w", err)
	}
	return id, nil
}

// CreateWorkSchedule crea una franja de trabajo y devuelve su id.
func (r *EmployeeRepo) CreateWorkSchedule(ws *entity.WorkSchedule) (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO work_schedules (work_date, work_start, work_end, status_id)
		 VALUES ($1, $2::time, $3::time, $4) RETURNING id`,
		ws.Date, ws.Start, ws.End, ws.StatusID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create work schedule: %w", err)
	}
	return id, nil
}

// LinkSchedule vincula la franja con el empleado.
func (r *EmployeeRepo) LinkSchedule(scheduleID, employeeID int64) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO employee_work_schedules (schedule_id, employee_id) VALUES ($1, $2)`,
		scheduleID, employeeID,
	)
	if err != nil {
		return fmt.Errorf("link schedule: %w", err)
	}
	return nil
}

// List listado de empleados con su cargo, ordenado por id.
func (r *EmployeeRepo) List() ([]repository.EmployeeListItem, error) {
	query := `
		SELECT
			e.id,
			TRIM(e.last_name || ' ' || e.first_name || ' ' || COALESCE(e.patronymic, '')),
			p.name,
			e.phone,
			e.birth_date,
			e.status_id
		FROM employees e
		JOIN positions p ON p.id = e.position_id
		ORDER BY e.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []repository.EmployeeListItem
	for rows.Next() {
		var it repository.EmployeeListItem
		if err := rows.Scan(&it.ID, &it.FullName, &it.Position, &it.Phone, &it.BirthDate, &it.StatusID); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// ListDoctors empleados con cargo médico (positions.is_doctor), para la agenda.
func (r *EmployeeRepo) ListDoctors() ([]repository.DoctorListItem, error) {
	query := `
		SELECT
			e.id,
			TRIM(e.last_name || ' ' || e.first_name || ' ' || COALESCE(e.patronymic, '')),
			p.name
		FROM employees e
		JOIN positions p ON p.id = e.position_id
		WHERE p.is_doctor
		ORDER BY e.last_name, e.first_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	var list []repository.DoctorListItem
	for rows.Next() {
		var it repository.DoctorListItem
		if err := rows.Scan(&it.ID, &it.FullName, &it.Position); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
