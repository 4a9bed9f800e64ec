package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clinident/clinica-api/internal/domain/entity"
	"github.com/clinident/clinica-api/internal/domain/repository"
)

var _ repository.PatientRepository = (*PatientRepo)(nil)

// PatientRepo implementación de PatientRepository sobre PostgreSQL (usable con pool o tx).
type PatientRepo struct {
	q Querier
}

// NewPatientRepository construye el adaptador de pacientes. Pasar pool o tx (Querier).
func NewPatientRepository(q Querier) *PatientRepo {
	return &PatientRepo{q: q}
}

const patientColumns = `
	id, last_name, first_name, patronymic, photo, birth_date, gender, phone,
	address, email, oms_policy, snils, passport_series, passport_number,
	passport_issued_on, disability, allergies, chronic_diseases, complaints,
	created_on, contract_id`

// ListSummaries listado agregado de pacientes con total y última fecha de visita.
func (r *PatientRepo) ListSummaries() ([]repository.PatientSummary, error) {
	query := `
		SELECT
			p.id,
			TRIM(p.last_name || ' ' || p.first_name || ' ' || COALESCE(p.patronymic, '')),
			p.phone,
			COUNT(v.id),
			p.birth_date,
			MAX(v.visit_date),
			p.created_on
		FROM patients p
		LEFT JOIN visits v ON v.patient_id = p.id
		GROUP BY p.id, p.last_name, p.first_name, p.patronymic, p.phone, p.birth_date, p.created_on
		ORDER BY p.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var list []repository.PatientSummary
	for rows.Next() {
		var s repository.PatientSummary
		if err := rows.Scan(&s.ID, &s.FullName, &s.Phone, &s.VisitCount, &s.BirthDate, &s.LastVisitOn, &s.CreatedOn); err != nil {
			return nil, fmt.Errorf("scan patient summary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// CreateContract crea el documento de contrato con fecha actual.
func (r *PatientRepo) CreateContract() (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO contract_documents (created_on) VALUES (CURRENT_DATE) RETURNING id`,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create contract: %w", err)
	}
	return id, nil
}

// Create inserta el paciente y devuelve el id asignado.
func (r *PatientRepo) Create(p *entity.Patient) (int64, error) {
	query := `
		INSERT INTO patients (
			last_name, first_name, patronymic, photo, birth_date, gender, phone,
			address, email, oms_policy, snils, passport_series, passport_number,
			passport_issued_on, disability, allergies, chronic_diseases, complaints,
			created_on, contract_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, CURRENT_DATE, $19)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		p.LastName, p.FirstName, p.Patronymic, p.Photo, p.BirthDate, p.Gender, p.Phone,
		p.Address, p.Email, p.OMSPolicy, p.SNILS, p.PassportSeries, p.PassportNumber,
		p.PassportIssuedOn, p.Disability, p.Allergies, p.ChronicDiseases, p.Complaints,
		p.ContractID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create patient: %w", err)
	}
	return id, nil
}

// AttachCategory vincula el paciente a una categoría; ignora el vínculo duplicado.
func (r *PatientRepo) AttachCategory(patientID, categoryID int64) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO patient_categories (patient_id, category_id) VALUES ($1, $2)`,
		patientID, categoryID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("attach category: %w", err)
	}
	return nil
}

// AttachDocument guarda un documento adjunto del paciente.
func (r *PatientRepo) AttachDocument(doc *entity.PatientDocument) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO documents (name, uploaded_on, content, patient_id) VALUES ($1, CURRENT_DATE, $2, $3)`,
		doc.Name, doc.Content, doc.PatientID,
	)
	if err != nil {
		return fmt.Errorf("attach document: %w", err)
	}
	return nil
}

// Update actualiza la ficha completa del paciente.
func (r *PatientRepo) Update(p *entity.Patient) error {
	query := `
		UPDATE patients SET
			last_name = $1, first_name = $2, patronymic = $3, birth_date = $4,
			gender = $5, phone = $6, address = $7, email = $8, oms_policy = $9,
			snils = $10, passport_series = $11, passport_number = $12,
			passport_issued_on = $13, disability = $14, allergies = $15,
			chronic_diseases = $16, complaints = $17
		WHERE id = $18`
	_, err := r.q.Exec(context.Background(), query,
		p.LastName, p.FirstName, p.Patronymic, p.BirthDate,
		p.Gender, p.Phone, p.Address, p.Email, p.OMSPolicy,
		p.SNILS, p.PassportSeries, p.PassportNumber,
		p.PassportIssuedOn, p.Disability, p.Allergies,
		p.ChronicDiseases, p.Complaints, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	return nil
}

// GetFullByName ficha completa por nombre. Si patronymic es nil, exige patronímico vacío o NULL.
func (r *PatientRepo) GetFullByName(lastName, firstName string, patronymic *string) (*entity.Patient, error) {
	query := `SELECT` + patientColumns + `
		FROM patients
		WHERE last_name = $1 AND first_name = $2`
	args := []any{lastName, firstName}
	if patronymic != nil && *patronymic != "" {
		query += ` AND patronymic = $3`
		args = append(args, *patronymic)
	} else {
		query += ` AND (patronymic IS NULL OR patronymic = '')`
	}
	query += ` LIMIT 1`

	var p entity.Patient
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.LastName, &p.FirstName, &p.Patronymic, &p.Photo, &p.BirthDate,
		&p.Gender, &p.Phone, &p.Address, &p.Email, &p.OMSPolicy, &p.SNILS,
		&p.PassportSeries, &p.PassportNumber, &p.PassportIssuedOn, &p.Disability,
		&p.Allergies, &p.ChronicDiseases, &p.Complaints, &p.CreatedOn, &p.ContractID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patient by name: %w", err)
	}
	return &p, nil
}

// GetIDByName id del paciente por nombre; el patronímico solo filtra cuando viene informado.
func (r *PatientRepo) GetIDByName(lastName, firstName string, patronymic *string) (int64, error) {
	query := `
		SELECT id FROM patients
		WHERE last_name = $1 AND first_name = $2
		  AND (patronymic = $3 OR $3 IS NULL OR patronymic IS NULL)
		LIMIT 1`
	var id int64
	err := r.q.QueryRow(context.Background(), query, lastName, firstName, patronymic).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get patient id: %w", err)
	}
	return id, nil
}
