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

// PatientTxRunner transacción del alta de paciente (contrato + ficha +
// categorías + documentos en varias tablas).
type PatientTxRunner interface {
	RunPatient(ctx context.Context, fn func(repository.PatientRepository) error) error
}

// PatientUseCase casos de uso de la ficha de pacientes.
type PatientUseCase struct {
	txRunner    PatientTxRunner
	patientRepo repository.PatientRepository
	log         *logger.Logger
}

// NewPatientUseCase construye el caso de uso.
func NewPatientUseCase(txRunner PatientTxRunner, patientRepo repository.PatientRepository, log *logger.Logger) *PatientUseCase {
	return &PatientUseCase{txRunner: txRunner, patientRepo: patientRepo, log: log}
}

// List listado agregado para la tabla principal del frontend.
func (uc *PatientUseCase) List() ([]dto.PatientListItem, error) {
	rows, err := uc.patientRepo.ListSummaries()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PatientListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.PatientListItem{
			ID:          r.ID,
			FullName:    r.FullName,
			Phone:       r.Phone,
			VisitCount:  r.VisitCount,
			BirthDate:   formatDate(r.BirthDate),
			LastVisitOn: formatDate(r.LastVisitOn),
			CreatedOn:   r.CreatedOn.Format("2006-01-02"),
		})
	}
	return items, nil
}

// Create da de alta al paciente: contrato, ficha, categorías y documentos
// adjuntos en una sola transacción.
func (uc *PatientUseCase) Create(ctx context.Context, req dto.SavePatientRequest) (*dto.SavePatientResponse, error) {
	patient, err := patientFromRequest(req)
	if err != nil {
		return nil, err
	}

	var patientID int64
	err = uc.txRunner.RunPatient(ctx, func(repo repository.PatientRepository) error {
		contractID, err := repo.CreateContract()
		if err != nil {
			return err
		}
		patient.ContractID = contractID
		patientID, err = repo.Create(patient)
		if err != nil {
			return err
		}
		for _, categoryID := range req.CategoryIDs {
			if err := repo.AttachCategory(patientID, categoryID); err != nil {
				return err
			}
		}
		for _, d := range req.Documents {
			doc := &entity.PatientDocument{Name: d.Name, Content: d.Content, PatientID: patientID}
			if err := repo.AttachDocument(doc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("patientId", patientID).Msg("paciente dado de alta")
	return &dto.SavePatientResponse{Status: "ok", Message: "Paciente creado", PatientID: patientID}, nil
}

// Update actualiza la ficha completa del paciente.
func (uc *PatientUseCase) Update(ctx context.Context, req dto.SavePatientRequest) (*dto.SavePatientResponse, error) {
	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: id es obligatorio", domain.ErrInvalidInput)
	}
	patient, err := patientFromRequest(req)
	if err != nil {
		return nil, err
	}
	patient.ID = req.ID
	if err := uc.patientRepo.Update(patient); err != nil {
		return nil, err
	}
	return &dto.SavePatientResponse{Status: "ok", Message: "Paciente actualizado", PatientID: req.ID}, nil
}

// GetFullByName ficha completa por apellido+nombre (+patronímico opcional).
func (uc *PatientUseCase) GetFullByName(lastName, firstName string, patronymic *string) (*dto.PatientFullResponse, error) {
	if lastName == "" || firstName == "" {
		return nil, fmt.Errorf("%w: faltan apellido y nombre", domain.ErrInvalidInput)
	}
	p, err := uc.patientRepo.GetFullByName(lastName, firstName, patronymic)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPatientNotFound
	}
	return &dto.PatientFullResponse{
		ID:               p.ID,
		LastName:         p.LastName,
		FirstName:        p.FirstName,
		Patronymic:       p.Patronymic,
		Photo:            p.Photo,
		BirthDate:        formatDate(p.BirthDate),
		Gender:           p.Gender,
		Phone:            p.Phone,
		Address:          p.Address,
		Email:            p.Email,
		OMSPolicy:        p.OMSPolicy,
		SNILS:            p.SNILS,
		PassportSeries:   p.PassportSeries,
		PassportNumber:   p.PassportNumber,
		PassportIssuedOn: p.PassportIssuedOn,
		Disability:       p.Disability,
		Allergies:        p.Allergies,
		ChronicDiseases:  p.ChronicDiseases,
		Complaints:       p.Complaints,
		CreatedOn:        p.CreatedOn.Format("2006-01-02"),
	}, nil
}

// GetIDByName id del paciente por apellido+nombre (+patronímico opcional).
func (uc *PatientUseCase) GetIDByName(lastName, firstName string, patronymic *string) (*dto.PatientIDResponse, error) {
	if lastName == "" || firstName == "" {
		return nil, fmt.Errorf("%w: faltan apellido y nombre", domain.ErrInvalidInput)
	}
	id, err := uc.patientRepo.GetIDByName(lastName, firstName, patronymic)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, domain.ErrPatientNotFound
	}
	return &dto.PatientIDResponse{PatientID: id}, nil
}

func patientFromRequest(req dto.SavePatientRequest) (*entity.Patient, error) {
	if req.LastName == "" || req.FirstName == "" {
		return nil, fmt.Errorf("%w: lastName y firstName son obligatorios", domain.ErrInvalidInput)
	}
	p := &entity.Patient{
		LastName:         req.LastName,
		FirstName:        req.FirstName,
		Patronymic:       req.Patronymic,
		Photo:            req.Photo,
		Gender:           req.Gender,
		Phone:            normalizePhone(req.Phone),
		Address:          req.Address,
		Email:            req.Email,
		OMSPolicy:        req.OMSPolicy,
		SNILS:            normalizeDigits(req.SNILS),
		PassportSeries:   req.PassportSeries,
		PassportNumber:   req.PassportNumber,
		PassportIssuedOn: req.PassportIssuedOn,
		Disability:       req.Disability,
		Allergies:        req.Allergies,
		ChronicDiseases:  req.ChronicDiseases,
		Complaints:       req.Complaints,
	}
	if p.Gender == "" {
		p.Gender = "unspecified"
	}
	if req.BirthDate != "" {
		birth, err := dto.ParseDate(req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha de nacimiento inválida", domain.ErrInvalidInput)
		}
		p.BirthDate = &birth
	}
	return p, nil
}

// normalizeDigits descarta separadores de SNILS/INN, dejando solo dígitos.
func normalizeDigits(s *string) *string {
	if s == nil {
		return nil
	}
	d := dto.Digits(*s)
	return &d
}

// normalizePhone conserva solo dígitos del teléfono.
func normalizePhone(s *string) *string {
	return normalizeDigits(s)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
