package entity

import "time"

// Patient ficha completa del paciente.
type Patient struct {
	ID               int64
	LastName         string
	FirstName        string
	Patronymic       *string
	Photo            *string
	BirthDate        *time.Time
	Gender           string
	Phone            *string
	Address          *string
	Email            *string
	OMSPolicy        *string
	SNILS            *string
	PassportSeries   *string
	PassportNumber   *string
	PassportIssuedOn *string
	Disability       *string
	Allergies        *string
	ChronicDiseases  *string
	Complaints       *string
	CreatedOn        time.Time
	ContractID       int64
}

// FullName apellido + nombre + patronímico (si existe).
func (p *Patient) FullName() string {
	s := p.LastName + " " + p.FirstName
	if p.Patronymic != nil && *p.Patronymic != "" {
		s += " " + *p.Patronymic
	}
	return s
}

// PatientDocument documento adjunto a la ficha (PDF o foto en base64).
type PatientDocument struct {
	ID        int64
	Name      string
	Content   string
	PatientID int64
}
