package dto

// PatientListItem fila de GET /get-patients.
type PatientListItem struct {
	ID          int64   `json:"id"`
	FullName    string  `json:"fullName"`
	Phone       *string `json:"phone"`
	VisitCount  int64   `json:"visitCount"`
	BirthDate   string  `json:"birthDate"`
	LastVisitOn string  `json:"lastVisitOn"`
	CreatedOn   string  `json:"createdOn"`
}

// SavePatientRequest cuerpo de POST / (alta) y PUT /update-patient.
// Las fechas llegan como DD.MM.YYYY o YYYY-MM-DD.
type SavePatientRequest struct {
	ID               int64   `json:"id"`
	LastName         string  `json:"lastName"`
	FirstName        string  `json:"firstName"`
	Patronymic       *string `json:"patronymic"`
	Photo            *string `json:"photo"`
	BirthDate        string  `json:"birthDate"`
	Gender           string  `json:"gender"`
	Phone            *string `json:"phone"`
	Address          *string `json:"address"`
	Email            *string `json:"email"`
	OMSPolicy        *string `json:"omsPolicy"`
	SNILS            *string `json:"snils"`
	PassportSeries   *string `json:"passportSeries"`
	PassportNumber   *string `json:"passportNumber"`
	PassportIssuedOn *string `json:"passportIssuedOn"`
	Disability       *string `json:"disability"`
	Allergies        *string `json:"allergies"`
	ChronicDiseases  *string `json:"chronicDiseases"`
	Complaints       *string `json:"complaints"`
	CategoryIDs      []int64 `json:"categoryIds"`
	// Documents adjuntos en el alta (nombre + contenido base64).
	Documents []PatientDocumentEntry `json:"documents"`
}

// PatientDocumentEntry documento adjunto en el alta de paciente.
type PatientDocumentEntry struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// SavePatientResponse respuesta del alta/edición de paciente.
type SavePatientResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	PatientID int64  `json:"patientId"`
}

// PatientFullResponse ficha completa de GET /get-patient-full.
type PatientFullResponse struct {
	ID               int64   `json:"id"`
	LastName         string  `json:"lastName"`
	FirstName        string  `json:"firstName"`
	Patronymic       *string `json:"patronymic"`
	Photo            *string `json:"photo"`
	BirthDate        string  `json:"birthDate"`
	Gender           string  `json:"gender"`
	Phone            *string `json:"phone"`
	Address          *string `json:"address"`
	Email            *string `json:"email"`
	OMSPolicy        *string `json:"omsPolicy"`
	SNILS            *string `json:"snils"`
	PassportSeries   *string `json:"passportSeries"`
	PassportNumber   *string `json:"passportNumber"`
	PassportIssuedOn *string `json:"passportIssuedOn"`
	Disability       *string `json:"disability"`
	Allergies        *string `json:"allergies"`
	ChronicDiseases  *string `json:"chronicDiseases"`
	Complaints       *string `json:"complaints"`
	CreatedOn        string  `json:"createdOn"`
}

// PatientIDResponse respuesta de GET /get-patient-id.
type PatientIDResponse struct {
	PatientID int64 `json:"patientId"`
}
