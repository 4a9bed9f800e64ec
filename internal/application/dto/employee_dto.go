package dto

// AddEmployeeRequest cuerpo de POST /add-employee.
type AddEmployeeRequest struct {
	LastName    string  `json:"lastName"`
	FirstName   string  `json:"firstName"`
	Patronymic  *string `json:"patronymic"`
	Photo       *string `json:"photo"`
	Position    string  `json:"position"`
	IsDoctor    bool    `json:"isDoctor"`
	SNILS       *string `json:"snils"`
	BirthDate   string  `json:"birthDate"` // DD.MM.YYYY o YYYY-MM-DD
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	INN         *string `json:"inn"`
	Description *string `json:"description"`
	// Nombres de campo del frontend constructor de páginas.
	ShowInSchedule bool `json:"show_in_schedule"`
	Dismissed      bool `json:"dismissed"`
}

// AddEmployeeResponse respuesta del alta de empleado.
type AddEmployeeResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	EmployeeID   int64  `json:"employeeId"`
	ScheduleDays int    `json:"scheduleDays"`
}

// EmployeeListItem fila de GET /get-employees.
type EmployeeListItem struct {
	ID        int64   `json:"id"`
	FullName  string  `json:"fullName"`
	Position  string  `json:"position"`
	Phone     *string `json:"phone"`
	BirthDate string  `json:"birthDate"`
	Active    bool    `json:"active"`
}

// DoctorListItem fila de GET /get-doctors.
type DoctorListItem struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Position string `json:"position"`
}
