package dto

// MonthRevenueItem fila de GET /get-revenue-last-3-months.
// Month es el nombre del mes en el idioma configurado (APP_LOCALE).
type MonthRevenueItem struct {
	Month   string `json:"month"`
	Year    int    `json:"year"`
	Revenue string `json:"revenue"`
}

// EmployeeVisitsItem fila de GET /get-visits-by-employees.
type EmployeeVisitsItem struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Visits   int64  `json:"visits"`
}
