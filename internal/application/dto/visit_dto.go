package dto

import "github.com/shopspring/decimal"

// SaveVisitServiceEntry línea de servicio tal como la envía el frontend.
// El identificador del servicio puede llegar como serviceId o como id.
type SaveVisitServiceEntry struct {
	ServiceID int64            `json:"serviceId"`
	ID        int64            `json:"id"`
	Quantity  *int64           `json:"quantity"`
	Price     *decimal.Decimal `json:"price"`
	Total     *decimal.Decimal `json:"total"`
}

// EffectiveServiceID serviceId si viene informado, id en caso contrario.
func (e SaveVisitServiceEntry) EffectiveServiceID() int64 {
	if e.ServiceID > 0 {
		return e.ServiceID
	}
	return e.ID
}

// SaveVisitProductEntry consumo de producto de almacén enviado por el frontend.
type SaveVisitProductEntry struct {
	ID       int64           `json:"id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// SaveVisitRequest cuerpo de POST /save-visit. VisitID ausente o no positivo
// crea una visita nueva; positivo edita la existente.
type SaveVisitRequest struct {
	VisitID     *int64                  `json:"visitId"`
	PatientID   int64                   `json:"patientId"`
	DoctorID    int64                   `json:"doctorId"`
	Date        string                  `json:"date"`      // YYYY-MM-DD o DD.MM.YYYY
	StartTime   string                  `json:"startTime"` // HH:MM
	EndTime     string                  `json:"endTime"`   // HH:MM
	Discount    decimal.Decimal         `json:"discount"`
	FinalAmount decimal.Decimal         `json:"finalAmount"`
	Note        *string                 `json:"note"`
	Services    []SaveVisitServiceEntry `json:"services"`
	Products    []SaveVisitProductEntry `json:"products"`
}

// SaveVisitResponse respuesta de POST /save-visit.
// Los contadores se recalculan consultando la BD dentro de la transacción,
// no se copian del tamaño de la entrada.
type SaveVisitResponse struct {
	Status             string `json:"status"`
	Message            string `json:"message"`
	VisitID            int64  `json:"visitId"`
	FinalServicesCount int64  `json:"finalServicesCount"`
	FinalProductsCount int64  `json:"finalProductsCount"`
}

// CleanupDuplicatesRequest cuerpo de POST /cleanup-duplicates.
type CleanupDuplicatesRequest struct {
	VisitID int64 `json:"visitId"`
}

// CleanupServiceLine línea de servicio que queda tras la limpieza.
type CleanupServiceLine struct {
	ID        int64           `json:"id"`
	ServiceID int64           `json:"serviceId"`
	Quantity  int64           `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// CleanupDuplicatesResponse respuesta de POST /cleanup-duplicates.
type CleanupDuplicatesResponse struct {
	Status            string               `json:"status"`
	Message           string               `json:"message"`
	DeletedCount      int64                `json:"deletedCount"`
	RemainingServices int64                `json:"remainingServices"`
	Services          []CleanupServiceLine `json:"services"`
}

// VisitInfoItem fila de GET /get-visit-info: visita con su línea de servicio
// (una fila por línea; visitas sin líneas salen con los campos de servicio vacíos).
type VisitInfoItem struct {
	VisitID       int64  `json:"visitId"`
	PatientName   string `json:"patientName"`
	Date          string `json:"date"`
	TimeStart     string `json:"timeStart"`
	TimeEnd       string `json:"timeEnd"`
	DoctorName    string `json:"doctorName"`
	DoctorID      int64  `json:"doctorId"`
	ServiceID     *int64 `json:"serviceId"`
	ServiceName   string `json:"serviceName"`
	Quantity      int64  `json:"quantity"`
	ServicePrice  string `json:"servicePrice"`
	ServiceTotal  string `json:"serviceTotal"`
	Discount      string `json:"discount"`
	FinalAmount   string `json:"finalAmount"`
	PaymentAmount string `json:"paymentAmount"`
	PaymentMethod string `json:"paymentMethod"`
	Note          string `json:"note"`
	Status        string `json:"status"`
	VisitType     string `json:"visitType"`
}
