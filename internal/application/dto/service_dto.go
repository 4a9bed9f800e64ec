package dto

// DentalServiceItem fila de GET /get-dental-services.
type DentalServiceItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	Warranty    *string `json:"warranty"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"categoryId"`
}
