package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinident/clinica-api/internal/application/auth"
	"github.com/clinident/clinica-api/internal/application/payments"
	"github.com/clinident/clinica-api/internal/application/usecase"
	"github.com/clinident/clinica-api/internal/application/visits"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PatientUC   *usecase.PatientUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	ServiceUC   *usecase.ServiceUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	SaveVisit   *visits.SaveVisitUseCase
	Cleanup     *visits.CleanupDuplicatesUseCase
	VisitInfo   *visits.InfoUseCase
	Payment     *payments.ProcessPaymentUseCase
	ReceiptPDF  *payments.ReceiptPDFUseCase
	AuthUC      *auth.UseCase
}

// Router registra las rutas de la API. Las rutas conservan los nombres que
// espera el constructor de páginas del frontend, por eso van en kebab-case
// colgando de la raíz.
func Router(app *fiber.App, deps RouterDeps) {
	// Público: emisión de token y health check
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/token", authHandler.Token)

	// Todo lo demás exige api_key o Bearer token
	protected := app.Group("/", APIKeyMiddleware(deps.AuthUC))

	patientHandler := NewPatientHandler(deps.PatientUC)
	protected.Get("/get-patients", patientHandler.List)
	protected.Post("/", patientHandler.Create)
	protected.Put("/update-patient", patientHandler.Update)
	protected.Get("/get-patient-full", patientHandler.GetFull)
	protected.Get("/get-patient-id", patientHandler.GetID)

	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	protected.Post("/add-employee", employeeHandler.Add)
	protected.Get("/get-employees", employeeHandler.List)
	protected.Get("/get-doctors", employeeHandler.ListDoctors)

	serviceHandler := NewServiceHandler(deps.ServiceUC)
	protected.Get("/get-dental-services", serviceHandler.List)

	visitHandler := NewVisitHandler(deps.SaveVisit, deps.Cleanup, deps.VisitInfo)
	protected.Get("/get-visit-info", visitHandler.GetVisitInfo)
	protected.Post("/save-visit", visitHandler.SaveVisit)
	protected.Post("/cleanup-duplicates", visitHandler.CleanupDuplicates)

	paymentHandler := NewPaymentHandler(deps.Payment, deps.ReceiptPDF)
	protected.Post("/process-payment", paymentHandler.Process)
	protected.Get("/payment-receipt/:receiptId", paymentHandler.ReceiptPDF)

	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	protected.Get("/get-revenue-last-3-months", analyticsHandler.Revenue)
	protected.Get("/get-visits-by-employees", analyticsHandler.VisitsByEmployees)
}
