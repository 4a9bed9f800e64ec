// Package pdf genera el recibo de pago imprimible que el frontend descarga
// desde GET /payment-receipt/:receiptId.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Nombre de la clínica │ N° recibo      │
//	│  ───────────────────────────────────────────  │
//	│  Paciente / Doctor / Fecha de visita           │
//	│  ───────────────────────────────────────────  │
//	│  Método de pago │ IMPORTE                      │
//	│  ───────────────────────────────────────────  │
//	│  Fecha de emisión + código QR del recibo       │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/clinident/clinica-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator implementa payments.PDFGenerator usando Maroto v2.
type ReceiptGenerator struct {
	clinicName string
	printer    *message.Printer
}

// NewReceiptGenerator construye el generador. El nombre de la clínica sale
// de la configuración (APP_NAME) y locale controla el formato numérico.
func NewReceiptGenerator(clinicName, locale string) *ReceiptGenerator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Russian
	}
	return &ReceiptGenerator{
		clinicName: clinicName,
		printer:    message.NewPrinter(tag),
	}
}

// ReceiptPDF genera el recibo y devuelve sus bytes.
func (g *ReceiptGenerator) ReceiptPDF(d *repository.ReceiptDetails) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo "+d.Number, true).
		WithAuthor(g.clinicName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.visitRows(d)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.amountRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.footerRow(d))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la clínica (izq) y número de recibo (der).
func (g *ReceiptGenerator) headerRow(d *repository.ReceiptDetails) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.clinicName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+d.Number, props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// visitRows: paciente, doctor y fecha de la visita.
func (g *ReceiptGenerator) visitRows(d *repository.ReceiptDetails) []core.Row {
	label := props.Text{Size: 8, Color: colorGray, Top: 1}
	value := props.Text{Size: 10, Top: 5}
	return []core.Row{
		row.New(12).Add(
			col.New(6).Add(
				text.New("Paciente", label),
				text.New(d.PatientName, value),
			),
			col.New(6).Add(
				text.New("Doctor", label),
				text.New(d.DoctorName, value),
			),
		),
		row.New(12).Add(
			col.New(6).Add(
				text.New("Fecha de visita", label),
				text.New(d.VisitDate.Format("02.01.2006"), value),
			),
			col.New(6).Add(
				text.New("Visita", label),
				text.New(fmt.Sprintf("#%d", d.VisitID), value),
			),
		),
	}
}

// amountRow: método de pago e importe, el dato central del recibo.
func (g *ReceiptGenerator) amountRow(d *repository.ReceiptDetails) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Método de pago", props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(d.Method, props.Text{Size: 10, Top: 5}),
		),
		col.New(6).Add(
			text.New("IMPORTE", props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 1,
			}),
			text.New(g.money(d.Amount), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right,
				Color: colorPrimary, Top: 5,
			}),
		),
	)
}

// footerRow: fecha de emisión y código QR con el número del recibo.
func (g *ReceiptGenerator) footerRow(d *repository.ReceiptDetails) core.Row {
	return row.New(24).Add(
		col.New(8).Add(
			text.New("Emitido el "+d.CreatedOn.Format("02.01.2006"), props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		),
		col.New(4).Add(
			code.NewQr(d.Number, props.Rect{Center: true, Percent: 90}),
		),
	)
}

// money formatea el importe con separadores de miles del locale configurado.
func (g *ReceiptGenerator) money(amount decimal.Decimal) string {
	return g.printer.Sprintf("%.2f", amount.InexactFloat64())
}
