// Package pdf implementa la exportación de la ficha resumen de un tender.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Agencia  │  Referencia + Fecha de publicación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TÍTULO + Estado                                            │
//	│  DATOS GENERALES: Servicio / Ubicación / Cierre / Contacto  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESCRIPCIÓN                                                │
//	│  DETALLES: filas etiqueta/valor de los campos opcionales    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: ruta del documento adjunto (si existe)             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/hulumoya/agency-dashboard/internal/application/usecase"
	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Asegura que MarotoPDFGenerator implementa usecase.TenderPDFGenerator.
var _ usecase.TenderPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.TenderPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// TenderSummaryPDF genera la ficha del tender y devuelve sus bytes.
func (g *MarotoPDFGenerator) TenderSummaryPDF(
	_ context.Context,
	tender *entity.Tender,
	serviceBreadcrumb string,
	agency *entity.Agency,
) ([]byte, error) {
	agencyName := ""
	if agency != nil {
		agencyName = agency.CompanyName
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tender Summary", true).
		WithAuthor(nonEmpty(agencyName, "Tender Agency"), true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(tender, agencyName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(titleRow(tender))
	m.AddRows(generalRow(tender, serviceBreadcrumb))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Descripción
	for _, r := range descriptionRows(tender) {
		m.AddRows(r)
	}

	// Detalles opcionales
	if rows := detailRows(tender); len(rows) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(sectionTitleRow("ADDITIONAL DETAILS"))
		for _, r := range rows {
			m.AddRows(r)
		}
	}

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(tender))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la agencia (izq) y referencia + fecha de publicación (der).
func headerRow(tender *entity.Tender, agencyName string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(agencyName, "Tender Agency"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Tender summary sheet", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REFERENCE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(tender.ReferenceNumber, fmt.Sprintf("T-%d", tender.ID)), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Posted: "+nonEmpty(tender.DatePosted, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// titleRow: título + estado.
func titleRow(tender *entity.Tender) core.Row {
	return row.New(14).Add(
		col.New(9).Add(
			text.New(tender.Title, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New(tender.Status, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 3,
			}),
		),
	)
}

// generalRow: servicio, ubicación, cierre y contacto.
func generalRow(tender *entity.Tender, serviceBreadcrumb string) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("GENERAL INFORMATION", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Service: "+nonEmpty(serviceBreadcrumb, fmt.Sprintf("Service #%d", tender.ResolvedServiceID())), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Location: %s   |   Closing date: %s",
				nonEmpty(tender.Location, "-"),
				nonEmpty(tender.ClosingDate, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New("Contact: "+nonEmpty(tender.ContactInfo, "-"), props.Text{
				Size: 8, Top: 17, Color: colorGray,
			}),
		),
	)
}

// descriptionRows: cuerpo descriptivo, partido para que maroto lo fluya.
func descriptionRows(tender *entity.Tender) []core.Row {
	rows := []core.Row{sectionTitleRow("DESCRIPTION")}
	rows = append(rows, row.New(24).Add(col.New(12).Add(
		text.New(tender.Description, props.Text{Size: 9, Top: 1}),
	)))
	return rows
}

// detailRows: una fila etiqueta/valor por campo opcional con contenido.
func detailRows(tender *entity.Tender) []core.Row {
	fields := []struct {
		label string
		value string
	}{
		{"Notice number", tender.NoticeNumber},
		{"Product category", tender.ProductCategory},
		{"Tender type", tender.TenderType},
		{"Procurement method", tender.ProcurementMethod},
		{"Cost of tender document", tender.CostOfTenderDocument},
		{"Bid validity", tender.BidValidity},
		{"Bid security", tender.BidSecurity},
		{"Contract period", tender.ContractPeriod},
		{"Performance security", tender.PerformanceSecurity},
		{"Payment terms", tender.PaymentTerms},
		{"Key deliverables", tender.KeyDeliverables},
		{"Technical specifications", tender.TechnicalSpecifications},
	}

	rows := make([]core.Row, 0, len(fields))
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		rows = append(rows, row.New(8).Add(
			col.New(4).Add(text.New(f.label+":", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Right: 2,
			})),
			col.New(8).Add(text.New(f.value, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			})),
		))
	}
	return rows
}

// footerRow: ruta del documento adjunto o leyenda de cierre.
func footerRow(tender *entity.Tender) core.Row {
	note := "Generated from the tender agency dashboard."
	if tender.DocumentPath != "" {
		note = "Attached document: " + tender.DocumentPath
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(note, props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

func sectionTitleRow(title string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
