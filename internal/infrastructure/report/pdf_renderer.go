// Package report renders valuation records as PDF documents.
package report

import (
	"bytes"
	"fmt"
	"time"

	"valuation_report/internal/domain/calculator"
	"valuation_report/internal/domain/entities"
	"valuation_report/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 15.0
	lineHeight = 7.0
	labelWidth = 60.0
)

type section struct {
	title string
	rows  [][2]string
}

var clientSection = []struct{ label, key string }{
	{"Client name", entities.FieldClientName},
	{"Mobile", entities.FieldClientMobile},
	{"Email", entities.FieldClientEmail},
	{"Address", entities.FieldClientAddress},
	{"Bank", entities.FieldBank},
	{"City", entities.FieldCity},
	{"DSA", entities.FieldDSA},
	{"Engineer", entities.FieldEngineer},
}

var propertySection = []struct{ label, key string }{
	{"Property type", entities.FieldPropertyType},
	{"Inspection date", entities.FieldInspectionDate},
	{"Latitude", entities.FieldLatitude},
	{"Longitude", entities.FieldLongitude},
	{"Directions", entities.FieldDirectionNotes},
	{"Notes", entities.FieldNotes},
}

var aggregateLabels = map[string]string{
	entities.FieldFairMarketValue: "Fair market value",
	entities.FieldRealizableValue: "Realizable value (90%)",
	entities.FieldDistressValue:   "Distress value (80%)",
	entities.FieldInsurableValue:  "Insurable value (35%)",
}

// PDFRenderer lays out a valuation on A4 pages with the core Helvetica font.
type PDFRenderer struct {
	title string
}

var _ interfaces.IReportRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer(title string) *PDFRenderer {
	if title == "" {
		title = "Property Valuation Report"
	}
	return &PDFRenderer{title: title}
}

func (r *PDFRenderer) Generate(record entities.ValuationRecord) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(r.title, true)
	pdf.SetCreator("valuation-report", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-pageMargin)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Valuation %s - page %d", record.ID, pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(r.title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Reference %s | Status %s | Last updated by %s (%s) on %s",
		record.ID, record.Status, record.LastUpdatedBy, record.LastUpdatedByRole, formatDate(record.LastUpdatedAt))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, s := range sections(record) {
		writeSection(pdf, tr, s)
	}
	writeLineItems(pdf, tr, record)
	writeSection(pdf, tr, aggregatesSection(record))

	if record.ManagerFeedback != "" {
		heading(pdf, tr, "Manager feedback")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, lineHeight-1, tr(record.ManagerFeedback), "", "L", false)
		pdf.Ln(3)
	}
	writeSection(pdf, tr, attachmentsSection(record))

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sections(record entities.ValuationRecord) []section {
	build := func(title string, defs []struct{ label, key string }) section {
		s := section{title: title}
		for _, d := range defs {
			s.rows = append(s.rows, [2]string{d.label, dash(record.Field(d.key))})
		}
		return s
	}
	return []section{
		build("Client details", clientSection),
		build("Property details", propertySection),
	}
}

func aggregatesSection(record entities.ValuationRecord) section {
	s := section{title: "Valuation summary"}
	s.rows = append(s.rows, [2]string{"Total of line items", dash(formatTotal(record))})
	for _, key := range entities.AggregateKeys {
		s.rows = append(s.rows, [2]string{aggregateLabels[key], dash(record.Field(key))})
	}
	return s
}

func attachmentsSection(record entities.ValuationRecord) section {
	s := section{title: "Attachments"}
	for _, category := range entities.AttachmentCategories {
		for _, p := range record.PersistedAttachments(category) {
			s.rows = append(s.rows, [2]string{string(category), p.Name + "  " + p.URL})
		}
	}
	if len(s.rows) == 0 {
		s.rows = append(s.rows, [2]string{"None", "-"})
	}
	return s
}

func heading(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(230, 236, 245)
	pdf.CellFormat(0, lineHeight+1, tr(title), "", 1, "L", true, 0, "")
	pdf.Ln(1)
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, s section) {
	heading(pdf, tr, s.title)
	for _, row := range s.rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelWidth, lineHeight, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, lineHeight, tr(row[1]), "", "L", false)
	}
	pdf.Ln(3)
}

func writeLineItems(pdf *fpdf.Fpdf, tr func(string) string, record entities.ValuationRecord) {
	heading(pdf, tr, "Line items")
	widths := []float64{60, 40, 40, 40}
	headers := []string{"Item", "Quantity", "Rate", "Estimated value"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], lineHeight, tr(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range entities.LineItems {
		cells := []string{
			it.Label,
			dash(record.Field(it.QuantityKey)),
			dash(record.Field(it.RateKey)),
			dash(record.Field(it.DerivedKey)),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], lineHeight, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)
}

func formatTotal(record entities.ValuationRecord) string {
	total := calculator.Total(record)
	if total.IsZero() {
		return ""
	}
	return total.String()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("02 Jan 2006 15:04 MST")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
