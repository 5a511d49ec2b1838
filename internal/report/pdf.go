package report

import (
	"bytes"
	"fmt"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	"github.com/jung-kurt/gofpdf"
)

// Letter-page layout in points. The cursor starts just under the top edge
// and a new page begins once it crosses the bottom margin.
const (
	pdfLeftMargin   = 50.0
	pdfTopStart     = 42.0
	pdfLineHeight   = 15.0
	pdfBottomMargin = 50.0
	pdfTitleGap     = 30.0
)

const pdfTitle = "ByteBite Orders Report"

// PDF renders a paginated order report: a bold title on the first page,
// then one 10pt line per order in the form
// "#<id>: <customer> - <items> - <currency><total>".
func (e *Exporter) PDF(orders []models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	_, pageHeight := pdf.GetPageSize()
	bottom := pageHeight - pdfBottomMargin

	y := pdfTopStart
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(pdfLeftMargin, y, tr(pdfTitle))
	y += pdfTitleGap

	pdf.SetFont("Helvetica", "", 10)
	for _, o := range orders {
		line := fmt.Sprintf("#%d: %s - %s - %s%s",
			o.ID, o.Customer, joinLines(o.Lines, ", "), e.currency, o.Total.StringFixed(2))
		pdf.Text(pdfLeftMargin, y, tr(line))
		y += pdfLineHeight
		if y > bottom {
			pdf.AddPage()
			y = pdfTopStart
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
