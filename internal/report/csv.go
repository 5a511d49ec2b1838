// Package report serializes the order ledger into the two admin export
// formats: a CSV table and a paginated PDF document.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

// DateFormat is the layout used for order timestamps in exports.
const DateFormat = "02-01-2006 15:04"

// DefaultCurrency prefixes totals in the PDF report.
const DefaultCurrency = "₹"

// Exporter renders orders into export formats. The zero value is not usable;
// construct with NewExporter.
type Exporter struct {
	currency string
}

// NewExporter creates an exporter. An empty currency falls back to
// DefaultCurrency.
func NewExporter(currency string) *Exporter {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Exporter{currency: currency}
}

// CSV renders one row per order under a header row. Line items are joined
// with "; " as NamexQty; totals carry exactly two decimal places.
func (e *Exporter) CSV(orders []models.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Order ID", "Customer", "Type", "Items", "Total", "Date"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, o := range orders {
		row := []string{
			fmt.Sprintf("%d", o.ID),
			o.Customer,
			customerType(o),
			joinLines(o.Lines, "; "),
			o.Total.StringFixed(2),
			o.PlacedAt.Format(DateFormat),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row for order %d: %w", o.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func customerType(o models.Order) string {
	if o.IsTeacher {
		return "Teacher"
	}
	return "Student"
}

func joinLines(lines []models.OrderLine, sep string) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = fmt.Sprintf("%sx%d", line.Name, line.Quantity)
	}
	return strings.Join(parts, sep)
}
