package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain"
)

const CurrencySymbol = "₹"

// dateLayout is ISO-8601 in UTC with millisecond precision.
const dateLayout = "2006-01-02T15:04:05.000Z07:00"

var csvHeader = []string{
	"Order ID",
	"Date",
	"Status",
	"Name",
	"Phone",
	"WhatsApp",
	"Address",
	"City",
	"State",
	"Pincode",
	"Total",
	"Items",
}

// WriteCSV writes the header followed by one row per order, in the order
// given. Every data cell is quoted with embedded quotes doubled.
func WriteCSV(w io.Writer, orders []domain.Order) error {
	lines := make([]string, 0, len(orders)+1)
	lines = append(lines, strings.Join(csvHeader, ","))

	for _, o := range orders {
		cells := []string{
			o.OrderCode,
			o.CreatedAt.UTC().Format(dateLayout),
			string(o.Status),
			o.FullName,
			o.Phone,
			deref(o.WhatsApp),
			o.Address,
			o.City,
			o.State,
			o.Pincode,
			strconv.FormatInt(o.Total, 10),
			itemsCell(o.Items),
		}
		for i, c := range cells {
			cells[i] = quote(c)
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// Filename is the attachment name for an export taken at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("orders-%d.csv", t.UnixMilli())
}

func itemsCell(items []domain.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s ×%d (%s) - %s%d",
			item.ProductName, item.Quantity, item.Size, CurrencySymbol, item.LineTotal()))
	}
	return strings.Join(parts, "; ")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
