// Package renderer turns catalog data into markdown reports for the CLI.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/stockroom"
	"github.com/etnz/stockroom/date"
)

//go:embed *.md
var templates embed.FS

// Row is the view of a single catalog record in a listing.
type Row struct {
	ID       string
	Category string
	Name     string
	Price    string
	Stock    int
	Details  string
}

// Listing holds the data rendered as a records table.
type Listing struct {
	Title string
	Rows  []Row
}

// Valuation holds the data rendered as the value report.
type Valuation struct {
	Date  date.Date
	Count int
	Total stockroom.Money
}

// Records renders catalog records as a markdown table. The date controls
// how grocery freshness is displayed.
func Records(title string, products []stockroom.Product, on date.Date, currency string) string {
	l := Listing{Title: title}
	for _, p := range products {
		l.Rows = append(l.Rows, Row{
			ID:       p.ID(),
			Category: string(p.Category()),
			Name:     p.Name(),
			Price:    p.UnitPrice().In(currency).String(),
			Stock:    p.Stock(),
			Details:  details(p, on),
		})
	}
	return renderTemplate("records", "records.md", l)
}

// Value renders the total valuation report of the catalog on a given date.
func Value(c *stockroom.Catalog, on date.Date, currency string) string {
	v := Valuation{
		Date:  on,
		Count: c.Len(),
		Total: c.TotalValue().In(currency),
	}
	return renderTemplate("value", "value.md", v)
}

// details summarizes the category-specific fields of a record.
func details(p stockroom.Product, on date.Date) string {
	switch v := p.(type) {
	case *stockroom.Electronics:
		return fmt.Sprintf("%s, %d yrs warranty", v.Brand(), v.WarrantyYears())
	case *stockroom.Grocery:
		status := "Fresh"
		if v.Expired(on) {
			status = "Expired"
		}
		return fmt.Sprintf("expires %s (%s)", v.ExpiryDate(), status)
	case *stockroom.Clothing:
		return fmt.Sprintf("size %s, %s", v.Size(), v.Material())
	default:
		return ""
	}
}

// renderTemplate is a generic utility to render one of the embedded templates.
func renderTemplate(templateName, file string, data any) string {
	content, err := templates.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
