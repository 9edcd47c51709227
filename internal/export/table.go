// Package export renders a lead set as an HTML table, CSV text, or a
// self-contained email document. Every renderer is a pure function over an
// explicitly passed lead slice; nothing here holds pipeline state.
package export

import (
	"html"
	"strings"

	"github.com/bizleads/local-leads/internal/model"
)

// tableColumns is the shared column order for the table, CSV, and email
// renderers. The three outputs must agree on record shape.
var tableColumns = []string{"Name (Click - See Website)", "Address", "Contact", "Email", "Phone"}

// Table renders leads as an HTML table. Every field is escaped; a present
// website turns the name into a hyperlink, a present contact URL yields a
// "Contact" link, and a present email yields a mailto link. Absent fields
// render as empty cells.
func Table(leads []model.Lead) string {
	var b strings.Builder
	b.WriteString(`<table class="locallead-table"><thead><tr>`)
	for _, col := range tableColumns {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(col))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, lead := range leads {
		writeRow(&b, lead)
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func writeRow(b *strings.Builder, lead model.Lead) {
	b.WriteString("<tr><td>")
	if lead.Website != "" {
		b.WriteString(`<a href="` + html.EscapeString(lead.Website) + `" target="_blank">` +
			html.EscapeString(lead.Name) + "</a>")
	} else {
		b.WriteString(html.EscapeString(lead.Name))
	}
	b.WriteString("</td><td>")
	b.WriteString(html.EscapeString(lead.Address))
	b.WriteString("</td><td>")
	if lead.ContactURL != "" {
		b.WriteString(`<a href="` + html.EscapeString(lead.ContactURL) + `" target="_blank">Contact</a>`)
	}
	b.WriteString("</td><td>")
	if lead.Email != "" {
		b.WriteString(`<a href="mailto:` + html.EscapeString(lead.Email) + `">` +
			html.EscapeString(lead.Email) + "</a>")
	}
	b.WriteString("</td><td>")
	b.WriteString(html.EscapeString(lead.Phone))
	b.WriteString("</td></tr>")
}
