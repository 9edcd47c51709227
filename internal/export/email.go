package export

import (
	"html"
	"strings"

	"github.com/bizleads/local-leads/internal/model"
)

// EmailSubject is the default subject for full-result mails.
const EmailSubject = "Your Biz Leads Local Full Results"

// Email renders leads as a self-contained HTML document suitable for an
// outbound mail body. All styling is inline since mail clients strip
// external stylesheets.
func Email(leads []model.Lead) string {
	var b strings.Builder
	b.WriteString("<h2>")
	b.WriteString(html.EscapeString(EmailSubject))
	b.WriteString("</h2>")
	b.WriteString(`<table border="1" cellpadding="5" cellspacing="0" style="border-collapse: collapse;"><thead><tr>`)
	for _, col := range []string{"Name", "Address", "Contact", "Email", "Phone"} {
		b.WriteString("<th>")
		b.WriteString(col)
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, lead := range leads {
		writeRow(&b, lead)
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
