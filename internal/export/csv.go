package export

import (
	"strings"

	"github.com/bizleads/local-leads/internal/model"
)

// csvHeader is the fixed header row of the CSV export.
const csvHeader = `"Name","Address","Contact Page","Email","Phone"`

// CSV renders leads as delimited text. Every field is double-quoted and
// embedded quotes are doubled, so parsing the output with a standard CSV
// reader reproduces the original values exactly, including embedded commas,
// quotes, and newlines.
func CSV(leads []model.Lead) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\r\n")
	for _, lead := range leads {
		fields := []string{lead.Name, lead.Address, lead.ContactURL, lead.Email, lead.Phone}
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteString("\r\n")
	}
	return b.String()
}
