package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizleads/local-leads/internal/model"
)

func TestCSV_Header(t *testing.T) {
	out := CSV(nil)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"Name", "Address", "Contact Page", "Email", "Phone"}, records[0])
}

func TestCSV_EveryFieldQuoted(t *testing.T) {
	lead := fullLead()
	out := CSV([]model.Lead{lead})
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\r\n")
	require.Len(t, lines, 2)

	want := `"` + strings.Join([]string{
		lead.Name, lead.Address, lead.ContactURL, lead.Email, lead.Phone,
	}, `","`) + `"`
	assert.Equal(t, want, lines[1])
}

func TestCSV_RoundTrip(t *testing.T) {
	leads := []model.Lead{
		{
			Name:    `Quote "Masters", Inc.`,
			Address: "1 Main St,\nSuite 2",
			Email:   "info@example.com",
			Phone:   `555 "ext" 12`,
		},
		{
			Name:       "Plain Co",
			Address:    "2 Oak Ave",
			ContactURL: "https://plain.example.com/contact",
		},
	}

	records, err := csv.NewReader(strings.NewReader(CSV(leads))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, `Quote "Masters", Inc.`, records[1][0])
	assert.Equal(t, "1 Main St,\nSuite 2", records[1][1])
	assert.Equal(t, "info@example.com", records[1][3])
	assert.Equal(t, `555 "ext" 12`, records[1][4])

	assert.Equal(t, "Plain Co", records[2][0])
	assert.Equal(t, "https://plain.example.com/contact", records[2][2])
	assert.Equal(t, "", records[2][3])
}

func TestEmail_SelfContainedDocument(t *testing.T) {
	out := Email([]model.Lead{fullLead()})

	assert.Contains(t, out, "<h2>Your Biz Leads Local Full Results</h2>")
	assert.Contains(t, out, `style="border-collapse: collapse;"`)
	assert.Contains(t, out, `<a href="mailto:info@alpha.example.com">`)
	assert.NotContains(t, out, "<link")
	assert.NotContains(t, out, "stylesheet")
}
