package crm

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

func TestExportContactsCSV(t *testing.T) {
	svc := setupService(t)
	_, err := svc.AddContact(NewContact{
		Name:  "Alice",
		Email: "alice@acme.com",
		Tags:  types.TagList{"enterprise", "priority"},
	})
	require.NoError(t, err)

	out, err := svc.ExportContacts(FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, contactCSVHeader, records[0])

	row := records[1]
	assert.Equal(t, "Alice", row[1])
	assert.Equal(t, "alice@acme.com", row[2])
	assert.Equal(t, "enterprise|priority", row[6], "tags join with a pipe")
	assert.Equal(t, "0", row[7])
	assert.Equal(t, "lead", row[8])
	assert.Equal(t, "", row[12], "unset last_contact is an empty cell")
}

func TestExportContactsJSONRoundTrip(t *testing.T) {
	svc := setupService(t)

	emails := []string{"alice@acme.com", "bob@startup.io", "carol@somewhere.net"}
	for _, email := range emails {
		_, err := svc.AddContact(NewContact{Name: email, Email: email})
		require.NoError(t, err)
	}

	out, err := svc.ExportContacts(FormatJSON)
	require.NoError(t, err)

	var decoded []types.Contact
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, len(emails))

	// Every stored contact comes back, keyed by email.
	got := make(map[string]bool, len(decoded))
	for _, c := range decoded {
		got[c.Email] = true
	}
	for _, email := range emails {
		assert.True(t, got[email], "export is missing %s", email)
	}
}

func TestExportDealsCSV(t *testing.T) {
	svc := setupService(t)
	contact, err := svc.AddContact(NewContact{Name: "Alice", Email: "alice@acme.com"})
	require.NoError(t, err)
	_, err = svc.CreateDeal(NewDeal{
		ContactID: contact.ID,
		Title:     "Enterprise License",
		Value:     150_000,
		Stage:     types.StageQualified,
		Notes:     "multi-year",
	})
	require.NoError(t, err)

	out, err := svc.ExportDeals(FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, dealCSVHeader, records[0])

	row := records[1]
	assert.Equal(t, contact.ID, row[1])
	assert.Equal(t, "Enterprise License", row[2])
	assert.Equal(t, "150000", row[3])
	assert.Equal(t, "qualified", row[4])
	assert.Equal(t, "0.25", row[5])
	assert.Equal(t, "", row[6], "unset close_date is an empty cell")
	assert.Equal(t, "multi-year", row[7])
}

func TestExportDealsJSON(t *testing.T) {
	svc := setupService(t)
	contact, err := svc.AddContact(NewContact{Name: "Alice", Email: "alice@acme.com"})
	require.NoError(t, err)
	_, err = svc.CreateDeal(NewDeal{ContactID: contact.ID, Title: "Deal", Value: 42})
	require.NoError(t, err)

	out, err := svc.ExportDeals(FormatJSON)
	require.NoError(t, err)

	var decoded []types.Deal
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Deal", decoded[0].Title)
	assert.Equal(t, 42.0, decoded[0].Value)
	assert.Nil(t, decoded[0].CloseDate)
}

func TestExportEmptyJSONIsArray(t *testing.T) {
	svc := setupService(t)

	out, err := svc.ExportContacts(FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "[]", out, "an empty export is an empty array, not null")

	out, err = svc.ExportDeals(FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestExportUnknownFormat(t *testing.T) {
	svc := setupService(t)

	_, err := svc.ExportContacts("xml")
	assert.ErrorIs(t, err, types.ErrInvalidValue)

	_, err = svc.ExportDeals("yaml")
	assert.ErrorIs(t, err, types.ErrInvalidValue)
}
