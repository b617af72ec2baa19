package crm

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// contactCSVHeader is the fixed contact export column order.
var contactCSVHeader = []string{
	"id", "name", "email", "phone", "company", "title",
	"tags", "lead_score", "status", "owner", "source",
	"created_at", "last_contact",
}

// dealCSVHeader is the fixed deal export column order.
var dealCSVHeader = []string{
	"id", "contact_id", "title", "value", "stage",
	"probability", "close_date", "notes", "created_at", "updated_at",
}

// ExportContacts serializes every contact to the given format. CSV renders
// tags as a pipe-joined string and a missing last_contact as an empty field;
// JSON renders tags as an array and missing timestamps as null.
func (s *Service) ExportContacts(format string) (string, error) {
	contacts, err := s.ListContacts(ListContactsOptions{})
	if err != nil {
		return "", err
	}

	switch format {
	case FormatJSON:
		return marshalExport(contacts)
	case FormatCSV:
		var sb strings.Builder
		w := csv.NewWriter(&sb)
		if err := w.Write(contactCSVHeader); err != nil {
			return "", fmt.Errorf("writing contact header: %w", err)
		}
		for _, c := range contacts {
			row := []string{
				c.ID, c.Name, c.Email, c.Phone, c.Company, c.Title,
				strings.Join(c.Tags, "|"), strconv.Itoa(c.LeadScore),
				string(c.Status), c.Owner, c.Source,
				timeField(c.CreatedAt), optTimeField(c.LastContact),
			}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("writing contact row: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return "", fmt.Errorf("flushing contact export: %w", err)
		}
		return sb.String(), nil
	default:
		return "", fmt.Errorf("export format %q: %w", format, types.ErrInvalidValue)
	}
}

// ExportDeals serializes every deal to the given format.
func (s *Service) ExportDeals(format string) (string, error) {
	deals, err := s.ListDeals(ListDealsOptions{})
	if err != nil {
		return "", err
	}

	switch format {
	case FormatJSON:
		return marshalExport(deals)
	case FormatCSV:
		var sb strings.Builder
		w := csv.NewWriter(&sb)
		if err := w.Write(dealCSVHeader); err != nil {
			return "", fmt.Errorf("writing deal header: %w", err)
		}
		for _, d := range deals {
			row := []string{
				d.ID, d.ContactID, d.Title, floatField(d.Value),
				string(d.Stage), floatField(d.Probability),
				optTimeField(d.CloseDate), d.Notes,
				timeField(d.CreatedAt), timeField(d.UpdatedAt),
			}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("writing deal row: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return "", fmt.Errorf("flushing deal export: %w", err)
		}
		return sb.String(), nil
	default:
		return "", fmt.Errorf("export format %q: %w", format, types.ErrInvalidValue)
	}
}

// marshalExport renders records as an indented JSON array. An empty listing
// exports as [], never null.
func marshalExport[T any](records []T) (string, error) {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling export: %w", err)
	}
	return string(data), nil
}

// timeField renders a timestamp for a CSV cell.
func timeField(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// optTimeField renders an optional timestamp, empty when unset.
func optTimeField(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeField(*t)
}

// floatField renders a numeric value without trailing zeros.
func floatField(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
