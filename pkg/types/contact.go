package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// ContactStatus is a contact's position in the sales funnel.
type ContactStatus string

// Contact statuses. A contact normally progresses lead → prospect →
// customer; churned is the terminal off-ramp.
const (
	StatusLead     ContactStatus = "lead"
	StatusProspect ContactStatus = "prospect"
	StatusCustomer ContactStatus = "customer"
	StatusChurned  ContactStatus = "churned"
)

// validContactStatuses is the set of recognized status values.
var validContactStatuses = map[ContactStatus]bool{
	StatusLead:     true,
	StatusProspect: true,
	StatusCustomer: true,
	StatusChurned:  true,
}

// ParseContactStatus normalizes a raw string to a ContactStatus.
// Returns ErrInvalidValue for unrecognized values.
func ParseContactStatus(s string) (ContactStatus, error) {
	status := ContactStatus(s)
	if !validContactStatuses[status] {
		return "", fmt.Errorf("contact status %q: %w", s, ErrInvalidValue)
	}
	return status, nil
}

// Valid reports whether the status is one of the recognized values.
func (s ContactStatus) Valid() bool {
	return validContactStatuses[s]
}

// TagList is an ordered collection of free-form tags. Duplicates are allowed;
// order is preserved through persistence.
type TagList []string

// Has reports whether the list contains the given tag.
func (t TagList) Has(tag string) bool {
	for _, v := range t {
		if v == tag {
			return true
		}
	}
	return false
}

// Encode serializes the list to its persisted string form.
// An empty or nil list encodes as "[]".
func (t TagList) Encode() (string, error) {
	if t == nil {
		t = TagList{}
	}
	data, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("encoding tags: %w", err)
	}
	return string(data), nil
}

// DecodeTags parses the persisted string form produced by Encode.
// Round-trips with Encode: DecodeTags(t.Encode()) == t.
func DecodeTags(s string) (TagList, error) {
	if s == "" {
		return TagList{}, nil
	}
	var t TagList
	if err := json.Unmarshal([]byte(s), &t); err != nil {
		return nil, fmt.Errorf("decoding tags %q: %w", s, err)
	}
	if t == nil {
		t = TagList{}
	}
	return t, nil
}

// Contact is a lead or customer record and the aggregate root; deals and
// activities reference it by ID. The email is globally unique; the
// lead score is never negative; created_at is immutable and last_contact is
// set each time an activity is logged against the contact.
type Contact struct {
	ID          string        `json:"id"` // UUID, generated on creation.
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Company     string        `json:"company"`
	Title       string        `json:"title"`
	Tags        TagList       `json:"tags"`
	LeadScore   int           `json:"lead_score"`
	Status      ContactStatus `json:"status"`
	Owner       string        `json:"owner"`
	Source      string        `json:"source"`
	CreatedAt   time.Time     `json:"created_at"`
	LastContact *time.Time    `json:"last_contact"`
}
