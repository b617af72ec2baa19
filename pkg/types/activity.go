package types

import (
	"fmt"
	"time"
)

// ActivityType classifies a logged interaction.
type ActivityType string

// Activity types.
const (
	ActivityCall     ActivityType = "call"
	ActivityEmail    ActivityType = "email"
	ActivityMeeting  ActivityType = "meeting"
	ActivityDemo     ActivityType = "demo"
	ActivityFollowUp ActivityType = "follow_up"
)

// validActivityTypes is the set of recognized activity type values.
var validActivityTypes = map[ActivityType]bool{
	ActivityCall:     true,
	ActivityEmail:    true,
	ActivityMeeting:  true,
	ActivityDemo:     true,
	ActivityFollowUp: true,
}

// ParseActivityType normalizes a raw string to an ActivityType.
// Returns ErrInvalidValue for unrecognized values.
func ParseActivityType(s string) (ActivityType, error) {
	typ := ActivityType(s)
	if !validActivityTypes[typ] {
		return "", fmt.Errorf("activity type %q: %w", s, ErrInvalidValue)
	}
	return typ, nil
}

// Valid reports whether the type is one of the recognized values.
func (t ActivityType) Valid() bool {
	return validActivityTypes[t]
}

// Activity is an interaction logged against a contact. Activities are
// append-only; there is no update or delete.
type Activity struct {
	ID         string       `json:"id"`         // UUID, generated on creation.
	ContactID  string       `json:"contact_id"` // Must reference an existing contact.
	Type       ActivityType `json:"type"`
	Summary    string       `json:"summary"` // Required.
	Outcome    string       `json:"outcome"`
	NextAction string       `json:"next_action"`
	RecordedAt time.Time    `json:"recorded_at"` // Immutable; mirrored to the contact's last_contact.
}
