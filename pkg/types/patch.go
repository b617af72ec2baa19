package types

import (
	"fmt"
	"time"
)

// ContactPatch is a partial update for a contact. Nil fields are left
// unchanged. The field set is the full allow-list for contact updates;
// email, lead score, and created_at are not patchable.
type ContactPatch struct {
	Name        *string
	Phone       *string
	Company     *string
	Title       *string
	Tags        *TagList
	Owner       *string
	Source      *string
	Status      *ContactStatus
	LastContact *time.Time
}

// Empty reports whether the patch changes nothing.
func (p ContactPatch) Empty() bool {
	return p.Name == nil && p.Phone == nil && p.Company == nil &&
		p.Title == nil && p.Tags == nil && p.Owner == nil &&
		p.Source == nil && p.Status == nil && p.LastContact == nil
}

// Validate checks that all set fields carry recognized values.
func (p ContactPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("contact status %q: %w", *p.Status, ErrInvalidValue)
	}
	return nil
}

// Apply copies the set fields onto the contact.
func (p ContactPatch) Apply(c *Contact) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
	if p.Owner != nil {
		c.Owner = *p.Owner
	}
	if p.Source != nil {
		c.Source = *p.Source
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.LastContact != nil {
		c.LastContact = p.LastContact
	}
}

// DealPatch is a partial update for a deal. Nil fields are left unchanged.
// The stage is not patchable; stage transitions go through AdvanceDeal so
// the probability is re-derived. An explicit Probability here overrides the
// stage default until the next transition.
type DealPatch struct {
	Title       *string
	Value       *float64
	CloseDate   *time.Time
	Notes       *string
	Probability *float64
}

// Empty reports whether the patch changes nothing.
func (p DealPatch) Empty() bool {
	return p.Title == nil && p.Value == nil && p.CloseDate == nil &&
		p.Notes == nil && p.Probability == nil
}

// Validate checks that all set fields carry recognized values.
func (p DealPatch) Validate() error {
	if p.Probability != nil && (*p.Probability < 0 || *p.Probability > 1) {
		return fmt.Errorf("probability %v out of range [0, 1]: %w", *p.Probability, ErrInvalidValue)
	}
	return nil
}

// Apply copies the set fields onto the deal. The caller refreshes UpdatedAt.
func (p DealPatch) Apply(d *Deal) {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Value != nil {
		d.Value = *p.Value
	}
	if p.CloseDate != nil {
		d.CloseDate = p.CloseDate
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
	if p.Probability != nil {
		d.Probability = *p.Probability
	}
}
