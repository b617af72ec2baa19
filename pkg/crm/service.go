package crm

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/salesdesk/internal/sqlite"
	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

// Service is the business layer over the SQLite store. All mutations go
// through Service so uniqueness, floors, referential checks, and timestamp
// maintenance are enforced in one place.
type Service struct {
	store *sqlite.Store
}

// Open opens the database described by cfg and returns a ready service.
func Open(cfg types.Config) (*Service, error) {
	store := sqlite.NewStore()
	if err := store.Open(cfg); err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return &Service{store: store}, nil
}

// Close releases the store handle. Idempotent.
func (s *Service) Close() error {
	return s.store.Close()
}

// newID generates a UUID v7 record identifier.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// NewContact carries the fields for AddContact. Zero values are the
// defaults: empty tags, status lead.
type NewContact struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Title   string
	Tags    types.TagList
	Owner   string
	Source  string
	Status  types.ContactStatus
}

// AddContact creates a contact with a fresh ID and creation timestamp.
// Returns ErrDuplicateEmail when a contact with the same email already
// exists (exact, case-sensitive match); the store is left unchanged.
func (s *Service) AddContact(nc NewContact) (*types.Contact, error) {
	if nc.Name == "" {
		return nil, fmt.Errorf("contact name must not be empty: %w", types.ErrInvalidValue)
	}
	if nc.Email == "" {
		return nil, fmt.Errorf("contact email must not be empty: %w", types.ErrInvalidValue)
	}
	status := nc.Status
	if status == "" {
		status = types.StatusLead
	}
	if !status.Valid() {
		return nil, fmt.Errorf("contact status %q: %w", status, types.ErrInvalidValue)
	}

	existing, err := s.store.GetContactByEmail(nc.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("contact with email %q already exists (id=%s): %w",
			nc.Email, existing.ID, types.ErrDuplicateEmail)
	}

	tags := nc.Tags
	if tags == nil {
		tags = types.TagList{}
	}
	contact := &types.Contact{
		ID:        newID(),
		Name:      nc.Name,
		Email:     nc.Email,
		Phone:     nc.Phone,
		Company:   nc.Company,
		Title:     nc.Title,
		Tags:      tags,
		LeadScore: 0,
		Status:    status,
		Owner:     nc.Owner,
		Source:    nc.Source,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.InsertContact(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// GetContact retrieves a contact by ID. A missing contact yields (nil, nil).
func (s *Service) GetContact(id string) (*types.Contact, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	return s.store.GetContact(id)
}

// GetContactByEmail retrieves a contact by its exact stored email.
// A missing contact yields (nil, nil).
func (s *Service) GetContactByEmail(email string) (*types.Contact, error) {
	return s.store.GetContactByEmail(email)
}

// ListContactsOptions narrows ListContacts. Zero values match everything.
type ListContactsOptions struct {
	Status types.ContactStatus
	Owner  string
	Tag    string
}

// ListContacts returns contacts matching the options. Status and owner
// filter at the SQL level; tag membership is filtered afterwards since tags
// are multi-valued. Result order is not guaranteed.
func (s *Service) ListContacts(opts ListContactsOptions) ([]*types.Contact, error) {
	if opts.Status != "" && !opts.Status.Valid() {
		return nil, fmt.Errorf("contact status %q: %w", opts.Status, types.ErrInvalidValue)
	}
	contacts, err := s.store.ListContacts(sqlite.ContactFilter{
		Status: opts.Status,
		Owner:  opts.Owner,
	})
	if err != nil {
		return nil, err
	}
	if opts.Tag == "" {
		return contacts, nil
	}
	filtered := []*types.Contact{}
	for _, c := range contacts {
		if c.Tags.Has(opts.Tag) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// UpdateContact applies a partial update. A missing contact yields
// (nil, nil); an invalid patch value fails with ErrInvalidValue before
// anything is written. Email, lead score, and created_at are not patchable.
func (s *Service) UpdateContact(id string, patch types.ContactPatch) (*types.Contact, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	contact, err := s.store.GetContact(id)
	if err != nil || contact == nil {
		return nil, err
	}
	if patch.Empty() {
		return contact, nil
	}
	patch.Apply(contact)
	if err := s.store.UpdateContactRow(contact); err != nil {
		return nil, err
	}
	return s.store.GetContact(id)
}

// UpdateLeadScore adjusts a contact's lead score by delta and returns the
// new score. The score is clamped at zero, never rejected: a large negative
// delta lands on 0. Returns ErrNotFound if the contact does not exist.
func (s *Service) UpdateLeadScore(id string, delta int) (int, error) {
	contact, err := s.store.GetContact(id)
	if err != nil {
		return 0, err
	}
	if contact == nil {
		return 0, fmt.Errorf("contact %s: %w", id, types.ErrNotFound)
	}
	contact.LeadScore = max(0, contact.LeadScore+delta)
	if err := s.store.UpdateContactRow(contact); err != nil {
		return 0, err
	}
	return contact.LeadScore, nil
}

// DeleteContact removes a contact, reporting whether a record was deleted.
// The delete does not cascade: the contact's deals and activities remain
// addressable by their own IDs.
func (s *Service) DeleteContact(id string) (bool, error) {
	if id == "" {
		return false, types.ErrInvalidID
	}
	return s.store.DeleteContact(id)
}

// NewDeal carries the fields for CreateDeal. A zero Stage defaults to
// prospecting.
type NewDeal struct {
	ContactID string
	Title     string
	Value     float64
	Stage     types.DealStage
	CloseDate *time.Time
	Notes     string
}

// CreateDeal creates a deal linked to an existing contact. The probability
// is set from the stage's canonical default. Returns ErrNotFound if the
// contact does not exist.
func (s *Service) CreateDeal(nd NewDeal) (*types.Deal, error) {
	stage := nd.Stage
	if stage == "" {
		stage = types.StageProspecting
	}
	if !stage.Valid() {
		return nil, fmt.Errorf("deal stage %q: %w", stage, types.ErrInvalidValue)
	}

	contact, err := s.store.GetContact(nd.ContactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, fmt.Errorf("contact %s: %w", nd.ContactID, types.ErrNotFound)
	}

	now := time.Now().UTC()
	deal := &types.Deal{
		ID:          newID(),
		ContactID:   nd.ContactID,
		Title:       nd.Title,
		Value:       nd.Value,
		Stage:       stage,
		Probability: stage.DefaultProbability(),
		CloseDate:   nd.CloseDate,
		Notes:       nd.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.InsertDeal(deal); err != nil {
		return nil, err
	}
	return deal, nil
}

// GetDeal retrieves a deal by ID. A missing deal yields (nil, nil).
func (s *Service) GetDeal(id string) (*types.Deal, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	return s.store.GetDeal(id)
}

// ListDealsOptions narrows ListDeals. Zero values match everything.
type ListDealsOptions struct {
	ContactID string
	Stage     types.DealStage
}

// ListDeals returns deals matching the options. Result order is not
// guaranteed.
func (s *Service) ListDeals(opts ListDealsOptions) ([]*types.Deal, error) {
	if opts.Stage != "" && !opts.Stage.Valid() {
		return nil, fmt.Errorf("deal stage %q: %w", opts.Stage, types.ErrInvalidValue)
	}
	return s.store.ListDeals(sqlite.DealFilter{
		ContactID: opts.ContactID,
		Stage:     opts.Stage,
	})
}

// AdvanceDeal moves a deal to a new stage. The probability is re-derived
// from the stage default, discarding any prior override, and updated_at is
// refreshed. A missing deal yields (nil, nil).
func (s *Service) AdvanceDeal(id string, newStage types.DealStage) (*types.Deal, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	if !newStage.Valid() {
		return nil, fmt.Errorf("deal stage %q: %w", newStage, types.ErrInvalidValue)
	}
	deal, err := s.store.GetDeal(id)
	if err != nil || deal == nil {
		return nil, err
	}
	deal.Stage = newStage
	deal.Probability = newStage.DefaultProbability()
	deal.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateDealRow(deal); err != nil {
		return nil, err
	}
	return s.store.GetDeal(id)
}

// UpdateDeal applies a partial update and refreshes updated_at on any
// accepted change. A missing deal yields (nil, nil). A probability set here
// overrides the stage default until the next AdvanceDeal.
func (s *Service) UpdateDeal(id string, patch types.DealPatch) (*types.Deal, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	deal, err := s.store.GetDeal(id)
	if err != nil || deal == nil {
		return nil, err
	}
	if patch.Empty() {
		return deal, nil
	}
	patch.Apply(deal)
	deal.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateDealRow(deal); err != nil {
		return nil, err
	}
	return s.store.GetDeal(id)
}

// NewActivity carries the fields for LogActivity.
type NewActivity struct {
	ContactID  string
	Type       types.ActivityType
	Summary    string
	Outcome    string
	NextAction string
}

// LogActivity records an interaction against a contact and stamps the
// contact's last_contact with the same timestamp. The two writes commit
// atomically; if the activity cannot be inserted the contact is untouched.
// Returns ErrNotFound if the contact does not exist.
func (s *Service) LogActivity(na NewActivity) (*types.Activity, error) {
	if !na.Type.Valid() {
		return nil, fmt.Errorf("activity type %q: %w", na.Type, types.ErrInvalidValue)
	}
	if na.Summary == "" {
		return nil, types.ErrEmptySummary
	}

	activity := &types.Activity{
		ID:         newID(),
		ContactID:  na.ContactID,
		Type:       na.Type,
		Summary:    na.Summary,
		Outcome:    na.Outcome,
		NextAction: na.NextAction,
		RecordedAt: time.Now().UTC(),
	}
	if err := s.store.InsertActivity(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// ListActivities returns a contact's activities, most recent first.
func (s *Service) ListActivities(contactID string) ([]*types.Activity, error) {
	if contactID == "" {
		return nil, types.ErrInvalidID
	}
	return s.store.ListActivities(contactID)
}
