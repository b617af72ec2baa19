package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactPatchApply(t *testing.T) {
	created := time.Now().UTC()
	contact := &Contact{
		ID:        "c-1",
		Name:      "Alice",
		Email:     "alice@acme.com",
		Status:    StatusLead,
		Tags:      TagList{"enterprise"},
		CreatedAt: created,
	}

	name := "Alice Johnson"
	status := StatusProspect
	tags := TagList{"enterprise", "priority"}
	patch := ContactPatch{Name: &name, Status: &status, Tags: &tags}

	require.NoError(t, patch.Validate())
	assert.False(t, patch.Empty())
	patch.Apply(contact)

	assert.Equal(t, "Alice Johnson", contact.Name)
	assert.Equal(t, StatusProspect, contact.Status)
	assert.Equal(t, tags, contact.Tags)
	// Untouched fields survive.
	assert.Equal(t, "alice@acme.com", contact.Email)
	assert.Equal(t, created, contact.CreatedAt)
}

func TestContactPatchEmpty(t *testing.T) {
	assert.True(t, ContactPatch{}.Empty())

	owner := "pat"
	assert.False(t, ContactPatch{Owner: &owner}.Empty())
}

func TestContactPatchValidate(t *testing.T) {
	bad := ContactStatus("archived")
	err := ContactPatch{Status: &bad}.Validate()
	assert.ErrorIs(t, err, ErrInvalidValue)

	good := StatusCustomer
	assert.NoError(t, ContactPatch{Status: &good}.Validate())
}

func TestDealPatchValidate(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		wantErr     bool
	}{
		{name: "zero", probability: 0},
		{name: "middle", probability: 0.4},
		{name: "one", probability: 1},
		{name: "negative rejected", probability: -0.1, wantErr: true},
		{name: "above one rejected", probability: 1.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.probability
			err := DealPatch{Probability: &p}.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValue)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDealPatchApply(t *testing.T) {
	deal := &Deal{
		ID:          "d-1",
		Title:       "License",
		Value:       1000,
		Stage:       StageQualified,
		Probability: 0.25,
	}

	value := 2500.0
	probability := 0.6
	patch := DealPatch{Value: &value, Probability: &probability}
	patch.Apply(deal)

	assert.Equal(t, 2500.0, deal.Value)
	assert.Equal(t, 0.6, deal.Probability)
	// Stage is not patchable.
	assert.Equal(t, StageQualified, deal.Stage)
}

func TestConfigValidate(t *testing.T) {
	assert.ErrorIs(t, Config{}.Validate(), ErrDBPathEmpty)
	assert.NoError(t, Config{DBPath: "crm.db"}.Validate())
}
