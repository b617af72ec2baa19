package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDealStage(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    DealStage
		wantErr error
	}{
		{name: "prospecting", raw: "prospecting", want: StageProspecting},
		{name: "qualified", raw: "qualified", want: StageQualified},
		{name: "proposal", raw: "proposal", want: StageProposal},
		{name: "negotiation", raw: "negotiation", want: StageNegotiation},
		{name: "closed_won", raw: "closed_won", want: StageClosedWon},
		{name: "closed_lost", raw: "closed_lost", want: StageClosedLost},
		{name: "unknown rejected", raw: "won", wantErr: ErrInvalidValue},
		{name: "empty rejected", raw: "", wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDealStage(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultProbability(t *testing.T) {
	tests := []struct {
		stage DealStage
		want  float64
	}{
		{StageProspecting, 0.10},
		{StageQualified, 0.25},
		{StageProposal, 0.50},
		{StageNegotiation, 0.75},
		{StageClosedWon, 1.00},
		{StageClosedLost, 0.00},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stage.DefaultProbability())
		})
	}

	assert.Equal(t, 0.0, DealStage("bogus").DefaultProbability())
}

func TestParseActivityType(t *testing.T) {
	for _, raw := range []string{"call", "email", "meeting", "demo", "follow_up"} {
		got, err := ParseActivityType(raw)
		require.NoError(t, err)
		assert.Equal(t, ActivityType(raw), got)
	}

	_, err := ParseActivityType("carrier_pigeon")
	assert.ErrorIs(t, err, ErrInvalidValue)
}
