package types

import (
	"fmt"
	"time"
)

// DealStage is a deal's position in the sales process.
type DealStage string

// Deal stages in pipeline order. closed_won and closed_lost are terminal.
const (
	StageProspecting DealStage = "prospecting"
	StageQualified   DealStage = "qualified"
	StageProposal    DealStage = "proposal"
	StageNegotiation DealStage = "negotiation"
	StageClosedWon   DealStage = "closed_won"
	StageClosedLost  DealStage = "closed_lost"
)

// stageProbabilities maps each stage to its canonical win probability.
// Applied on deal creation and on every stage transition; a probability
// override via UpdateDeal persists only until the next transition.
var stageProbabilities = map[DealStage]float64{
	StageProspecting: 0.10,
	StageQualified:   0.25,
	StageProposal:    0.50,
	StageNegotiation: 0.75,
	StageClosedWon:   1.00,
	StageClosedLost:  0.00,
}

// ParseDealStage normalizes a raw string to a DealStage.
// Returns ErrInvalidValue for unrecognized values.
func ParseDealStage(s string) (DealStage, error) {
	stage := DealStage(s)
	if _, ok := stageProbabilities[stage]; !ok {
		return "", fmt.Errorf("deal stage %q: %w", s, ErrInvalidValue)
	}
	return stage, nil
}

// Valid reports whether the stage is one of the recognized values.
func (s DealStage) Valid() bool {
	_, ok := stageProbabilities[s]
	return ok
}

// DefaultProbability returns the canonical win probability for the stage.
// Unrecognized stages return 0.
func (s DealStage) DefaultProbability() float64 {
	return stageProbabilities[s]
}

// Deal is a sales opportunity attached to a contact.
type Deal struct {
	ID          string     `json:"id"`         // UUID, generated on creation.
	ContactID   string     `json:"contact_id"` // Must reference an existing contact.
	Title       string     `json:"title"`
	Value       float64    `json:"value"` // Currency amount.
	Stage       DealStage  `json:"stage"`
	Probability float64    `json:"probability"` // 0.0–1.0.
	CloseDate   *time.Time `json:"close_date"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"` // Immutable after creation.
	UpdatedAt   time.Time  `json:"updated_at"` // Refreshed on every mutation.
}
