package types

// StageMetrics aggregates the deals sitting in one stage.
type StageMetrics struct {
	Total    float64 `json:"total"`    // Sum of deal values.
	Weighted float64 `json:"weighted"` // Sum of value × stored probability.
	Count    int     `json:"count"`
}

// PipelineReport is the per-stage and overall pipeline value breakdown.
// Weighted figures use each deal's stored probability, which may have been
// overridden away from the stage default.
type PipelineReport struct {
	ByStage          map[DealStage]StageMetrics `json:"by_stage"`
	TotalPipeline    float64                    `json:"total_pipeline"`
	WeightedPipeline float64                    `json:"weighted_pipeline"`
}

// FunnelReport counts contacts per status and derives conversion rates.
// A rate whose denominator is zero is reported as 0.
type FunnelReport struct {
	TotalContacts          int     `json:"total_contacts"`
	Lead                   int     `json:"lead"`
	Prospect               int     `json:"prospect"`
	Customer               int     `json:"customer"`
	Churned                int     `json:"churned"`
	LeadToProspectRate     float64 `json:"lead_to_prospect_rate"`
	ProspectToCustomerRate float64 `json:"prospect_to_customer_rate"`
	OverallConversionRate  float64 `json:"overall_conversion_rate"`
}

// WinRateReport counts closed deals and derives the win rate, reported as 0
// when no deals have closed.
type WinRateReport struct {
	ClosedWon  int     `json:"closed_won"`
	ClosedLost int     `json:"closed_lost"`
	WinRate    float64 `json:"win_rate"`
}
