package crm

import (
	"math"

	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

// defaultTopLimit bounds TopContactsByScore when the caller passes no limit.
const defaultTopLimit = 10

// PipelineValue reports total and probability-weighted deal value per stage
// plus grand totals. Weighted figures use each deal's stored probability,
// so an override made through UpdateDeal is reflected as-is.
func (s *Service) PipelineValue() (*types.PipelineReport, error) {
	aggs, err := s.store.PipelineByStage()
	if err != nil {
		return nil, err
	}

	report := &types.PipelineReport{
		ByStage: make(map[types.DealStage]types.StageMetrics, len(aggs)),
	}
	var total, weighted float64
	for _, a := range aggs {
		report.ByStage[a.Stage] = types.StageMetrics{
			Total:    round2(a.Total),
			Weighted: round2(a.Weighted),
			Count:    a.Count,
		}
		total += a.Total
		weighted += a.Weighted
	}
	report.TotalPipeline = round2(total)
	report.WeightedPipeline = round2(weighted)
	return report, nil
}

// ConversionFunnel reports contact counts per status and the lead→prospect,
// prospect→customer, and overall conversion rates. A rate with a zero
// denominator is 0, not an error.
func (s *Service) ConversionFunnel() (*types.FunnelReport, error) {
	counts, err := s.store.ContactStatusCounts()
	if err != nil {
		return nil, err
	}

	lead := counts[types.StatusLead]
	prospect := counts[types.StatusProspect]
	customer := counts[types.StatusCustomer]
	churned := counts[types.StatusChurned]
	total := lead + prospect + customer + churned

	return &types.FunnelReport{
		TotalContacts:          total,
		Lead:                   lead,
		Prospect:               prospect,
		Customer:               customer,
		Churned:                churned,
		LeadToProspectRate:     ratio(prospect, lead),
		ProspectToCustomerRate: ratio(customer, prospect),
		OverallConversionRate:  ratio(customer, total),
	}, nil
}

// DealWinRate reports closed deal counts and won/(won+lost), 0 when no
// deals have closed.
func (s *Service) DealWinRate() (*types.WinRateReport, error) {
	won, lost, err := s.store.ClosedDealCounts()
	if err != nil {
		return nil, err
	}
	return &types.WinRateReport{
		ClosedWon:  won,
		ClosedLost: lost,
		WinRate:    ratio(won, won+lost),
	}, nil
}

// TopContactsByScore returns up to limit contacts ordered by lead score
// descending. Ties break in unspecified order; a limit of zero or less
// means the default of 10.
func (s *Service) TopContactsByScore(limit int) ([]*types.Contact, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.store.TopContactsByScore(limit)
}

// ActivitySummary counts activities grouped by type.
func (s *Service) ActivitySummary() (map[types.ActivityType]int, error) {
	return s.store.ActivityTypeCounts()
}

// ratio divides num by den rounded to 3 decimal places, 0 when den is 0.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return round3(float64(num) / float64(den))
}

// round2 rounds currency aggregates to cents.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round3 rounds rates to 3 decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
