package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

func TestPipelineValue(t *testing.T) {
	svc := setupService(t)
	contact, err := svc.AddContact(NewContact{Name: "Alice", Email: "alice@acme.com"})
	require.NoError(t, err)

	_, err = svc.CreateDeal(NewDeal{
		ContactID: contact.ID, Title: "Open", Value: 100_000,
		Stage: types.StageProspecting,
	})
	require.NoError(t, err)
	_, err = svc.CreateDeal(NewDeal{
		ContactID: contact.ID, Title: "Won", Value: 50_000,
		Stage: types.StageClosedWon,
	})
	require.NoError(t, err)

	report, err := svc.PipelineValue()
	require.NoError(t, err)

	assert.Equal(t, 150_000.0, report.TotalPipeline)
	assert.Equal(t, 60_000.0, report.WeightedPipeline, "100k at 0.10 plus 50k at 1.00")

	prospecting := report.ByStage[types.StageProspecting]
	assert.Equal(t, 100_000.0, prospecting.Total)
	assert.Equal(t, 10_000.0, prospecting.Weighted)
	assert.Equal(t, 1, prospecting.Count)

	won := report.ByStage[types.StageClosedWon]
	assert.Equal(t, 50_000.0, won.Total)
	assert.Equal(t, 50_000.0, won.Weighted)
}

func TestPipelineValueEmpty(t *testing.T) {
	svc := setupService(t)

	report, err := svc.PipelineValue()
	require.NoError(t, err)
	assert.Zero(t, report.TotalPipeline)
	assert.Zero(t, report.WeightedPipeline)
	assert.Empty(t, report.ByStage)
}

func TestPipelineValueUsesStoredProbability(t *testing.T) {
	svc := setupService(t)
	contact, err := svc.AddContact(NewContact{Name: "Alice", Email: "alice@acme.com"})
	require.NoError(t, err)
	deal, err := svc.CreateDeal(NewDeal{
		ContactID: contact.ID, Title: "Deal", Value: 1000,
		Stage: types.StageProposal,
	})
	require.NoError(t, err)

	p := 0.9
	_, err = svc.UpdateDeal(deal.ID, types.DealPatch{Probability: &p})
	require.NoError(t, err)

	report, err := svc.PipelineValue()
	require.NoError(t, err)
	assert.Equal(t, 900.0, report.WeightedPipeline, "override feeds the weighting")
}

func TestConversionFunnel(t *testing.T) {
	svc := setupService(t)

	_, err := svc.AddContact(NewContact{Name: "Lead", Email: "lead@x.com"})
	require.NoError(t, err)
	_, err = svc.AddContact(NewContact{
		Name: "Customer", Email: "customer@x.com", Status: types.StatusCustomer,
	})
	require.NoError(t, err)

	report, err := svc.ConversionFunnel()
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalContacts)
	assert.Equal(t, 1, report.Lead)
	assert.Equal(t, 0, report.Prospect)
	assert.Equal(t, 1, report.Customer)
	assert.Equal(t, 0.5, report.OverallConversionRate)
	// Zero-denominator rates report 0, never NaN or an error.
	assert.Equal(t, 0.0, report.LeadToProspectRate)
	assert.Equal(t, 0.0, report.ProspectToCustomerRate)
}

func TestConversionFunnelEmpty(t *testing.T) {
	svc := setupService(t)

	report, err := svc.ConversionFunnel()
	require.NoError(t, err)
	assert.Zero(t, report.TotalContacts)
	assert.Equal(t, 0.0, report.OverallConversionRate)
}

func TestConversionFunnelRounding(t *testing.T) {
	svc := setupService(t)

	// Two leads, one prospect: lead→prospect rate 1/2, overall 0/3.
	for _, c := range []NewContact{
		{Name: "L1", Email: "l1@x.com"},
		{Name: "L2", Email: "l2@x.com"},
		{Name: "P1", Email: "p1@x.com", Status: types.StatusProspect},
	} {
		_, err := svc.AddContact(c)
		require.NoError(t, err)
	}

	report, err := svc.ConversionFunnel()
	require.NoError(t, err)
	assert.Equal(t, 0.5, report.LeadToProspectRate)
	assert.Equal(t, 0.0, report.OverallConversionRate)
}

func TestDealWinRate(t *testing.T) {
	svc := setupService(t)
	contact, err := svc.AddContact(NewContact{Name: "Alice", Email: "alice@acme.com"})
	require.NoError(t, err)

	for _, stage := range []types.DealStage{
		types.StageClosedWon, types.StageClosedWon,
		types.StageClosedLost, types.StageProposal,
	} {
		_, err := svc.CreateDeal(NewDeal{
			ContactID: contact.ID, Title: "Deal", Value: 100, Stage: stage,
		})
		require.NoError(t, err)
	}

	report, err := svc.DealWinRate()
	require.NoError(t, err)
	assert.Equal(t, 2, report.ClosedWon)
	assert.Equal(t, 1, report.ClosedLost)
	assert.Equal(t, 0.667, report.WinRate, "rounded to 3 decimal places")
}

func TestDealWinRateNoClosedDeals(t *testing.T) {
	svc := setupService(t)
	contact, err := svc.AddContact(NewContact{Name: "Alice", Email: "alice@acme.com"})
	require.NoError(t, err)
	_, err = svc.CreateDeal(NewDeal{ContactID: contact.ID, Title: "Open", Value: 100})
	require.NoError(t, err)

	report, err := svc.DealWinRate()
	require.NoError(t, err)
	assert.Zero(t, report.ClosedWon)
	assert.Zero(t, report.ClosedLost)
	assert.Equal(t, 0.0, report.WinRate)
}

func TestTopContactsByScore(t *testing.T) {
	svc := setupService(t)

	scores := map[string]int{"a@x.com": 30, "b@x.com": 80, "c@x.com": 55}
	for email, score := range scores {
		c, err := svc.AddContact(NewContact{Name: email, Email: email})
		require.NoError(t, err)
		_, err = svc.UpdateLeadScore(c.ID, score)
		require.NoError(t, err)
	}

	top, err := svc.TopContactsByScore(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 80, top[0].LeadScore)
	assert.Equal(t, 55, top[1].LeadScore)

	// Zero or negative limits fall back to the default of 10.
	all, err := svc.TopContactsByScore(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestActivitySummary(t *testing.T) {
	svc := setupService(t)
	contact, err := svc.AddContact(NewContact{Name: "Alice", Email: "alice@acme.com"})
	require.NoError(t, err)

	for _, at := range []types.ActivityType{
		types.ActivityCall, types.ActivityCall, types.ActivityEmail,
	} {
		_, err := svc.LogActivity(NewActivity{
			ContactID: contact.ID, Type: at, Summary: "touch",
		})
		require.NoError(t, err)
	}

	summary, err := svc.ActivitySummary()
	require.NoError(t, err)
	assert.Equal(t, 2, summary[types.ActivityCall])
	assert.Equal(t, 1, summary[types.ActivityEmail])
	assert.NotContains(t, summary, types.ActivityDemo)
}
