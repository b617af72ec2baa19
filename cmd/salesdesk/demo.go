// Demo command: seeds a throwaway database and walks through the main
// operations, printing each report section.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/salesdesk/pkg/crm"
	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a quick demo against a temporary database",
	RunE:  runDemo,
}

func printSection(title string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("  %s\n", title)
	fmt.Println(strings.Repeat("=", 60))
}

func runDemo(cmd *cobra.Command, args []string) error {
	dir, err := os.MkdirTemp("", "salesdesk-demo-")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	svc, err := crm.Open(types.Config{DBPath: filepath.Join(dir, "demo.db")})
	if err != nil {
		return err
	}
	defer svc.Close()

	printSection("Adding Contacts")
	alice, err := svc.AddContact(crm.NewContact{
		Name: "Alice Johnson", Email: "alice@acme.com", Company: "Acme Corp",
		Title: "VP Sales", Source: "linkedin", Tags: types.TagList{"enterprise"},
	})
	if err != nil {
		return err
	}
	bob, err := svc.AddContact(crm.NewContact{
		Name: "Bob Smith", Email: "bob@startup.io", Company: "StartupCo",
		Title: "CTO", Source: "referral", Tags: types.TagList{"startup", "tech"},
	})
	if err != nil {
		return err
	}
	carol, err := svc.AddContact(crm.NewContact{
		Name: "Carol Williams", Email: "carol@bigco.com", Company: "BigCo",
		Title: "Director", Source: "cold_outreach", Tags: types.TagList{"enterprise"},
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Added: %s, %s, %s\n", alice.Name, bob.Name, carol.Name)

	printSection("Lead Scoring")
	score, err := svc.UpdateLeadScore(alice.ID, 45)
	if err != nil {
		return err
	}
	fmt.Printf("  Alice lead score: %d\n", score)
	score, err = svc.UpdateLeadScore(bob.ID, 30)
	if err != nil {
		return err
	}
	fmt.Printf("  Bob lead score:   %d\n", score)

	printSection("Creating Deals")
	d1, err := svc.CreateDeal(crm.NewDeal{
		ContactID: alice.ID, Title: "Enterprise License Q1",
		Value: 150_000, Stage: types.StageQualified,
	})
	if err != nil {
		return err
	}
	d2, err := svc.CreateDeal(crm.NewDeal{
		ContactID: bob.ID, Title: "SaaS Subscription",
		Value: 24_000, Stage: types.StageProposal,
	})
	if err != nil {
		return err
	}
	d3, err := svc.CreateDeal(crm.NewDeal{
		ContactID: carol.ID, Title: "Consulting Project",
		Value: 45_000, Stage: types.StageNegotiation,
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Deals created: %s, %s, %s\n", d1.Title, d2.Title, d3.Title)

	printSection("Advancing Deals")
	if _, err := svc.AdvanceDeal(d1.ID, types.StageNegotiation); err != nil {
		return err
	}
	if _, err := svc.AdvanceDeal(d2.ID, types.StageClosedWon); err != nil {
		return err
	}
	fmt.Println("  Deal 1 → Negotiation, Deal 2 → Closed Won")

	printSection("Logging Activities")
	logs := []crm.NewActivity{
		{ContactID: alice.ID, Type: types.ActivityCall, Summary: "Discovery call", Outcome: "Interested in Q2 deal", NextAction: "Send proposal"},
		{ContactID: bob.ID, Type: types.ActivityDemo, Summary: "Product demo", Outcome: "Very positive", NextAction: "Follow-up next week"},
		{ContactID: carol.ID, Type: types.ActivityEmail, Summary: "Intro email", Outcome: "Awaiting response"},
	}
	for _, na := range logs {
		if _, err := svc.LogActivity(na); err != nil {
			return err
		}
	}
	fmt.Println("  Activities logged")

	printSection("Pipeline Value")
	pv, err := svc.PipelineValue()
	if err != nil {
		return err
	}
	fmt.Printf("  Total pipeline:    $%.2f\n", pv.TotalPipeline)
	fmt.Printf("  Weighted pipeline: $%.2f\n", pv.WeightedPipeline)
	for _, stage := range stageOrder {
		if m, ok := pv.ByStage[stage]; ok {
			fmt.Printf("    %s: $%.2f (%d deals)\n", stage, m.Total, m.Count)
		}
	}

	printSection("Conversion Funnel")
	funnel, err := svc.ConversionFunnel()
	if err != nil {
		return err
	}
	fmt.Printf("  Total contacts: %d\n", funnel.TotalContacts)
	fmt.Printf("  Lead → Prospect rate: %.1f%%\n", funnel.LeadToProspectRate*100)
	fmt.Printf("  Overall conversion:   %.1f%%\n", funnel.OverallConversionRate*100)

	printSection("CSV Export (first 200 chars)")
	csvData, err := svc.ExportContacts(crm.FormatCSV)
	if err != nil {
		return err
	}
	if len(csvData) > 200 {
		csvData = csvData[:200]
	}
	fmt.Println(csvData)

	fmt.Println("\n✓ Demo complete")
	return nil
}
