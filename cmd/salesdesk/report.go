// Report subcommands: pipeline, funnel, winrate, top, activities.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Pipeline analytics reports",
}

func init() {
	reportCmd.AddCommand(reportPipelineCmd)
	reportCmd.AddCommand(reportFunnelCmd)
	reportCmd.AddCommand(reportWinRateCmd)
	reportCmd.AddCommand(reportTopCmd)
	reportCmd.AddCommand(reportActivitiesCmd)

	reportTopCmd.Flags().Int("limit", 10, "number of contacts to show")
}

// stageOrder lists the stages in pipeline order for stable report output.
var stageOrder = []types.DealStage{
	types.StageProspecting,
	types.StageQualified,
	types.StageProposal,
	types.StageNegotiation,
	types.StageClosedWon,
	types.StageClosedLost,
}

var reportPipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Total and weighted pipeline value by stage",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := service.PipelineValue()
		if err != nil {
			return err
		}
		fmt.Printf("Total pipeline:    %12.2f\n", report.TotalPipeline)
		fmt.Printf("Weighted pipeline: %12.2f\n", report.WeightedPipeline)
		for _, stage := range stageOrder {
			m, ok := report.ByStage[stage]
			if !ok {
				continue
			}
			fmt.Printf("  %-12s %12.2f weighted %12.2f (%d deals)\n",
				stage, m.Total, m.Weighted, m.Count)
		}
		return nil
	},
}

var reportFunnelCmd = &cobra.Command{
	Use:   "funnel",
	Short: "Contact conversion funnel",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := service.ConversionFunnel()
		if err != nil {
			return err
		}
		fmt.Printf("Total contacts: %d\n", report.TotalContacts)
		fmt.Printf("  lead %d, prospect %d, customer %d, churned %d\n",
			report.Lead, report.Prospect, report.Customer, report.Churned)
		fmt.Printf("Lead → prospect:     %.1f%%\n", report.LeadToProspectRate*100)
		fmt.Printf("Prospect → customer: %.1f%%\n", report.ProspectToCustomerRate*100)
		fmt.Printf("Overall conversion:  %.1f%%\n", report.OverallConversionRate*100)
		return nil
	},
}

var reportWinRateCmd = &cobra.Command{
	Use:   "winrate",
	Short: "Closed deal win rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := service.DealWinRate()
		if err != nil {
			return err
		}
		fmt.Printf("Won %d, lost %d, win rate %.1f%%\n",
			report.ClosedWon, report.ClosedLost, report.WinRate*100)
		return nil
	},
}

var reportTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Top contacts by lead score",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		contacts, err := service.TopContactsByScore(limit)
		if err != nil {
			return err
		}
		for i, c := range contacts {
			fmt.Printf("%2d. %-24s score=%-4d %s\n", i+1, c.Name, c.LeadScore, c.Email)
		}
		return nil
	},
}

var reportActivitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "Activity counts by type",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := service.ActivitySummary()
		if err != nil {
			return err
		}
		for typ, n := range summary {
			fmt.Printf("%-10s %d\n", typ, n)
		}
		return nil
	},
}
