// Deal subcommands: create, get, list, advance, update.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/salesdesk/pkg/crm"
	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Manage deals",
}

func init() {
	dealCmd.AddCommand(dealCreateCmd)
	dealCmd.AddCommand(dealGetCmd)
	dealCmd.AddCommand(dealListCmd)
	dealCmd.AddCommand(dealAdvanceCmd)
	dealCmd.AddCommand(dealUpdateCmd)

	f := dealCreateCmd.Flags()
	f.String("contact", "", "contact ID (required)")
	f.String("title", "", "deal title (required)")
	f.Float64("value", 0, "deal value")
	f.String("stage", "", "initial stage (default: prospecting)")
	f.String("close", "", "expected close date (YYYY-MM-DD)")
	f.String("notes", "", "notes")
	dealCreateCmd.MarkFlagRequired("contact")
	dealCreateCmd.MarkFlagRequired("title")

	lf := dealListCmd.Flags()
	lf.String("contact", "", "filter by contact ID")
	lf.String("stage", "", "filter by stage")

	uf := dealUpdateCmd.Flags()
	uf.String("title", "", "deal title")
	uf.Float64("value", 0, "deal value")
	uf.String("close", "", "expected close date (YYYY-MM-DD)")
	uf.String("notes", "", "notes")
	uf.Float64("probability", 0, "probability override (0.0-1.0)")
}

// parseCloseDate accepts a date or full timestamp for the close date flag.
func parseCloseDate(raw string) (*time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("close date %q: %w", raw, types.ErrInvalidValue)
}

var dealCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a deal for a contact",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		nd := crm.NewDeal{}
		nd.ContactID, _ = f.GetString("contact")
		nd.Title, _ = f.GetString("title")
		nd.Value, _ = f.GetFloat64("value")
		nd.Notes, _ = f.GetString("notes")
		if raw, _ := f.GetString("stage"); raw != "" {
			stage, err := types.ParseDealStage(raw)
			if err != nil {
				return err
			}
			nd.Stage = stage
		}
		if raw, _ := f.GetString("close"); raw != "" {
			t, err := parseCloseDate(raw)
			if err != nil {
				return err
			}
			nd.CloseDate = t
		}

		deal, err := service.CreateDeal(nd)
		if err != nil {
			return err
		}
		fmt.Printf("Created deal %s (%s, p=%.2f)\n", deal.Title, deal.ID, deal.Probability)
		return nil
	},
}

var dealGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a deal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deal, err := service.GetDeal(args[0])
		if err != nil {
			return err
		}
		if deal == nil {
			fmt.Println("deal not found")
			return nil
		}
		printDeal(deal)
		return nil
	},
}

var dealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List deals",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		opts := crm.ListDealsOptions{}
		opts.ContactID, _ = f.GetString("contact")
		if raw, _ := f.GetString("stage"); raw != "" {
			stage, err := types.ParseDealStage(raw)
			if err != nil {
				return err
			}
			opts.Stage = stage
		}

		deals, err := service.ListDeals(opts)
		if err != nil {
			return err
		}
		for _, d := range deals {
			fmt.Printf("%s  %-30s %12.2f %-12s p=%.2f\n",
				d.ID, d.Title, d.Value, d.Stage, d.Probability)
		}
		return nil
	},
}

var dealAdvanceCmd = &cobra.Command{
	Use:   "advance <id> <stage>",
	Short: "Move a deal to a new stage",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		stage, err := types.ParseDealStage(args[1])
		if err != nil {
			return err
		}
		deal, err := service.AdvanceDeal(args[0], stage)
		if err != nil {
			return err
		}
		if deal == nil {
			fmt.Println("deal not found")
			return nil
		}
		fmt.Printf("Deal %s → %s (p=%.2f)\n", deal.Title, deal.Stage, deal.Probability)
		return nil
	},
}

var dealUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update deal fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		patch := types.DealPatch{}
		if f.Changed("title") {
			v, _ := f.GetString("title")
			patch.Title = &v
		}
		if f.Changed("value") {
			v, _ := f.GetFloat64("value")
			patch.Value = &v
		}
		if f.Changed("close") {
			raw, _ := f.GetString("close")
			t, err := parseCloseDate(raw)
			if err != nil {
				return err
			}
			patch.CloseDate = t
		}
		if f.Changed("notes") {
			v, _ := f.GetString("notes")
			patch.Notes = &v
		}
		if f.Changed("probability") {
			v, _ := f.GetFloat64("probability")
			patch.Probability = &v
		}

		deal, err := service.UpdateDeal(args[0], patch)
		if err != nil {
			return err
		}
		if deal == nil {
			fmt.Println("deal not found")
			return nil
		}
		printDeal(deal)
		return nil
	},
}

func printDeal(d *types.Deal) {
	fmt.Printf("ID:          %s\n", d.ID)
	fmt.Printf("Contact:     %s\n", d.ContactID)
	fmt.Printf("Title:       %s\n", d.Title)
	fmt.Printf("Value:       %.2f\n", d.Value)
	fmt.Printf("Stage:       %s\n", d.Stage)
	fmt.Printf("Probability: %.2f\n", d.Probability)
	if d.CloseDate != nil {
		fmt.Printf("Close date:  %s\n", d.CloseDate.Format("2006-01-02"))
	}
	if d.Notes != "" {
		fmt.Printf("Notes:       %s\n", d.Notes)
	}
}
