// Activity subcommands: log, list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/salesdesk/pkg/crm"
	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Log and review contact activities",
}

func init() {
	activityCmd.AddCommand(activityLogCmd)
	activityCmd.AddCommand(activityListCmd)

	f := activityLogCmd.Flags()
	f.String("contact", "", "contact ID (required)")
	f.String("type", "", "activity type: call, email, meeting, demo, follow_up (required)")
	f.String("summary", "", "what happened (required)")
	f.String("outcome", "", "outcome")
	f.String("next", "", "next action")
	activityLogCmd.MarkFlagRequired("contact")
	activityLogCmd.MarkFlagRequired("type")
	activityLogCmd.MarkFlagRequired("summary")
}

var activityLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record an activity against a contact",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		rawType, _ := f.GetString("type")
		typ, err := types.ParseActivityType(rawType)
		if err != nil {
			return err
		}

		na := crm.NewActivity{Type: typ}
		na.ContactID, _ = f.GetString("contact")
		na.Summary, _ = f.GetString("summary")
		na.Outcome, _ = f.GetString("outcome")
		na.NextAction, _ = f.GetString("next")

		activity, err := service.LogActivity(na)
		if err != nil {
			return err
		}
		fmt.Printf("Logged %s activity %s\n", activity.Type, activity.ID)
		return nil
	},
}

var activityListCmd = &cobra.Command{
	Use:   "list <contact-id>",
	Short: "List a contact's activities, most recent first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := service.ListActivities(args[0])
		if err != nil {
			return err
		}
		for _, a := range activities {
			fmt.Printf("%s  %-10s %s", a.RecordedAt.Format("2006-01-02 15:04:05"), a.Type, a.Summary)
			if a.Outcome != "" {
				fmt.Printf(" (%s)", a.Outcome)
			}
			fmt.Println()
		}
		return nil
	},
}
