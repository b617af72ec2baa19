// Contact subcommands: add, get, list, update, score, delete.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/salesdesk/pkg/crm"
	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage contacts",
}

func init() {
	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactGetCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactUpdateCmd)
	contactCmd.AddCommand(contactScoreCmd)
	contactCmd.AddCommand(contactDeleteCmd)

	f := contactAddCmd.Flags()
	f.String("name", "", "contact name (required)")
	f.String("email", "", "contact email (required)")
	f.String("phone", "", "phone number")
	f.String("company", "", "company name")
	f.String("title", "", "job title")
	f.StringSlice("tag", nil, "tag (repeatable)")
	f.String("owner", "", "account owner")
	f.String("source", "", "acquisition source")
	f.String("status", "", "initial status (default: lead)")
	contactAddCmd.MarkFlagRequired("name")
	contactAddCmd.MarkFlagRequired("email")

	contactGetCmd.Flags().String("email", "", "look up by email instead of ID")

	lf := contactListCmd.Flags()
	lf.String("status", "", "filter by status")
	lf.String("owner", "", "filter by owner")
	lf.String("tag", "", "filter by tag membership")

	uf := contactUpdateCmd.Flags()
	uf.String("name", "", "contact name")
	uf.String("phone", "", "phone number")
	uf.String("company", "", "company name")
	uf.String("title", "", "job title")
	uf.StringSlice("tag", nil, "replacement tags (repeatable)")
	uf.String("owner", "", "account owner")
	uf.String("source", "", "acquisition source")
	uf.String("status", "", "status")
}

var contactAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new contact",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		nc := crm.NewContact{}
		nc.Name, _ = f.GetString("name")
		nc.Email, _ = f.GetString("email")
		nc.Phone, _ = f.GetString("phone")
		nc.Company, _ = f.GetString("company")
		nc.Title, _ = f.GetString("title")
		nc.Owner, _ = f.GetString("owner")
		nc.Source, _ = f.GetString("source")
		tags, _ := f.GetStringSlice("tag")
		nc.Tags = types.TagList(tags)
		if raw, _ := f.GetString("status"); raw != "" {
			status, err := types.ParseContactStatus(raw)
			if err != nil {
				return err
			}
			nc.Status = status
		}

		contact, err := service.AddContact(nc)
		if err != nil {
			return err
		}
		fmt.Printf("Added contact %s (%s)\n", contact.Name, contact.ID)
		return nil
	},
}

var contactGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a contact by ID or email",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")

		var contact *types.Contact
		var err error
		switch {
		case email != "":
			contact, err = service.GetContactByEmail(email)
		case len(args) == 1:
			contact, err = service.GetContact(args[0])
		default:
			return fmt.Errorf("provide an ID argument or --email")
		}
		if err != nil {
			return err
		}
		if contact == nil {
			fmt.Println("contact not found")
			return nil
		}
		printContact(contact)
		return nil
	},
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		opts := crm.ListContactsOptions{}
		if raw, _ := f.GetString("status"); raw != "" {
			status, err := types.ParseContactStatus(raw)
			if err != nil {
				return err
			}
			opts.Status = status
		}
		opts.Owner, _ = f.GetString("owner")
		opts.Tag, _ = f.GetString("tag")

		contacts, err := service.ListContacts(opts)
		if err != nil {
			return err
		}
		for _, c := range contacts {
			fmt.Printf("%s  %-24s %-28s %-10s score=%d\n",
				c.ID, c.Name, c.Email, c.Status, c.LeadScore)
		}
		return nil
	},
}

var contactUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update contact fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		patch := types.ContactPatch{}
		if f.Changed("name") {
			v, _ := f.GetString("name")
			patch.Name = &v
		}
		if f.Changed("phone") {
			v, _ := f.GetString("phone")
			patch.Phone = &v
		}
		if f.Changed("company") {
			v, _ := f.GetString("company")
			patch.Company = &v
		}
		if f.Changed("title") {
			v, _ := f.GetString("title")
			patch.Title = &v
		}
		if f.Changed("tag") {
			v, _ := f.GetStringSlice("tag")
			tags := types.TagList(v)
			patch.Tags = &tags
		}
		if f.Changed("owner") {
			v, _ := f.GetString("owner")
			patch.Owner = &v
		}
		if f.Changed("source") {
			v, _ := f.GetString("source")
			patch.Source = &v
		}
		if f.Changed("status") {
			raw, _ := f.GetString("status")
			status, err := types.ParseContactStatus(raw)
			if err != nil {
				return err
			}
			patch.Status = &status
		}

		contact, err := service.UpdateContact(args[0], patch)
		if err != nil {
			return err
		}
		if contact == nil {
			fmt.Println("contact not found")
			return nil
		}
		printContact(contact)
		return nil
	},
}

var contactScoreCmd = &cobra.Command{
	Use:   "score <id> <delta>",
	Short: "Adjust a contact's lead score",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("delta must be an integer: %w", err)
		}
		score, err := service.UpdateLeadScore(args[0], delta)
		if err != nil {
			return err
		}
		fmt.Printf("lead score: %d\n", score)
		return nil
	},
}

var contactDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deleted, err := service.DeleteContact(args[0])
		if err != nil {
			return err
		}
		if !deleted {
			fmt.Println("contact not found")
			return nil
		}
		fmt.Println("contact deleted")
		return nil
	},
}

func printContact(c *types.Contact) {
	fmt.Printf("ID:       %s\n", c.ID)
	fmt.Printf("Name:     %s\n", c.Name)
	fmt.Printf("Email:    %s\n", c.Email)
	if c.Company != "" {
		fmt.Printf("Company:  %s (%s)\n", c.Company, c.Title)
	}
	fmt.Printf("Status:   %s\n", c.Status)
	fmt.Printf("Score:    %d\n", c.LeadScore)
	if len(c.Tags) > 0 {
		fmt.Printf("Tags:     %v\n", []string(c.Tags))
	}
	if c.LastContact != nil {
		fmt.Printf("Last contact: %s\n", c.LastContact.Format("2006-01-02 15:04:05"))
	}
}
