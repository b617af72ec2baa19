// Export subcommands: contacts, deals.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records as CSV or JSON",
}

func init() {
	exportCmd.AddCommand(exportContactsCmd)
	exportCmd.AddCommand(exportDealsCmd)

	for _, cmd := range []*cobra.Command{exportContactsCmd, exportDealsCmd} {
		cmd.Flags().String("format", "csv", "output format: csv or json")
		cmd.Flags().String("out", "", "write to file instead of stdout")
	}
}

// writeExport sends the serialized records to stdout or the --out file.
func writeExport(cmd *cobra.Command, data string) error {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		fmt.Print(data)
		return nil
	}
	if err := os.WriteFile(out, []byte(data), 0o644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

var exportContactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Export all contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		data, err := service.ExportContacts(format)
		if err != nil {
			return err
		}
		return writeExport(cmd, data)
	},
}

var exportDealsCmd = &cobra.Command{
	Use:   "deals",
	Short: "Export all deals",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		data, err := service.ExportDeals(format)
		if err != nil {
			return err
		}
		return writeExport(cmd, data)
	},
}
