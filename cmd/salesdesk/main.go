// Package main provides the salesdesk CLI, a thin driver over the crm
// service package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/salesdesk/pkg/crm"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// dbPath is set by the --db flag and overrides the config file.
	dbPath string

	// service is the global service instance, opened on startup.
	service *crm.Service
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "salesdesk",
	Short: "Salesdesk is an embedded sales-records store",
	Long: `Salesdesk tracks contacts, deals, and activities in a local SQLite
database and computes pipeline analytics over them.`,
	SilenceUsage:      true,
	PersistentPreRunE: openService,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeService()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: .salesdesk.yaml or ~/.salesdesk/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (overrides config)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(dealCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(demoCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("salesdesk v" + crm.Version)
	},
}

// serviceless lists commands that run without opening the database.
var serviceless = map[string]bool{
	"init":    true,
	"version": true,
	"demo":    true,
}

// openService loads config and opens the global service.
func openService(cmd *cobra.Command, args []string) error {
	if serviceless[cmd.Name()] {
		return nil
	}

	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	svc, err := crm.Open(cfg)
	if err != nil {
		return fmt.Errorf("open service: %w", err)
	}
	service = svc
	return nil
}

// closeService closes the global service and releases the database handle.
func closeService() error {
	if service != nil {
		return service.Close()
	}
	return nil
}
