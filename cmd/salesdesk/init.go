// Init command for the salesdesk CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/salesdesk/pkg/crm"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize salesdesk storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := ensureConfigFile()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}

		cfg, err := loadConfig(configFile)
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}

		// Opening once creates the database file and schema.
		svc, err := crm.Open(cfg)
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer svc.Close()

		fmt.Println("Salesdesk initialized successfully")
		fmt.Println("  config:  ", configPath)
		fmt.Println("  database:", cfg.DBPath)
		return nil
	},
}

// ensureConfigFile creates ~/.salesdesk/config.yaml with defaults when no
// config file exists yet. An existing file is left untouched.
func ensureConfigFile() (string, error) {
	if configFile != "" {
		return configFile, nil
	}

	// A working-directory dotfile takes precedence; respect it when present.
	local := configFileName + "." + configFileType
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	dir := filepath.Join(home, ".salesdesk")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(dir, "config."+configFileType)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	contents := fmt.Sprintf("%s: %s\n", cfgKeyDBPath, filepath.Join(dir, "salesdesk.db"))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return "", fmt.Errorf("writing default config: %w", err)
	}
	return path, nil
}
