// Config loading for the salesdesk CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/salesdesk/pkg/types"
)

const (
	configFileName = ".salesdesk"
	configFileType = "yaml"

	cfgKeyDBPath = "db_path"

	// defaultDBPath is used when neither flag nor config names a database.
	defaultDBPath = ".salesdesk.db"
)

// loadConfig reads the config file using Viper. Search order: the explicit
// --config path, then .salesdesk.yaml in the working directory, then
// ~/.salesdesk/config.yaml. A missing config file is not an error; defaults
// apply.
func loadConfig(path string) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDBPath, defaultDBPath)
	v.SetConfigType(configFileType)

	explicit := path != ""
	if !explicit {
		path = findConfigFile()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			// An explicit --config path that cannot be read is an error;
			// a vanished default config is not.
			if explicit || !os.IsNotExist(err) {
				return types.Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := types.Config{
		DBPath: v.GetString(cfgKeyDBPath),
	}
	return cfg, nil
}

// findConfigFile returns the first default config file that exists, or ""
// when none does.
func findConfigFile() string {
	local := configFileName + "." + configFileType
	if _, err := os.Stat(local); err == nil {
		return local
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, ".salesdesk", "config."+configFileType)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
