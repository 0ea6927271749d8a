package repository

import (
	"github.com/diillson/runway-dashboard-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	// Load merges the config file (optional) with the .env file and SMTP environment.
	Load(configFile, envFile string) (*types.Config, error)
}
