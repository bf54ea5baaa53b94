package config

import (
	"os"

	"github.com/spf13/viper"
)

// Config holds all todo tool configuration
type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// DataConfig holds data file settings
type DataConfig struct {
	Path string `mapstructure:"path"`
}

// DefaultsConfig holds defaults applied to new tasks
type DefaultsConfig struct {
	Category string `mapstructure:"category"`
	Priority string `mapstructure:"priority"`
}

// LoadConfigWithFile loads configuration from a specific file if provided,
// otherwise falls back to LoadConfig with the working directory.
func LoadConfigWithFile(workDir, configFile string) (*Config, error) {
	if configFile != "" {
		return LoadConfigFromPath(configFile)
	}
	return LoadConfig(workDir)
}

// LoadConfig loads configuration from todo.yaml in the given directory,
// falling back to the global XDG config file when the directory has none.
// If neither file exists, sensible defaults are returned.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Configure viper
	v.SetConfigName("todo")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	// Read config file; on not-found, try the global config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}

		globalPath, gerr := GlobalConfigPath()
		if gerr == nil {
			if _, serr := os.Stat(globalPath); serr == nil {
				v.SetConfigFile(globalPath)
				if err := v.ReadInConfig(); err != nil {
					return nil, err
				}
			}
		}
	}

	// Unmarshal into Config struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFromPath loads configuration from a specific file path
func LoadConfigFromPath(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Check if file exists
	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			cfg := &Config{}
			if err := v.Unmarshal(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}

	// Configure viper to read from specific file
	v.SetConfigFile(configPath)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	// Unmarshal into Config struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults sets all default values for configuration
func setDefaults(v *viper.Viper) {
	// Data defaults
	v.SetDefault("data.path", DefaultDataPath)

	// Task defaults
	v.SetDefault("defaults.category", DefaultCategory)
	v.SetDefault("defaults.priority", DefaultPriority)
}
