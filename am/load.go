package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/can/errors"
	"github.com/teranos/can/logger"
)

var globalConfig *Config
var viperInstance *viper.Viper

// ConfigSources records which source supplied each file-backed key during the
// last load. Keys absent from the map came from defaults.
var ConfigSources = map[string]SourceInfo{}

// systemConfigPath is a variable so tests can point it at a temp dir.
var systemConfigPath = SystemConfigPath

// Load reads the can configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	config, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set defaults but don't bind environment variables for this specific load
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "failed to read config file %s", configPath),
			"config files are TOML; run 'can am show' to see every key")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
	ConfigSources = map[string]SourceInfo{}
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// CAN_OUTPUT_FORMAT -> output.format
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Manually merge configs in precedence order: system -> user -> project -> env vars
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// findProjectConfig searches for can.toml by walking up the directory tree.
// Returns the path to the first config file found, or empty string if none found
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			break
		}
		dir = parent
	}

	return ""
}

// userConfigPath returns ~/.can/can.toml, or empty when there is no home directory.
func userConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return ""
	}
	return filepath.Join(homeDir, UserConfigDir, ConfigFileName)
}

// mergeConfigFiles manually merges configuration files in the correct precedence order
// Precedence (lowest to highest): system < user < project < env vars
func mergeConfigFiles(v *viper.Viper) {
	log := logger.ComponentLogger("am")
	sources := map[string]SourceInfo{}

	type candidate struct {
		path   string
		source ConfigSource
	}
	candidates := []candidate{
		{systemConfigPath, SourceSystem},
		{userConfigPath(), SourceUser},
	}
	if projectConfig := findProjectConfig(); projectConfig != "" {
		candidates = append(candidates, candidate{projectConfig, SourceProject})
	}

	for _, c := range candidates {
		if c.path == "" {
			continue
		}
		if _, err := os.Stat(c.path); err != nil {
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(c.path)
		tempViper.SetConfigType("toml")

		if err := tempViper.ReadInConfig(); err != nil {
			log.Warnw("Skipping unreadable config file",
				logger.FieldFile, c.path,
				logger.FieldError, err)
			continue
		}

		settings := tempViper.AllSettings()
		if err := v.MergeConfigMap(settings); err != nil {
			log.Warnw("Skipping config file that failed to merge",
				logger.FieldFile, c.path,
				logger.FieldError, err)
			continue
		}
		markSettingsFromSource(settings, "", c.source, c.path, sources)
		log.Debugw("Merged config file", logger.FieldFile, c.path)
	}

	ConfigSources = sources
}

// markSettingsFromSource records source for every leaf key in settings,
// replacing whatever an earlier, lower-precedence file recorded.
func markSettingsFromSource(settings map[string]interface{}, prefix string, source ConfigSource, path string, sourceMap map[string]SourceInfo) {
	for key, value := range settings {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			markSettingsFromSource(nested, fullKey, source, path, sourceMap)
			continue
		}
		sourceMap[fullKey] = SourceInfo{Source: source, Path: path}
	}
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return initViper().Get(key)
}

// GetString returns a configuration value as string using dot notation
func GetString(key string) string {
	return initViper().GetString(key)
}

// GetBool returns a configuration value as bool using dot notation
func GetBool(key string) bool {
	return initViper().GetBool(key)
}

// GetInt returns a configuration value as int using dot notation
func GetInt(key string) int {
	return initViper().GetInt(key)
}
