package am

import (
	"os"
	"sort"
	"strings"

	"github.com/teranos/can/errors"
)

// ConfigSource represents where a configuration value came from
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceSystem      ConfigSource = "system"      // /etc/can/can.toml
	SourceUser        ConfigSource = "user"        // ~/.can/can.toml
	SourceProject     ConfigSource = "project"     // can.toml in cwd or a parent
	SourceEnvironment ConfigSource = "environment" // CAN_* env vars
)

// SettingInfo contains metadata about a configuration setting
type SettingInfo struct {
	Key        string       `json:"key" yaml:"key" toml:"key"`
	Value      interface{}  `json:"value" yaml:"value" toml:"value"`
	Source     ConfigSource `json:"source" yaml:"source" toml:"source"`
	SourcePath string       `json:"source_path,omitempty" yaml:"source_path,omitempty" toml:"source_path,omitempty"` // File path or env var name
}

// ConfigIntrospection lists every effective setting with its origin
type ConfigIntrospection struct {
	Settings []SettingInfo `json:"settings" yaml:"settings" toml:"settings"`
}

// SourceInfo tracks where a configuration value originated
type SourceInfo struct {
	Source ConfigSource
	Path   string // File path or environment variable name
}

// GetConfigIntrospection returns every effective setting, sorted by key,
// tagged with the source that supplied it.
func GetConfigIntrospection() (*ConfigIntrospection, error) {
	if _, err := Load(); err != nil {
		return nil, errors.Wrap(err, "failed to load config for introspection")
	}

	introspection := &ConfigIntrospection{Settings: make([]SettingInfo, 0)}
	flattenSettingsWithSources(GetViper().AllSettings(), "", introspection, ConfigSources)
	return introspection, nil
}

// EnvKey returns the environment variable that overrides key, e.g.
// "output.format" -> "CAN_OUTPUT_FORMAT".
func EnvKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// flattenSettingsWithSources flattens settings and assigns sources from sourceMap
func flattenSettingsWithSources(settings map[string]interface{}, prefix string, introspection *ConfigIntrospection, sourceMap map[string]SourceInfo) {
	// Sort keys for deterministic iteration
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := settings[key]
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nestedMap, ok := value.(map[string]interface{}); ok {
			flattenSettingsWithSources(nestedMap, fullKey, introspection, sourceMap)
			continue
		}

		sourceInfo := SourceInfo{Source: SourceDefault, Path: "built-in default"}
		if si, ok := sourceMap[fullKey]; ok {
			sourceInfo = si
		}

		envKey := EnvKey(fullKey)
		if envValue := os.Getenv(envKey); envValue != "" {
			sourceInfo = SourceInfo{Source: SourceEnvironment, Path: envKey}
		}

		introspection.Settings = append(introspection.Settings, SettingInfo{
			Key:        fullKey,
			Value:      value,
			Source:     sourceInfo.Source,
			SourcePath: sourceInfo.Path,
		})
	}
}
