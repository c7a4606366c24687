package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/can/errors"
)

// isolate points every config location at temp dirs and returns the home dir.
func isolate(t *testing.T) string {
	t.Helper()
	Reset()
	t.Cleanup(Reset)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	old := systemConfigPath
	systemConfigPath = filepath.Join(t.TempDir(), ConfigFileName)
	t.Cleanup(func() { systemConfigPath = old })

	for _, key := range []string{"output.format", "output.color", "log.json", "log.theme", "render.medium", "search.limit"} {
		t.Setenv(EnvKey(key), "")
		os.Unsetenv(EnvKey(key))
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, FormatTable, cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, ThemeEverforest, cfg.Log.Theme)
	assert.Equal(t, "ascii", cfg.Render.Medium)
	assert.Equal(t, 10, cfg.Search.Limit)
	assert.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	tests := []struct {
		key      string
		expected interface{}
	}{
		{"output.format", "table"},
		{"output.color", true},
		{"log.json", false},
		{"log.theme", "everforest"},
		{"render.medium", "ascii"},
		{"search.limit", 10},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.Get(tt.key))
		})
	}
}

func TestLoad_Precedence(t *testing.T) {
	home := isolate(t)

	writeFile(t, systemConfigPath, "[output]\nformat = \"yaml\"\n[search]\nlimit = 3\n")
	writeFile(t, filepath.Join(home, UserConfigDir, ConfigFileName), "[output]\nformat = \"toml\"\n[log]\ntheme = \"gruvbox\"\n")

	project := t.TempDir()
	writeFile(t, filepath.Join(project, ConfigFileName), "[render]\nmedium = \"graphical\"\n[output]\nformat = \"json\"\n")
	sub := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	t.Chdir(sub)

	t.Setenv("CAN_SEARCH_LIMIT", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Output.Format, "project beats user and system")
	assert.Equal(t, ThemeGruvbox, cfg.Log.Theme, "user beats defaults")
	assert.Equal(t, "graphical", cfg.Render.Medium)
	assert.Equal(t, 25, cfg.Search.Limit, "env beats every file")
	assert.True(t, cfg.Output.Color)

	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, cfg, again)

	assert.Equal(t, SourceProject, ConfigSources["output.format"].Source)
	assert.Equal(t, SourceUser, ConfigSources["log.theme"].Source)
	assert.Equal(t, SourceSystem, ConfigSources["search.limit"].Source)
}

func TestLoad_NoFiles(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, FormatTable, cfg.Output.Format)
	assert.Empty(t, ConfigSources)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, "[output]\nformat = \"yaml\"\ncolor = false\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, 10, cfg.Search.Limit)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Output: OutputConfig{Format: FormatTable, Color: true},
			Log:    LogConfig{Theme: ThemeEverforest},
			Render: RenderConfig{Medium: "ascii"},
			Search: SearchConfig{Limit: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero limit is unlimited", func(c *Config) { c.Search.Limit = 0 }, false},
		{"negative limit", func(c *Config) { c.Search.Limit = -1 }, true},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, true},
		{"empty format", func(c *Config) { c.Output.Format = "" }, true},
		{"empty theme", func(c *Config) { c.Log.Theme = "" }, false},
		{"unknown theme", func(c *Config) { c.Log.Theme = "solarized" }, true},
		{"graphical medium", func(c *Config) { c.Render.Medium = "Graphical" }, false},
		{"empty medium", func(c *Config) { c.Render.Medium = "" }, false},
		{"unknown medium", func(c *Config) { c.Render.Medium = "svg" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidRequestError(err), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetters(t *testing.T) {
	var cfg Config
	assert.Equal(t, ThemeEverforest, cfg.GetLogTheme())
	assert.Equal(t, "ascii", cfg.GetMedium())

	cfg.Log.Theme = ThemeGruvbox
	cfg.Render.Medium = "graphical"
	assert.Equal(t, ThemeGruvbox, cfg.GetLogTheme())
	assert.Equal(t, "graphical", cfg.GetMedium())
	assert.Contains(t, cfg.String(), "Theme: gruvbox")
}

func TestFindProjectConfig(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("walks up to parent", func(t *testing.T) {
		subDir := filepath.Join(tmpDir, "found", "sub", "dir")
		require.NoError(t, os.MkdirAll(subDir, 0o755))
		writeFile(t, filepath.Join(tmpDir, "found", ConfigFileName), "")
		t.Chdir(subDir)

		result := findProjectConfig()
		require.NotEmpty(t, result)
		assert.True(t, filepath.IsAbs(result))
		assert.Equal(t, ConfigFileName, filepath.Base(result))
	})

	t.Run("no config found", func(t *testing.T) {
		subDir := filepath.Join(tmpDir, "missing", "sub")
		require.NoError(t, os.MkdirAll(subDir, 0o755))
		t.Chdir(subDir)

		assert.Empty(t, findProjectConfig())
	})
}
