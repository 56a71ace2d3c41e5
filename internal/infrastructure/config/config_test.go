package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centreconnect/centreconnect/internal/shared/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "CentreConnect", cfg.App.Name)
	assert.Equal(t, "release", cfg.App.Mode)
	assert.Equal(t, "en-ZA", cfg.Locale.Tag)
	assert.Equal(t, "ZAR", cfg.Locale.Currency)
	assert.Equal(t, "Africa/Johannesburg", cfg.Locale.Timezone)
	assert.False(t, cfg.Slug.TrimEdges)
	assert.Equal(t, "CentreConnect - Digital ECD Ecosystem", cfg.Site.Title)
	assert.Equal(t, "class", cfg.Theme.DarkMode)
	assert.Len(t, cfg.Theme.Content, 3)
	require.Contains(t, cfg.Theme.Colors, "primary")
	assert.Equal(t, "#2E7EC8", cfg.Theme.Colors["primary"].Default)
	assert.Equal(t, "#FFFFFF", cfg.Theme.Colors["secondary"].Foreground)

	assert.Same(t, cfg, Get())
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := writeConfig(t, `
app:
  mode: debug
locale:
  tag: en-GB
  currency: GBP
  timezone: Europe/London
slug:
  trim_edges: true
theme:
  colors:
    accent:
      default: "#FFAA00"
      foreground: "#000000"
`)
	t.Setenv("CENTRECONNECT_LOCALE_CURRENCY", "EUR")

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.Mode)
	assert.True(t, cfg.App.IsDebug())
	assert.Equal(t, "en-GB", cfg.Locale.Tag)
	assert.Equal(t, "EUR", cfg.Locale.Currency)
	assert.Equal(t, "Europe/London", cfg.Locale.Timezone)
	assert.True(t, cfg.Slug.TrimEdges)
	assert.Equal(t, "#FFAA00", cfg.Theme.Colors["accent"].Default)
}

func TestLoad_EnvArgumentOverridesMode(t *testing.T) {
	cfg, err := Load("test", "")
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.App.Mode)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name:    "bad colour",
			content: "theme:\n  colors:\n    primary:\n      default: blue\n      foreground: \"#FFFFFF\"\n",
			field:   "theme.colors[primary].default",
		},
		{
			name:    "lower case currency",
			content: "locale:\n  currency: zar\n",
			field:   "locale.currency",
		},
		{
			name:    "unknown timezone",
			content: "locale:\n  timezone: Mars/Olympus\n",
			field:   "locale.timezone",
		},
		{
			name:    "unknown log level",
			content: "logger:\n  level: chatty\n",
			field:   "logger.level",
		},
		{
			name:    "unknown dark mode",
			content: "theme:\n  dark_mode: always\n",
			field:   "theme.dark_mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("", writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
