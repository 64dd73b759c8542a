package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valpere/romawi/internal"
)

// isolate runs the test from an empty directory with an empty HOME so no
// real .env or .romawi.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "id", cfg.Locale)
	assert.Equal(t, "roman", cfg.Mode)
	assert.Equal(t, 0, cfg.Workers)

	mode, auto := cfg.ParsedMode()
	assert.Equal(t, internal.RomanToText, mode)
	assert.False(t, auto)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "romawi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: en\nmode: text\nworkers: 3\n"), 0644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 3, cfg.Workers)
	mode, _ := cfg.ParsedMode()
	assert.Equal(t, internal.TextToRoman, mode)
}

func TestLoad_HomeConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".romawi.yaml"), []byte("locale: en\n"), 0644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("ROMAWI_LOCALE", "en")
	t.Setenv("ROMAWI_MODE", "auto")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Locale)
	_, auto := cfg.ParsedMode()
	assert.True(t, auto)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ROMAWI_WORKERS=7\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("ROMAWI_WORKERS") })

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Workers)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(New(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unsupported locale", map[string]string{"ROMAWI_LOCALE": "fr"}},
		{"unknown mode", map[string]string{"ROMAWI_MODE": "sideways"}},
		{"negative workers", map[string]string{"ROMAWI_WORKERS": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(New(), "")
			assert.Error(t, err)
		})
	}
}
