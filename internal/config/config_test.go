// Package config_test tests configuration loading, merging hierarchy, and environment variable overrides.
// Related: internal/config/config.go
// Tags: config, loading, merging, env-vars, json, precedence
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that defaults are applied when no config files exist.
// Requires HOME isolation to avoid loading a real global config from the system.
func TestLoad_Defaults(t *testing.T) {
	// Cannot use t.Parallel() because we modify the environment to isolate
	// from real config files that might exist on the system
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "metadata.jsonld", cfg.Output)
	assert.Equal(t, "1.0.0", cfg.DatasetVersion)
	assert.Equal(t, "en", cfg.Language)
}

func TestLoad_LocalOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	configPath := filepath.Join(tmpDir, "config.json")
	configContent := `{
		"output": "dist/dataset.jsonld",
		"dataset_version": "2.0.0"
	}`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "dist/dataset.jsonld", cfg.Output)
	assert.Equal(t, "2.0.0", cfg.DatasetVersion)
	assert.Equal(t, "en", cfg.Language, "untouched keys keep their defaults")
}

func TestLoad_GlobalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	globalDir := filepath.Join(tmpDir, ".croissant")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	globalContent := `{"language": "fr"}`
	err := os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(globalContent), 0644)
	require.NoError(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Language)
	assert.Equal(t, "metadata.jsonld", cfg.Output)
}

func TestLoad_LocalOverridesGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	globalDir := filepath.Join(tmpDir, ".croissant")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	err := os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(`{"language": "fr", "dataset_version": "0.9.0"}`), 0644)
	require.NoError(t, err)

	localPath := filepath.Join(tmpDir, "config.json")
	err = os.WriteFile(localPath, []byte(`{"language": "de"}`), 0644)
	require.NoError(t, err)

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Language, "local config wins over global")
	assert.Equal(t, "0.9.0", cfg.DatasetVersion, "global keys survive when local does not set them")
}

func TestLoad_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("CROISSANT_DATASET_VERSION", "3.1.4")

	localPath := filepath.Join(tmpDir, "config.json")
	err := os.WriteFile(localPath, []byte(`{"dataset_version": "2.0.0"}`), 0644)
	require.NoError(t, err)

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, "3.1.4", cfg.DatasetVersion, "environment wins over local config")
}

func TestLoad_MissingLocalConfigIgnored(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	cfg, err := Load(filepath.Join(tmpDir, "does-not-exist.json"))
	require.NoError(t, err)
	assert.Equal(t, "metadata.jsonld", cfg.Output)
}

func TestLoad_MalformedLocalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	localPath := filepath.Join(tmpDir, "config.json")
	err := os.WriteFile(localPath, []byte(`{not json`), 0644)
	require.NoError(t, err)

	_, err = Load(localPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load local config")
}

func TestLoad_InvalidLanguage(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("CROISSANT_LANGUAGE", "not a language tag")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoad_ExpandsHomeInOutput(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("CROISSANT_OUTPUT", "~/datasets/metadata.jsonld")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "datasets", "metadata.jsonld"), cfg.Output)
}

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		expected string
	}{
		"simple key":        {input: "CROISSANT_OUTPUT", expected: "output"},
		"underscored key":   {input: "CROISSANT_DATASET_VERSION", expected: "dataset_version"},
		"language key":      {input: "CROISSANT_LANGUAGE", expected: "language"},
		"no prefix present": {input: "OUTPUT", expected: "output"},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, envTransform(tc.input))
		})
	}
}

func TestGetDefaults(t *testing.T) {
	t.Parallel()

	defaults := GetDefaults()
	assert.Equal(t, "metadata.jsonld", defaults["output"])
	assert.Equal(t, "1.0.0", defaults["dataset_version"])
	assert.Equal(t, "en", defaults["language"])
}
