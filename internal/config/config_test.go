package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invertedv/cornstats"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.Nil(t, err)
	assert.Equal(t, cornstats.DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "data_path: /tmp/raw.csv\noutput_dir: /tmp/out\n"
	require.Nil(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.Nil(t, err)
	assert.Equal(t, "/tmp/raw.csv", cfg.DataPath)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	// unset keys keep defaults
	assert.Equal(t, cornstats.DefaultConfig().DataDir, cfg.DataDir)
}

func TestLoadBadFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NotNil(t, err)
}
