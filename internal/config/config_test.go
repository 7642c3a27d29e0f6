package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.BaseDir)
	assert.Equal(t, "motd_fragments", cfg.FragmentsDir)
	assert.Equal(t, ".md", cfg.FragmentExt)
	assert.Equal(t, "scrolls", cfg.ScrollsDir)
	assert.Equal(t, "logs", cfg.LogsDir)
	assert.Equal(t, ".env", cfg.EnvFile)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Contains(t, cfg.SeedPacket, "seed_packets")
}

func TestLoad(t *testing.T) {
	t.Run("explicit file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "runner.yaml")
		data := "base_dir: /srv/solaria\nmodel: gpt-4o-mini\nfragments_dir: fragments\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "/srv/solaria", cfg.BaseDir)
		assert.Equal(t, "gpt-4o-mini", cfg.Model)
		assert.Equal(t, "fragments", cfg.FragmentsDir)
		// Untouched fields keep their defaults
		assert.Equal(t, "scrolls", cfg.ScrollsDir)
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "runner.yaml")
		require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestPathHelpers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseDir = "/srv/solaria"
	cfg.SeedPacket = "seed_packets/seed.md"

	assert.Equal(t, filepath.Join("/srv/solaria", "seed_packets", "seed.md"), cfg.SeedPath())
	assert.Equal(t, filepath.Join("/srv/solaria", "motd_fragments"), cfg.FragmentsPath())
	assert.Equal(t, filepath.Join("/srv/solaria", "scrolls"), cfg.ScrollsPath())
	assert.Equal(t, filepath.Join("/srv/solaria", "logs"), cfg.LogsPath())
	assert.Equal(t, filepath.Join("/srv/solaria", ".env"), cfg.EnvPath())
}
