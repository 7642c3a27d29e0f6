package prompt

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaria/scroll-runner/internal/config"
	"github.com/solaria/scroll-runner/internal/model"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.BaseDir = t.TempDir()
	cfg.SeedPacket = "seed_packets/seed.md"
	return cfg
}

func writeSeed(t *testing.T, cfg *config.Config, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.SeedPath()), 0755))
	require.NoError(t, os.WriteFile(cfg.SeedPath(), []byte(content), 0644))
}

func writeFragment(t *testing.T, cfg *config.Config, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(cfg.FragmentsPath(), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.FragmentsPath(), name), []byte(content), 0644))
}

func TestAssemble(t *testing.T) {
	t.Run("missing seed packet is fatal", func(t *testing.T) {
		cfg := testConfig(t)

		_, err := Assemble(cfg)

		assert.ErrorIs(t, err, ErrSeedNotFound)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("fragment then seed inside marker blocks", func(t *testing.T) {
		cfg := testConfig(t)
		writeSeed(t, cfg, "Hello")
		writeFragment(t, cfg, "a.md", "World")

		p, err := Assemble(cfg)
		require.NoError(t, err)

		assert.Equal(t, "a.md", p.FragmentName)
		assert.Contains(t, p.Text, "[MOTD Fragment Begins]\nWorld\n[MOTD Fragment Ends]")
		assert.Contains(t, p.Text, "[Seed Packet Begins]\nHello\n[Seed Packet Ends]")

		fragIdx := strings.Index(p.Text, "World")
		seedIdx := strings.Index(p.Text, "Hello")
		assert.Less(t, fragIdx, seedIdx, "fragment block must precede seed block")
	})

	t.Run("missing fragment directory degrades to none", func(t *testing.T) {
		cfg := testConfig(t)
		writeSeed(t, cfg, "Hello")

		p, err := Assemble(cfg)
		require.NoError(t, err)

		assert.Equal(t, model.FragmentNone, p.FragmentName)
		assert.Contains(t, p.Text, "[MOTD Fragment Begins]\n\n[MOTD Fragment Ends]")
	})

	t.Run("empty fragment directory degrades to none", func(t *testing.T) {
		cfg := testConfig(t)
		writeSeed(t, cfg, "Hello")
		require.NoError(t, os.MkdirAll(cfg.FragmentsPath(), 0755))

		p, err := Assemble(cfg)
		require.NoError(t, err)

		assert.Equal(t, model.FragmentNone, p.FragmentName)
	})

	t.Run("only matching extensions are candidates", func(t *testing.T) {
		cfg := testConfig(t)
		writeSeed(t, cfg, "Hello")
		writeFragment(t, cfg, "a.md", "World")
		writeFragment(t, cfg, "notes.txt", "Ignored")

		// Many draws never pick the .txt file
		for i := 0; i < 20; i++ {
			p, err := Assemble(cfg)
			require.NoError(t, err)
			assert.Equal(t, "a.md", p.FragmentName)
		}
	})

	t.Run("preamble and closing instruction are present", func(t *testing.T) {
		cfg := testConfig(t)
		writeSeed(t, cfg, "Hello")

		p, err := Assemble(cfg)
		require.NoError(t, err)

		assert.Contains(t, p.Text, "You are called for, Solaria")
		assert.Contains(t, p.Text, "scroll of becoming")
	})
}

func TestListFragments(t *testing.T) {
	t.Run("missing directory yields nothing", func(t *testing.T) {
		names, err := ListFragments(filepath.Join(t.TempDir(), "absent"), ".md")
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("subdirectories are skipped", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested.md"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "real.md"), []byte("x"), 0644))

		names, err := ListFragments(dir, ".md")
		require.NoError(t, err)
		assert.Equal(t, []string{"real.md"}, names)
	})
}
