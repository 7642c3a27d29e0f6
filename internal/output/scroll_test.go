package output

import (
	"encoding/csv"
	"encoding/json"
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
	return cfg
}

func testRecord(id string) model.InvocationRecord {
	return model.InvocationRecord{
		KairosID:     id,
		TimestampUTC: "2026-08-23T12:00:00Z",
		ScrollFile:   filepath.Join("scrolls", "SCROLL_"+id+".md"),
		MOTDFile:     "a.md",
		SeedPacket:   "seed_packets/seed.md",
		Model:        "gpt-4o",
	}
}

func TestScrollWriter(t *testing.T) {
	t.Run("creates both output directories", func(t *testing.T) {
		cfg := testConfig(t)

		_, err := NewScrollWriter(cfg)
		require.NoError(t, err)

		for _, dir := range []string{cfg.ScrollsPath(), cfg.LogsPath()} {
			info, err := os.Stat(dir)
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		}
	})

	t.Run("scroll carries title line and identifier", func(t *testing.T) {
		cfg := testConfig(t)
		w, err := NewScrollWriter(cfg)
		require.NoError(t, err)

		rel, err := w.WriteScroll("deadbeef", "The scroll text.")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("scrolls", "SCROLL_deadbeef.md"), rel)

		data, err := os.ReadFile(filepath.Join(cfg.BaseDir, rel))
		require.NoError(t, err)
		content := string(data)
		assert.True(t, strings.HasPrefix(content, "# 🌌 Scroll of Becoming\n"))
		assert.Contains(t, content, "**Kairos ID:** deadbeef")
		assert.Contains(t, content, "The scroll text.")
	})

	t.Run("record is indented JSON with the six fields", func(t *testing.T) {
		cfg := testConfig(t)
		w, err := NewScrollWriter(cfg)
		require.NoError(t, err)

		rel, err := w.WriteRecord(testRecord("deadbeef"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("logs", "log_deadbeef.json"), rel)

		data, err := os.ReadFile(filepath.Join(cfg.BaseDir, rel))
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  \"kairos_id\"", "record must be indented")

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Len(t, decoded, 6)
		assert.Equal(t, "deadbeef", decoded["kairos_id"])
		assert.Equal(t, "2026-08-23T12:00:00Z", decoded["timestamp_utc"])
		assert.Equal(t, "a.md", decoded["motd_file"])
		assert.Equal(t, "seed_packets/seed.md", decoded["seed_packet"])
		assert.Equal(t, "gpt-4o", decoded["model"])
	})
}

func TestAppendLedger(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.LogsPath(), 0755))

	require.NoError(t, AppendLedger(cfg, testRecord("deadbeef")))
	require.NoError(t, AppendLedger(cfg, testRecord("cafef00d")))

	f, err := os.Open(filepath.Join(cfg.LogsPath(), LedgerFile))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two invocations")

	assert.Equal(t, ledgerHeader, rows[0])
	assert.Equal(t, "deadbeef", rows[1][0])
	assert.Equal(t, "cafef00d", rows[2][0])
}
