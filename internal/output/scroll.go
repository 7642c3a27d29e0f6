/*
PURPOSE:
  Persists the artifacts of one invocation: the scroll document and its
  JSON metadata record, correlated by the Kairos ID.

REQUIREMENTS:
  User-specified:
  - Scroll: SCROLL_<id>.md with a title line and the identifier, then the
    response text verbatim.
  - Record: log_<id>.json with stable human-readable indentation.
  - Both directories are created lazily.

  Implementation-discovered:
  - Recorded paths are relative to the base directory so records stay
    meaningful when the project moves.
  - The two writes are independent; no transactional guarantee links them.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.InvocationRecord

ERROR HANDLING:
  - Returns error on directory creation or write failure.

IMPLEMENTATION RULES:
  - Use json.MarshalIndent with two-space indent.
  - A colliding Kairos ID silently overwrites; accepted as negligible.

USAGE:
  w, err := output.NewScrollWriter(cfg)
  scrollFile, err := w.WriteScroll(id, text)
  recordFile, err := w.WriteRecord(rec)

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update when the scroll header or record schema changes.
*/

package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/solaria/scroll-runner/internal/config"
	"github.com/solaria/scroll-runner/internal/model"
)

// ScrollWriter writes the scroll and metadata record for one invocation.
type ScrollWriter struct {
	cfg *config.Config
}

// NewScrollWriter creates the output directories and returns a writer.
func NewScrollWriter(cfg *config.Config) (*ScrollWriter, error) {
	for _, dir := range []string{cfg.ScrollsPath(), cfg.LogsPath()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	return &ScrollWriter{cfg: cfg}, nil
}

// WriteScroll writes the scroll document and returns its path relative to
// the base directory.
func (w *ScrollWriter) WriteScroll(kairosID, text string) (string, error) {
	name := fmt.Sprintf("SCROLL_%s.md", kairosID)
	content := fmt.Sprintf("# 🌌 Scroll of Becoming\n\n**Kairos ID:** %s\n\n%s", kairosID, text)

	path := filepath.Join(w.cfg.ScrollsPath(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write scroll %s: %w", path, err)
	}
	return filepath.Join(w.cfg.ScrollsDir, name), nil
}

// WriteRecord writes the metadata record as indented JSON and returns its
// path relative to the base directory.
func (w *ScrollWriter) WriteRecord(rec model.InvocationRecord) (string, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode invocation record: %w", err)
	}

	name := fmt.Sprintf("log_%s.json", rec.KairosID)
	path := filepath.Join(w.cfg.LogsPath(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write invocation record %s: %w", path, err)
	}
	return filepath.Join(w.cfg.LogsDir, name), nil
}
