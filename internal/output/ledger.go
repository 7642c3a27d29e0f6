/*
PURPOSE:
  Appends one CSV row per invocation to a cumulative ledger.
  A quick index over scrolls without opening every JSON record.

REQUIREMENTS:
  User-specified:
  - One row per run; header written when the ledger is created.
  - Append-only: earlier rows are never rewritten.

  Implementation-discovered:
  - Flush before close (crash resilience for the row just written).
  - The ledger is an index, not the record of truth; callers treat an
    append failure as non-fatal.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.InvocationRecord

ERROR HANDLING:
  - Returns error on file open or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.

USAGE:
  err := output.AppendLedger(cfg, rec)

SELF-HEALING INSTRUCTIONS:
  - If the ledger becomes inconsistent, delete it; the JSON records can
    rebuild it.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update the header together with the record schema.
*/

package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/solaria/scroll-runner/internal/config"
	"github.com/solaria/scroll-runner/internal/model"
)

// LedgerFile is the ledger filename within the logs directory.
const LedgerFile = "invocations.csv"

var ledgerHeader = []string{"kairos_id", "timestamp_utc", "model", "motd_file", "scroll_file"}

// AppendLedger appends one invocation row to the ledger, creating the file
// (with header) on first use.
func AppendLedger(cfg *config.Config, rec model.InvocationRecord) error {
	path := filepath.Join(cfg.LogsPath(), LedgerFile)

	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open invocation ledger %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(ledgerHeader); err != nil {
			return err
		}
	}

	record := []string{
		rec.KairosID,
		rec.TimestampUTC,
		rec.Model,
		rec.MOTDFile,
		rec.ScrollFile,
	}
	if err := w.Write(record); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}
