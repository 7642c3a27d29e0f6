/*
PURPOSE:
  Defines the core data structures used throughout Scroll Runner.
  These models describe one invocation and its persisted artifacts.

REQUIREMENTS:
  User-specified:
  - Record the Kairos ID, UTC timestamp, scroll path, chosen fragment,
    seed packet path, and model name for every invocation.

  Implementation-discovered:
  - Need JSON tags matching the log record schema.
  - Paths are stored relative to the base directory, not absolute.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - The record is created once and never mutated.

USAGE:
  rec := model.InvocationRecord{KairosID: id, ...}

SELF-HEALING INSTRUCTIONS:
  - If new metadata is needed, add a field and update the record/ledger writers.

RELATED FILES:
  - internal/output/scroll.go
  - internal/output/ledger.go

MAINTENANCE:
  - Update when the log record schema changes.
*/

package model

// FragmentNone is the sentinel recorded when no MOTD fragment was available.
const FragmentNone = "none"

// InvocationRecord is the metadata record persisted alongside each scroll.
type InvocationRecord struct {
	KairosID     string `json:"kairos_id"`
	TimestampUTC string `json:"timestamp_utc"`
	ScrollFile   string `json:"scroll_file"`
	MOTDFile     string `json:"motd_file"`
	SeedPacket   string `json:"seed_packet"`
	Model        string `json:"model"`
}
