/*
PURPOSE:
  Generates the Kairos ID: the short correlation key linking one run's
  scroll to its metadata record.

REQUIREMENTS:
  User-specified:
  - 8 lowercase hexadecimal characters.
  - Derived from wall-clock time plus a fresh random draw via SHA-256.
  - No uniqueness enforcement; collisions are accepted as negligible.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (runner)

ERROR HANDLING:
  - None; the generator cannot fail.

IMPLEMENTATION RULES:
  - Entropy string is "<fractional unix seconds>-<random float>", hashed
    and truncated. Do not swap in a UUID: the derivation is part of the
    record contract.

USAGE:
  id := engine.NewKairosID()

RELATED FILES:
  - internal/engine/runner.go

MAINTENANCE:
  - None expected.
*/

package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"
	"time"
)

// KairosIDLength is the truncated hex digest length.
const KairosIDLength = 8

// NewKairosID derives an 8-character hex identifier from the current time
// and a random draw.
func NewKairosID() string {
	entropy := fmt.Sprintf("%.7f-%v", float64(time.Now().UnixNano())/1e9, rand.Float64())
	sum := sha256.Sum256([]byte(entropy))
	return hex.EncodeToString(sum[:])[:KairosIDLength]
}
