package playlist

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDFunc produces item identifiers.
type IDFunc func() string

// maxIDAttempts bounds how often a colliding generator is retried.
const maxIDAttempts = 8

// RandomIDs returns random UUID strings. This is the engine default.
func RandomIDs() string {
	return uuid.NewString()
}

// SequentialIDs returns a generator yielding prefix1, prefix2, ...
// Useful for deterministic tests.
func SequentialIDs(prefix string) IDFunc {
	var n atomic.Uint64
	return func() string {
		return prefix + strconv.FormatUint(n.Add(1), 10)
	}
}
