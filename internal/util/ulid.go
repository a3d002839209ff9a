package util

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
// ulid.Make draws from a process-wide monotonic entropy source and is safe for concurrent use.
func NewULID() string {
	return ulid.Make().String()
}

// NewPrefixedID returns "<prefix>_<lowercase ulid>", e.g. img_01j9z3....
func NewPrefixedID(prefix string) string {
	return prefix + "_" + strings.ToLower(NewULID())
}
