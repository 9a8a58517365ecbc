package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. ULIDs are timestamp-prefixed and
// carry random entropy, so concurrent callers within the same millisecond
// still get distinct, lexically sortable names. Used for scratch script
// files and served video filenames.
func NewULID() string {
	return ulid.Make().String()
}
