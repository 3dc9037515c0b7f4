package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string, used for user ids. ULIDs are
// lexicographically sortable by creation time and safe inside key prefixes.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
