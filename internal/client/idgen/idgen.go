// Package idgen produces string identifiers for stored records.
//
// An id is the entity prefix, the creation time in Unix milliseconds and a
// random suffix, e.g. "s1718000000000-4f9c2a7be31d0a55". Ids are practically
// unique within a session; they are not a cryptographic guarantee.
package idgen

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prefixes used by the repositories and the notification broadcaster.
const (
	PrefixUser         = "u"
	PrefixShip         = "s"
	PrefixComponent    = "c"
	PrefixJob          = "j"
	PrefixNotification = "n"
)

// suffixLen is the number of hex characters of randomness kept.
const suffixLen = 16

var now = time.Now

// New returns a fresh identifier starting with prefix.
func New(prefix string) string {
	ts := now().UnixMilli()
	return prefix + strconv.FormatInt(ts, 10) + "-" + randomSuffix()
}

// randomSuffix takes the random tail of a UUIDv7; the leading 48 bits of a
// v7 are the timestamp, which is already part of the id.
func randomSuffix() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	hex := strings.ReplaceAll(id.String(), "-", "")
	return hex[len(hex)-suffixLen:]
}
