package idgen

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^([a-z]*)(\d+)-([0-9a-f]{16})$`)

func TestNew_Shape(t *testing.T) {
	for _, prefix := range []string{PrefixUser, PrefixShip, PrefixComponent, PrefixJob, PrefixNotification, ""} {
		id := New(prefix)
		m := idPattern.FindStringSubmatch(id)
		require.NotNil(t, m, "unexpected id shape %q", id)
		assert.Equal(t, prefix, m[1])
	}
}

func TestNew_EmbedsTimestamp(t *testing.T) {
	fixed := time.UnixMilli(1718000000000)
	orig := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = orig })

	id := New(PrefixShip)
	require.True(t, strings.HasPrefix(id, "s1718000000000-"), id)

	m := idPattern.FindStringSubmatch(id)
	require.NotNil(t, m)
	ts, err := strconv.ParseInt(m[2], 10, 64)
	require.NoError(t, err)
	assert.Equal(t, fixed.UnixMilli(), ts)
}

func TestNew_UniqueWithinSession(t *testing.T) {
	fixed := time.UnixMilli(1718000000000)
	orig := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = orig })

	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := New(PrefixJob)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}
