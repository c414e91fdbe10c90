package scanstream_test

import (
	"fmt"
	"testing"

	"jobtracker/pkg/scanstream"

	"github.com/stretchr/testify/require"
)

func TestLogBuffer_AppendAssignsMonotonicIDs(t *testing.T) {
	buf := scanstream.NewLogBuffer(10)

	first := buf.Append("fetching", "a", scanstream.SeverityInfo)
	second := buf.Append("fetching", "a", scanstream.SeverityInfo)
	require.Greater(t, second.ID, first.ID)

	// identical messages each keep their own entry
	require.Equal(t, 2, buf.Len())
	require.False(t, first.Time.IsZero())
}

func TestLogBuffer_EvictsOldestAtCapacity(t *testing.T) {
	buf := scanstream.NewLogBuffer(400)

	for i := range 450 {
		buf.Append("fetching", fmt.Sprintf("line %d", i), scanstream.SeverityInfo)
	}

	lines := buf.Lines()
	require.Len(t, lines, 400)
	// the oldest 50 are gone, relative order preserved
	require.Equal(t, "line 50", lines[0].Text)
	require.Equal(t, "line 449", lines[399].Text)
	for i := 1; i < len(lines); i++ {
		require.Equal(t, lines[i-1].ID+1, lines[i].ID)
	}
}

func TestLogBuffer_ClearKeepsIDCounter(t *testing.T) {
	buf := scanstream.NewLogBuffer(10)

	line := buf.Append("fetching", "a", scanstream.SeverityInfo)
	buf.Clear()
	require.Zero(t, buf.Len())
	require.Empty(t, buf.Lines())

	next := buf.Append("fetching", "b", scanstream.SeverityInfo)
	require.Greater(t, next.ID, line.ID)
}

func TestLogBuffer_DefaultCapacity(t *testing.T) {
	buf := scanstream.NewLogBuffer(0)

	for range scanstream.DefaultBufferCapacity + 10 {
		buf.Append("fetching", "x", scanstream.SeverityInfo)
	}
	require.Equal(t, scanstream.DefaultBufferCapacity, buf.Len())
}
