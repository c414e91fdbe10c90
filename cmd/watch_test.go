package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jobtracker/pkg/scanstream"
)

func watchLines(ids ...int64) []scanstream.LogLine {
	lines := make([]scanstream.LogLine, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, scanstream.LogLine{ID: id})
	}

	return lines
}

func lineIDs(lines []scanstream.LogLine) []int64 {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ID)
	}

	return ids
}

func TestLineCursor_AppendOnly(t *testing.T) {
	var cursor lineCursor

	require.Equal(t, []int64{1, 2}, lineIDs(cursor.next(watchLines(1, 2))))
	require.Equal(t, []int64{3}, lineIDs(cursor.next(watchLines(1, 2, 3))))
	require.Empty(t, cursor.next(watchLines(1, 2, 3)))
}

func TestLineCursor_SurvivesEviction(t *testing.T) {
	var cursor lineCursor

	// buffer at capacity 3
	require.Equal(t, []int64{1, 2, 3}, lineIDs(cursor.next(watchLines(1, 2, 3))))

	// oldest line evicted, one new line appended: only the new one renders
	require.Equal(t, []int64{4}, lineIDs(cursor.next(watchLines(2, 3, 4))))

	// the whole window scrolled past: everything in it is new
	require.Equal(t, []int64{5, 6, 7}, lineIDs(cursor.next(watchLines(5, 6, 7))))
}

func TestLineCursor_EmptySnapshot(t *testing.T) {
	var cursor lineCursor

	require.Empty(t, cursor.next(nil))
	require.Equal(t, []int64{1}, lineIDs(cursor.next(watchLines(1))))
}
