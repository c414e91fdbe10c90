package scanstream_test

import (
	"testing"

	"jobtracker/pkg/scanstream"

	"github.com/stretchr/testify/require"
)

func observe(t *testing.T, tracker *scanstream.StageTracker, payload string) {
	t.Helper()
	ev, ok := scanstream.ParseEvent(payload)
	require.True(t, ok)
	tracker.Observe(ev)
}

func TestStageTracker_PrefixInvariant(t *testing.T) {
	var tracker scanstream.StageTracker
	require.Empty(t, tracker.Completed())
	require.Empty(t, tracker.Current())

	order := scanstream.Stages()
	for i, stage := range order {
		observe(t, &tracker, `{"stage":"`+stage+`"}`)
		require.Equal(t, stage, tracker.Current())
		require.Equal(t, order[:i], tracker.Completed())
	}

	observe(t, &tracker, `{"stage":"result"}`)
	require.Equal(t, scanstream.StageDone, tracker.Current())
	require.Equal(t, order, tracker.Completed())
}

func TestStageTracker_SkippedStagesCompleteEarlierOnes(t *testing.T) {
	var tracker scanstream.StageTracker

	// jumping straight to matching completes everything before it
	observe(t, &tracker, `{"stage":"matching"}`)
	require.Equal(t, []string{"fetching", "filtering", "saving"}, tracker.Completed())
	require.Equal(t, "matching", tracker.Current())
}

func TestStageTracker_UnknownStageDoesNotAdvance(t *testing.T) {
	var tracker scanstream.StageTracker

	observe(t, &tracker, `{"stage":"filtering"}`)
	require.Equal(t, []string{"fetching"}, tracker.Completed())

	observe(t, &tracker, `{"stage":"reticulating"}`)
	require.Equal(t, "reticulating", tracker.Current())
	require.Equal(t, []string{"fetching"}, tracker.Completed())
}

func TestStageTracker_ErrorFreezesCompleted(t *testing.T) {
	var tracker scanstream.StageTracker

	observe(t, &tracker, `{"stage":"fetching"}`)
	require.Empty(t, tracker.Completed())

	observe(t, &tracker, `{"stage":"error","detail":"Gmail auth expired"}`)
	require.Equal(t, scanstream.StageError, tracker.Current())
	// fetching had not completed when the failure hit
	require.Empty(t, tracker.Completed())
}

func TestStageTracker_Reset(t *testing.T) {
	var tracker scanstream.StageTracker

	observe(t, &tracker, `{"stage":"result"}`)
	tracker.Reset()
	require.Empty(t, tracker.Completed())
	require.Empty(t, tracker.Current())
}
