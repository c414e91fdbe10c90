package scanstream

// canonicalStages is the pipeline order the scan server walks through. The
// names are part of the wire contract, not configuration.
var canonicalStages = []string{"fetching", "filtering", "saving", "matching", "creating"}

// Stages returns the canonical pipeline stage order.
func Stages() []string {
	out := make([]string, len(canonicalStages))
	copy(out, canonicalStages)

	return out
}

// StageTracker folds stage events into a completed-prefix view of the
// pipeline. Completed stages are always a prefix of the canonical order:
// everything strictly before the currently active stage.
type StageTracker struct {
	completed int
	current   string
}

// Observe applies one event to the tracker. Unknown stage tags set the
// current stage but never move the completed prefix; an error event freezes
// the prefix where it was.
func (t *StageTracker) Observe(ev Event) {
	switch ev.Stage {
	case StageResult:
		t.completed = len(canonicalStages)
		t.current = StageDone
	case StageError:
		t.current = StageError
	default:
		t.current = ev.Stage
		for i, name := range canonicalStages {
			if name == ev.Stage {
				t.completed = i

				break
			}
		}
	}
}

// Current returns the active stage tag, or "" before any event.
func (t *StageTracker) Current() string {
	return t.current
}

// Completed returns the completed stages, oldest first.
func (t *StageTracker) Completed() []string {
	out := make([]string, t.completed)
	copy(out, canonicalStages[:t.completed])

	return out
}

// Reset returns the tracker to its initial empty state.
func (t *StageTracker) Reset() {
	*t = StageTracker{}
}
