package scanstream

import "time"

// DefaultBufferCapacity bounds the log buffer when no capacity is configured.
const DefaultBufferCapacity = 400

// LogLine is one display record derived from a stream event.
type LogLine struct {
	// ID increases monotonically within a session; assigned at insertion.
	ID       int64
	Time     time.Time
	Stage    string
	Text     string
	Severity Severity
}

// LogBuffer is an append-only, capacity-bounded buffer of log lines. When
// full, the oldest entries are evicted first; order is never changed and
// identical messages are not deduplicated. It is not safe for concurrent
// use; the session serializes access.
type LogBuffer struct {
	capacity int
	nextID   int64
	lines    []LogLine

	now func() time.Time
}

// NewLogBuffer returns a buffer holding at most capacity lines.
// Non-positive capacities fall back to DefaultBufferCapacity.
func NewLogBuffer(capacity int) *LogBuffer {
	if capacity <= 0 {
		capacity = DefaultBufferCapacity
	}

	return &LogBuffer{
		capacity: capacity,
		now:      time.Now,
	}
}

// Append adds one line, evicting the oldest entries if the buffer would
// exceed its capacity, and returns the stored line.
func (b *LogBuffer) Append(stage, text string, severity Severity) LogLine {
	b.nextID++
	line := LogLine{
		ID:       b.nextID,
		Time:     b.now(),
		Stage:    stage,
		Text:     text,
		Severity: severity,
	}

	b.lines = append(b.lines, line)
	if len(b.lines) > b.capacity {
		b.lines = b.lines[len(b.lines)-b.capacity:]
	}

	return line
}

// Lines returns the buffered lines, oldest first.
func (b *LogBuffer) Lines() []LogLine {
	out := make([]LogLine, len(b.lines))
	copy(out, b.lines)

	return out
}

// Len returns the number of buffered lines.
func (b *LogBuffer) Len() int {
	return len(b.lines)
}

// Clear empties the buffer. Line IDs keep increasing across clears.
func (b *LogBuffer) Clear() {
	b.lines = nil
}
