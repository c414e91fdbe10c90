// Package scanstream consumes the scan-progress SSE stream: it parses
// incoming frames, tracks pipeline stage completion, buffers display lines
// and owns the connection lifecycle of one scan attempt.
package scanstream

import (
	"strings"

	"github.com/go-faster/jx"
)

// Severity classifies a log line for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Stage tags with special meaning on the wire. Everything else is either a
// pipeline stage name or an unknown tag that is displayed but never advances
// stage completion.
const (
	// StageResult terminates a scan successfully.
	StageResult = "result"
	// StageError terminates a scan with a server-reported failure.
	StageError = "error"
	// StageDone is the synthetic marker set after a result event; it is
	// never received on the wire.
	StageDone = "done"
	// StageGeneric tags frames that could not be parsed as structured
	// events.
	StageGeneric = "event"
)

// Event is one decoded frame of the scan-progress stream. Events are built
// fresh per frame and folded into tracker state immediately.
type Event struct {
	Stage    string
	Text     string
	Severity Severity

	// Counters carried by result events.
	Inserted            int
	ApplicationsCreated int
}

// Terminal reports whether the event ends the scan.
func (e Event) Terminal() bool {
	return e.Stage == StageResult || e.Stage == StageError
}

// ParseEvent decodes one SSE data payload. It returns false for heartbeat
// frames (empty payloads and empty JSON objects), which must be ignored
// entirely. Malformed payloads never fail: they degrade to a plain-text
// event with the generic stage tag.
func ParseEvent(data string) (Event, bool) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return Event{}, false
	}

	var (
		stage, detail, message, level string
		inserted, created             int
		fields                        int
	)
	d := jx.DecodeStr(trimmed)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		fields++
		switch key {
		case "stage":
			s, err := d.Str()
			if err != nil {
				return err
			}
			stage = s
		case "detail":
			s, err := d.Str()
			if err != nil {
				return err
			}
			detail = s
		case "message":
			s, err := d.Str()
			if err != nil {
				return err
			}
			message = s
		case "level":
			s, err := d.Str()
			if err != nil {
				return err
			}
			level = s
		case "inserted":
			n, err := d.Int()
			if err != nil {
				return err
			}
			inserted = n
		case "applications_created":
			n, err := d.Int()
			if err != nil {
				return err
			}
			created = n
		default:
			return d.Skip()
		}

		return nil
	})
	if err != nil {
		// not a JSON object: the whole frame becomes a generic text event
		return Event{
			Stage:    StageGeneric,
			Text:     trimmed,
			Severity: SeverityInfo,
		}, true
	}
	if fields == 0 {
		// empty object heartbeat
		return Event{}, false
	}

	if stage == "" {
		stage = StageGeneric
	}
	text := detail
	if text == "" {
		text = message
	}
	if text == "" {
		text = trimmed
	}

	return Event{
		Stage:               stage,
		Text:                text,
		Severity:            deriveSeverity(level, stage),
		Inserted:            inserted,
		ApplicationsCreated: created,
	}, true
}

// deriveSeverity prefers an explicit level field over the stage tag.
func deriveSeverity(level, stage string) Severity {
	switch level {
	case "info":
		return SeverityInfo
	case "success":
		return SeveritySuccess
	case "warn", "warning":
		return SeverityWarning
	case "error":
		return SeverityError
	}

	switch stage {
	case StageError:
		return SeverityError
	case StageResult, StageDone:
		return SeveritySuccess
	default:
		return SeverityInfo
	}
}
