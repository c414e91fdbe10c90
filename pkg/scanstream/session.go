package scanstream

import (
	"context"
	"sync"
	"time"
)

// State is the connection lifecycle state of a session.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateOpen
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// connectionLostMessage is the generic outcome for a transport drop that was
// not preceded by a terminal event.
const connectionLostMessage = "connection lost"

// Hooks are the session's outbound side effects. All hooks are optional and
// are invoked outside the session lock, on the stream reader goroutine.
type Hooks struct {
	// OnUpdate is called with a fresh snapshot after every applied event
	// and every state transition.
	OnUpdate func(Snapshot)
	// OnFinish fires exactly once per scan attempt with the terminal
	// outcome.
	OnFinish func(Outcome)
	// Invalidate is called once per terminal outcome with the read caches
	// it made stale.
	Invalidate func([]Scope)
}

// Options configures a Session.
type Options struct {
	// URL of the scan-progress SSE endpoint.
	URL string
	// Transport dials the stream; defaults to an HTTP transport.
	Transport Transport
	// BufferCapacity bounds the log buffer; defaults to
	// DefaultBufferCapacity.
	BufferCapacity int
	// IdleTimeout closes a stream that stays silent for the duration and
	// surfaces it as a lost connection. Heartbeat frames count as
	// activity. Zero disables the timeout.
	IdleTimeout time.Duration

	Hooks Hooks
}

// Snapshot is a consistent copy of the session's derived state for
// rendering.
type Snapshot struct {
	State           State
	CurrentStage    string
	CompletedStages []string
	Lines           []LogLine
	// Outcome is nil until the scan reaches a terminal state.
	Outcome *Outcome
}

// Session owns one scan-progress connection and all state derived from it.
// At most one stream is open per session; starting is idempotent while a
// connection is establishing or established, and every start resets the
// derived state so a new scan never inherits a previous one's.
type Session struct {
	opts      Options
	transport Transport

	mu      sync.Mutex
	state   State
	tracker StageTracker
	buf     *LogBuffer
	outcome *Outcome
	stream  Stream
	// gen increments on every start and stop; stale reader callbacks
	// compare against it and discard themselves.
	gen int
	// intentional marks that the stream is being closed in response to a
	// terminal event, so the transport's own close signal is suppressed.
	intentional bool
	finished    bool
}

// NewSession returns an idle session.
func NewSession(opts Options) *Session {
	transport := opts.Transport
	if transport == nil {
		transport = NewHTTPTransport(nil)
	}

	return &Session{
		opts:      opts,
		transport: transport,
		buf:       NewLogBuffer(opts.BufferCapacity),
	}
}

// Start opens the stream and begins consuming it on a background goroutine.
// It is a no-op while the session is connecting or open. Derived state is
// reset before dialing.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateConnecting || s.state == StateOpen {
		s.mu.Unlock()

		return nil
	}

	// release any prior handle before reconnecting
	if s.stream != nil {
		_ = s.stream.Close()
		s.stream = nil
	}
	s.gen++
	gen := s.gen
	s.state = StateConnecting
	s.tracker.Reset()
	s.buf.Clear()
	s.outcome = nil
	s.intentional = false
	s.finished = false
	s.mu.Unlock()

	s.notifyUpdate()

	stream, err := s.transport.Dial(ctx, s.opts.URL)

	s.mu.Lock()
	if s.gen != gen {
		// stopped while dialing
		s.mu.Unlock()
		if stream != nil {
			_ = stream.Close()
		}

		return nil
	}
	if err != nil {
		fire := s.finishLocked(Outcome{Failed: true, Message: connectionLostMessage}, StateError)
		s.mu.Unlock()
		fire()

		return err
	}
	s.stream = stream
	s.state = StateOpen
	s.mu.Unlock()

	s.notifyUpdate()

	go s.readLoop(stream, gen)

	return nil
}

// Stop synchronously closes any open stream and returns the session to
// idle. In-flight frames are discarded; no outcome is produced.
func (s *Session) Stop() {
	s.mu.Lock()
	s.gen++
	if s.stream != nil {
		_ = s.stream.Close()
		s.stream = nil
	}
	s.state = StateIdle
	s.mu.Unlock()

	s.notifyUpdate()
}

// Clear empties the log buffer without touching the connection.
func (s *Session) Clear() {
	s.mu.Lock()
	s.buf.Clear()
	s.mu.Unlock()

	s.notifyUpdate()
}

// Snapshot returns a consistent copy of the derived state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:           s.state,
		CurrentStage:    s.tracker.Current(),
		CompletedStages: s.tracker.Completed(),
		Lines:           s.buf.Lines(),
	}
	if s.outcome != nil {
		out := *s.outcome
		snap.Outcome = &out
	}

	return snap
}

func (s *Session) readLoop(stream Stream, gen int) {
	for {
		var idle *time.Timer
		if s.opts.IdleTimeout > 0 {
			idle = time.AfterFunc(s.opts.IdleTimeout, func() {
				_ = stream.Close()
			})
		}
		payload, err := stream.Next()
		if idle != nil {
			idle.Stop()
		}
		if err != nil {
			s.handleDisconnect(gen)

			return
		}
		if terminal := s.handleFrame(payload, gen); terminal {
			return
		}
	}
}

// handleFrame applies one frame and reports whether it was terminal.
func (s *Session) handleFrame(payload string, gen int) bool {
	ev, ok := ParseEvent(payload)
	if !ok {
		// heartbeat
		return false
	}

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()

		return true
	}

	s.tracker.Observe(ev)

	if !ev.Terminal() {
		s.buf.Append(ev.Stage, ev.Text, ev.Severity)
		s.mu.Unlock()
		s.notifyUpdate()

		return false
	}

	outcome := Outcome{
		Failed:              ev.Stage == StageError,
		Inserted:            ev.Inserted,
		ApplicationsCreated: ev.ApplicationsCreated,
	}
	if outcome.Failed {
		outcome.Message = ev.Text
		s.buf.Append(ev.Stage, ev.Text, SeverityError)
	} else {
		s.buf.Append(ev.Stage, outcome.Summary(), SeveritySuccess)
	}

	// close intentionally so the trailing transport close signal is not
	// reported as a disconnect
	s.intentional = true
	if s.stream != nil {
		_ = s.stream.Close()
		s.stream = nil
	}
	fire := s.finishLocked(outcome, StateIdle)
	s.mu.Unlock()
	fire()

	return true
}

// handleDisconnect turns an unexpected transport closure into a terminal
// connectivity error. Closures following a terminal event or an explicit
// stop are suppressed.
func (s *Session) handleDisconnect(gen int) {
	s.mu.Lock()
	if s.gen != gen || s.intentional {
		s.mu.Unlock()

		return
	}

	if s.stream != nil {
		_ = s.stream.Close()
		s.stream = nil
	}
	s.buf.Append(StageGeneric, connectionLostMessage, SeverityError)
	fire := s.finishLocked(Outcome{Failed: true, Message: connectionLostMessage}, StateError)
	s.mu.Unlock()
	fire()
}

// finishLocked records the terminal outcome once and returns the hook
// invocations to run after the lock is released.
func (s *Session) finishLocked(outcome Outcome, state State) func() {
	s.state = state
	if s.finished {
		return func() {}
	}
	s.finished = true
	s.outcome = &outcome
	snap := s.snapshotLocked()

	return func() {
		if s.opts.Hooks.OnUpdate != nil {
			s.opts.Hooks.OnUpdate(snap)
		}
		if s.opts.Hooks.OnFinish != nil {
			s.opts.Hooks.OnFinish(outcome)
		}
		if s.opts.Hooks.Invalidate != nil {
			s.opts.Hooks.Invalidate(outcome.Invalidations())
		}
	}
}

func (s *Session) notifyUpdate() {
	if s.opts.Hooks.OnUpdate == nil {
		return
	}
	s.opts.Hooks.OnUpdate(s.Snapshot())
}
