// Package prompt implements a single-select list prompt. The state machine
// in this file owns the authoritative prompt state (active index, status,
// selected action) and interprets decoded key events; it has no terminal,
// timer, or goroutine dependencies so it can be driven directly in tests.
// The Bubble Tea wrapper in app.go supplies the runtime collaborators.
package prompt

import (
	"go.uber.org/zap"

	"github.com/robottwo/chooser/pkg/choice"
)

// Status is the lifecycle state of a prompt invocation.
type Status int

const (
	// StatusPending means the prompt is still accepting key events.
	StatusPending Status = iota
	// StatusDone is terminal; it is entered exactly once and never left.
	StatusDone
)

// Result is the completion payload of a prompt.
type Result struct {
	// Action is the tag of the action that confirmed the selection, or
	// empty when the user confirmed with Enter.
	Action string
	// Answer is the chosen item's value.
	Answer any
}

// LineEditor is the slice of the runtime collaborator's line-editing
// buffer the machine needs: read the typed text, and clear it.
type LineEditor interface {
	Value() string
	Reset()
}

// Effect reports what a key event asked the runtime to do beyond the
// state mutations the machine applied itself.
type Effect struct {
	// ArmDebounce asks the runtime to schedule a debounce callback that
	// delivers DebounceID back via HandleDebounceElapsed. Any previously
	// scheduled callback is already stale by the time this is set.
	ArmDebounce bool
	DebounceID  uint64

	// Result is non-nil exactly once, on the event that completed the
	// prompt.
	Result *Result
}

// Machine is the prompt state machine. One Machine serves one prompt
// invocation; nothing is shared between invocations.
type Machine struct {
	choices []choice.Choice
	bounds  choice.Bounds
	actions []Action
	loop    bool
	mode    choice.MatchMode
	logger  *zap.Logger

	status         Status
	active         int
	selectedAction *Action

	// debounceID identifies the live debounce timer. Bumping it cancels
	// whatever was pending; a timer whose id no longer matches is stale.
	debounceID uint64
}

// NewMachine validates the choice list and builds the machine. It returns
// choice.ErrNoSelectable when no entry is selectable; this is fatal to the
// invocation and is never retried internally.
func NewMachine(choices []choice.Choice, opts Options) (*Machine, error) {
	bounds, err := choice.ComputeBounds(choices)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	active := choice.ResolveDefaultIndex(choices, opts.Default)
	if active < 0 {
		active = bounds.First
	}

	return &Machine{
		choices: choices,
		bounds:  bounds,
		actions: dedupeActions(opts.Actions, logger),
		loop:    opts.Loop,
		mode:    opts.SearchMode,
		logger:  logger,
		status:  StatusPending,
		active:  active,
	}, nil
}

// dedupeActions keeps the first action defined for each key. Later
// bindings for the same key are dropped.
func dedupeActions(actions []Action, logger *zap.Logger) []Action {
	seen := make(map[string]bool, len(actions))
	out := make([]Action, 0, len(actions))
	for _, a := range actions {
		if seen[a.Key] {
			logger.Warn("duplicate action key, keeping first binding", zap.String("key", a.Key))
			continue
		}
		seen[a.Key] = true
		out = append(out, a)
	}
	return out
}

// Status returns the current lifecycle state.
func (m *Machine) Status() Status { return m.status }

// ActiveIndex returns the index of the currently highlighted item. It
// always points at a selectable entry.
func (m *Machine) ActiveIndex() int { return m.active }

// SelectedAction returns the action that confirmed the selection, or nil
// when the prompt is pending or was confirmed with Enter.
func (m *Machine) SelectedAction() *Action { return m.selectedAction }

// HandleKey processes one decoded key event. Events are classified in
// priority order: configured action key, Enter, up/down, digit 1-9,
// backspace, and finally type-ahead search against the line buffer.
// Every branch cancels the pending debounce timer; only the search branch
// arms a new one. Once the machine is done, further events are ignored.
func (m *Machine) HandleKey(key string, line LineEditor) Effect {
	// Cancel-if-pending comes first, before classification.
	m.debounceID++

	if m.status == StatusDone {
		return Effect{}
	}

	if a := m.actionForKey(key); a != nil {
		return m.finish(a)
	}

	switch {
	case key == "enter":
		return m.finish(nil)

	case key == "up" || key == "down":
		line.Reset()
		dir := choice.Next
		if key == "up" {
			dir = choice.Previous
		}
		if !m.loop && choice.AtBoundary(m.active, dir, m.bounds) {
			return Effect{}
		}
		m.active = choice.Move(m.active, dir, len(m.choices), func(i int) bool {
			return m.choices[i].Selectable()
		})
		return Effect{}

	case isDigitKey(key):
		line.Reset()
		if target := choice.DigitTarget(m.choices, int(key[0]-'0')); target >= 0 {
			m.active = target
		}
		return Effect{}

	case key == "backspace":
		line.Reset()
		return Effect{}

	default:
		// Anything else counts as search input. The collaborator's line
		// buffer has already absorbed the keystroke; match against its
		// current content and arm a fresh reset timer.
		if idx := choice.Match(m.choices, line.Value(), m.mode); idx >= 0 {
			m.active = idx
		}
		return Effect{ArmDebounce: true, DebounceID: m.debounceID}
	}
}

// HandleDebounceElapsed is delivered by the runtime when a previously
// armed debounce timer fires. A stale id means a key event arrived in the
// meantime and already cancelled this timer.
func (m *Machine) HandleDebounceElapsed(id uint64, line LineEditor) {
	if id != m.debounceID {
		m.logger.Debug("discarding stale debounce timer",
			zap.Uint64("timerId", id),
			zap.Uint64("liveId", m.debounceID),
		)
		return
	}
	m.debounceID++
	line.Reset()
}

func (m *Machine) actionForKey(key string) *Action {
	for i := range m.actions {
		if m.actions[i].Key == key {
			return &m.actions[i]
		}
	}
	return nil
}

func (m *Machine) finish(a *Action) Effect {
	m.status = StatusDone
	m.selectedAction = a

	result := &Result{Answer: m.choices[m.active].Value}
	if a != nil {
		result.Action = a.Value
	}

	m.logger.Debug("prompt finished",
		zap.Int("activeIndex", m.active),
		zap.String("action", result.Action),
	)
	return Effect{Result: result}
}

func isDigitKey(key string) bool {
	return len(key) == 1 && key[0] >= '1' && key[0] <= '9'
}
