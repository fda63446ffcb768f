package prompt

import (
	"time"

	"go.uber.org/zap"

	"github.com/robottwo/chooser/pkg/choice"
)

// Action is a caller-configured alternate confirmation keybinding. Pressing
// its key finishes the prompt like Enter does, but tags the result with the
// action's value so the caller can distinguish e.g. "open" from "edit".
type Action struct {
	// Key is the key name as reported by the key decoder (e.g. "o").
	Key string
	// Value is the tag carried on the result when this action fires.
	Value string
	// Name is the display label used in the help line.
	Name string
}

// Options configures a single prompt invocation.
type Options struct {
	// Message is the question shown above the list.
	Message string

	// Default selects the initially active item by value. When nil or not
	// found among the selectable items, the first selectable item is active.
	Default any

	// Loop controls whether cursor movement wraps past the first and last
	// selectable items. Defaults to true.
	Loop bool

	// PageSize is the number of list rows rendered at once. Defaults to 7.
	PageSize int

	// Actions are alternate confirmation keybindings. When two actions
	// share a key, the first one defined wins.
	Actions []Action

	// SearchMode selects the type-ahead matching strategy. Defaults to
	// prefix matching.
	SearchMode choice.MatchMode

	// DebounceInterval is how long the typed search term survives without
	// further keystrokes before the line is cleared. Defaults to 700ms.
	DebounceInterval time.Duration

	// Logger receives debug-level state machine traces. Defaults to a nop
	// logger.
	Logger *zap.Logger
}

// NewOptions returns Options with the default loop, page size, and
// debounce settings.
func NewOptions() Options {
	return Options{
		Loop:             true,
		PageSize:         7,
		DebounceInterval: 700 * time.Millisecond,
	}
}
