// Package choice models the ordered list of entries a select prompt
// displays: regular items, decorative separators, and the static facts
// derived from them (selectable bounds, default index).
package choice

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNoSelectable is returned when a choice list contains no selectable
// item. A prompt built on such a list can never complete, so construction
// fails fast instead.
var ErrNoSelectable = errors.New("choice: list contains no selectable item")

// Choice is one entry in the displayed list. It is either a separator
// (decorative, never selectable) or an item carrying a value.
type Choice struct {
	// IsSeparator marks a decorative entry. Separator entries only use
	// the Name field (as their display label); everything else is ignored.
	IsSeparator bool

	// Value is the payload returned when this item is chosen.
	Value any

	// Name is the display text. When empty for an item, the string form
	// of Value is displayed instead.
	Name string

	// Description is optional detail text shown while the item is active.
	Description string

	// Disabled marks an item that is displayed but cannot be selected.
	Disabled bool

	// DisabledReason optionally replaces the default "(disabled)" marker.
	// A non-empty reason implies Disabled.
	DisabledReason string
}

// Item returns a selectable choice with the given value.
func Item(value any) Choice {
	return Choice{Value: value}
}

// Separator returns a decorative entry with the given display label.
func Separator(label string) Choice {
	return Choice{IsSeparator: true, Name: label}
}

// Text returns the display text of a choice: the name if present,
// otherwise the string form of its value.
func (c Choice) Text() string {
	if c.Name != "" {
		return c.Name
	}
	if c.IsSeparator {
		return ""
	}
	return fmt.Sprintf("%v", c.Value)
}

// Selectable reports whether the entry can hold the cursor: not a
// separator and not disabled.
func (c Choice) Selectable() bool {
	return !c.IsSeparator && !c.Disabled && c.DisabledReason == ""
}

// Bounds holds the first and last selectable indices of a choice list.
type Bounds struct {
	First int
	Last  int
}

// ComputeBounds scans the list once and returns the indices of the first
// and last selectable entries. It returns ErrNoSelectable when no entry
// is selectable; callers treat that as a fatal configuration error.
func ComputeBounds(choices []Choice) (Bounds, error) {
	b := Bounds{First: -1, Last: -1}
	for i, c := range choices {
		if !c.Selectable() {
			continue
		}
		if b.First == -1 {
			b.First = i
		}
		b.Last = i
	}
	if b.First == -1 {
		return Bounds{}, ErrNoSelectable
	}
	return b, nil
}

// ResolveDefaultIndex returns the index of the first selectable entry
// whose value equals defaultValue, or -1 when defaultValue is nil or no
// entry matches. It is pure; the prompt computes it once at construction
// and keeps the result for the lifetime of the invocation.
func ResolveDefaultIndex(choices []Choice, defaultValue any) int {
	if defaultValue == nil {
		return -1
	}
	for i, c := range choices {
		if c.Selectable() && valuesEqual(c.Value, defaultValue) {
			return i
		}
	}
	return -1
}

// valuesEqual compares two choice values. Values loaded from YAML can
// carry non-comparable dynamic types like []any, where == would panic,
// so those fall back to a deep comparison.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
