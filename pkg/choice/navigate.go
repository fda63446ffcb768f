package choice

// Direction is a cursor move direction.
type Direction int

const (
	Previous Direction = iota
	Next
)

// Offset returns the index delta for the direction: -1 or +1.
func (d Direction) Offset() int {
	if d == Previous {
		return -1
	}
	return 1
}

// AtBoundary reports whether a move in the given direction from current
// would leave the selectable range. With looping disabled the caller
// must treat such a move as a no-op and never call Move.
func AtBoundary(current int, dir Direction, b Bounds) bool {
	if dir == Previous {
		return current == b.First
	}
	return current == b.Last
}

// Move advances current by the direction's offset, wrapping through the
// full list (separators included), until it lands on a selectable index.
// Termination is guaranteed by the ComputeBounds invariant that at least
// one entry is selectable.
func Move(current int, dir Direction, total int, selectable func(int) bool) int {
	offset := dir.Offset()
	next := current
	for {
		next = (next + offset + total) % total
		if selectable(next) {
			return next
		}
	}
}

// DigitTarget maps a 1-based digit key to a list index. It returns the
// target index when it exists and is selectable, and -1 otherwise; there
// is no wraparound search for digit jumps.
func DigitTarget(choices []Choice, digit int) int {
	idx := digit - 1
	if idx < 0 || idx >= len(choices) || !choices[idx].Selectable() {
		return -1
	}
	return idx
}
